// Package gui is the cross-platform widget Abstract Factory.
//
// A Factory creates Buttons, Menus and Dialogs that all belong to one
// platform family, so application code never mixes a Windows button with a
// Linux menu. The default family is chosen at build time:
//
//	go build -tags guiwindows ./cmd/guifactory   // Windows widgets
//	go build -tags guilinux ./cmd/guifactory     // Linux widgets
//	go build ./cmd/guifactory                    // MacOS widgets
package gui
