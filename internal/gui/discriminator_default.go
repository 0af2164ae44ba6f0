//go:build !guiwindows && !guilinux

package gui

// DefaultPlatform is the widget family compiled into this binary.
const DefaultPlatform = PlatformMacOS
