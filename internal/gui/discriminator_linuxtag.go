//go:build guilinux && !guiwindows

package gui

// DefaultPlatform is the widget family compiled into this binary.
const DefaultPlatform = PlatformLinux
