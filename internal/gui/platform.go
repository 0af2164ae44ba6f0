package gui

import "strings"

// Platform selects a widget family.
type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformWindows
	PlatformLinux
	PlatformMacOS
)

func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return "Windows"
	case PlatformLinux:
		return "Linux"
	case PlatformMacOS:
		return "MacOS"
	default:
		return "Unknown"
	}
}

// ParsePlatform maps a case-insensitive platform name to a Platform.
// Unrecognized names return PlatformUnknown.
func ParsePlatform(name string) Platform {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "windows", "win":
		return PlatformWindows
	case "linux":
		return PlatformLinux
	case "macos", "mac", "darwin", "osx":
		return PlatformMacOS
	default:
		return PlatformUnknown
	}
}
