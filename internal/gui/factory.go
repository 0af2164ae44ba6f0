package gui

import "io"

// Factory creates one platform's family of widgets.
type Factory interface {
	CreateButton() Button
	CreateMenu() Menu
	CreateDialog() Dialog
	Platform() Platform
}

// NewFactory returns the factory for p. Any platform without a dedicated
// family falls through to the MacOS factory.
func NewFactory(p Platform) Factory {
	switch p {
	case PlatformWindows:
		return WindowsFactory{}
	case PlatformLinux:
		return LinuxFactory{}
	default:
		return MacOSFactory{}
	}
}

// WindowsFactory creates Windows widgets.
type WindowsFactory struct{}

func (WindowsFactory) CreateButton() Button {
	return &WindowsButton{widget{"WindowsButton", PlatformWindows}}
}

func (WindowsFactory) CreateMenu() Menu {
	return &WindowsMenu{widget{"WindowsMenu", PlatformWindows}}
}

func (WindowsFactory) CreateDialog() Dialog {
	return &WindowsDialog{widget{"WindowsDialog", PlatformWindows}}
}

func (WindowsFactory) Platform() Platform { return PlatformWindows }

// LinuxFactory creates Linux widgets.
type LinuxFactory struct{}

func (LinuxFactory) CreateButton() Button {
	return &LinuxButton{widget{"LinuxButton", PlatformLinux}}
}

func (LinuxFactory) CreateMenu() Menu {
	return &LinuxMenu{widget{"LinuxMenu", PlatformLinux}}
}

func (LinuxFactory) CreateDialog() Dialog {
	return &LinuxDialog{widget{"LinuxDialog", PlatformLinux}}
}

func (LinuxFactory) Platform() Platform { return PlatformLinux }

// MacOSFactory creates MacOS widgets.
type MacOSFactory struct{}

func (MacOSFactory) CreateButton() Button {
	return &MacOSButton{widget{"MacOSButton", PlatformMacOS}}
}

func (MacOSFactory) CreateMenu() Menu {
	return &MacOSMenu{widget{"MacOSMenu", PlatformMacOS}}
}

func (MacOSFactory) CreateDialog() Dialog {
	return &MacOSDialog{widget{"MacOSDialog", PlatformMacOS}}
}

func (MacOSFactory) Platform() Platform { return PlatformMacOS }

// Window is application code written against the abstract widgets only.
type Window struct {
	Button Button
	Menu   Menu
	Dialog Dialog
}

// NewWindow assembles a window from a single factory's products.
func NewWindow(f Factory) Window {
	return Window{
		Button: f.CreateButton(),
		Menu:   f.CreateMenu(),
		Dialog: f.CreateDialog(),
	}
}

// Draw draws the button, menu and dialog in that order.
func (win Window) Draw(w io.Writer) {
	win.Button.Draw(w)
	win.Menu.Draw(w)
	win.Dialog.Draw(w)
}
