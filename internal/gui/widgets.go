package gui

import (
	"fmt"
	"io"
)

// Button is a clickable widget.
type Button interface {
	Draw(w io.Writer)
	Platform() Platform
}

// Menu is a list of actions.
type Menu interface {
	Draw(w io.Writer)
	Platform() Platform
}

// Dialog is a modal window.
type Dialog interface {
	Draw(w io.Writer)
	Platform() Platform
}

// widget carries the behavior every concrete widget shares: it draws its own
// type name and reports its family.
type widget struct {
	name     string
	platform Platform
}

func (w widget) Draw(out io.Writer) {
	fmt.Fprintln(out, w.name)
}

func (w widget) Platform() Platform {
	return w.platform
}

// WindowsButton is the Windows Button.
type WindowsButton struct{ widget }

// WindowsMenu is the Windows Menu.
type WindowsMenu struct{ widget }

// WindowsDialog is the Windows Dialog.
type WindowsDialog struct{ widget }

// LinuxButton is the Linux Button.
type LinuxButton struct{ widget }

// LinuxMenu is the Linux Menu.
type LinuxMenu struct{ widget }

// LinuxDialog is the Linux Dialog.
type LinuxDialog struct{ widget }

// MacOSButton is the MacOS Button.
type MacOSButton struct{ widget }

// MacOSMenu is the MacOS Menu.
type MacOSMenu struct{ widget }

// MacOSDialog is the MacOS Dialog.
type MacOSDialog struct{ widget }
