// Package creational contains the creational pattern demonstrations:
// abstract factory, builder, factory, prototype and singleton.
package creational

import (
	"fmt"
	"io"
)

// Control is a product created by one of the GUI factories.
type Control interface {
	Render() string
}

// GUIFactory creates controls belonging to a single look-and-feel
// family; no factory creates products outside its own family.
type GUIFactory interface {
	CreateControl(kind string) Control
}

type macButton struct{}

func (macButton) Render() string { return "[ Mac button ]" }

type macCheckbox struct{}

func (macCheckbox) Render() string { return "( Mac checkbox )" }

// MacFactory creates Mac-styled controls.
type MacFactory struct{}

// CreateControl maps kind to a Mac control. Unrecognized kinds fall to
// the checkbox branch, matching the simple factory below.
func (MacFactory) CreateControl(kind string) Control {
	if kind == "button" {
		return macButton{}
	}
	return macCheckbox{}
}

type windowsButton struct{}

func (windowsButton) Render() string { return "[ Windows button ]" }

type windowsCheckbox struct{}

func (windowsCheckbox) Render() string { return "( Windows checkbox )" }

// WindowsFactory creates Windows-styled controls.
type WindowsFactory struct{}

func (WindowsFactory) CreateControl(kind string) Control {
	if kind == "button" {
		return windowsButton{}
	}
	return windowsCheckbox{}
}

// NewGUIFactory selects the family factory by discriminator. Unknown
// families default to the Windows branch.
func NewGUIFactory(family string) GUIFactory {
	if family == "mac" {
		return MacFactory{}
	}
	return WindowsFactory{}
}

// DemoAbstractFactory renders a button and a checkbox from each family.
func DemoAbstractFactory(w io.Writer) error {
	for _, family := range []string{"mac", "windows"} {
		factory := NewGUIFactory(family)
		for _, kind := range []string{"button", "checkbox"} {
			if _, err := fmt.Fprintf(w, "%s %s: %s\n", family, kind, factory.CreateControl(kind).Render()); err != nil {
				return err
			}
		}
	}
	return nil
}
