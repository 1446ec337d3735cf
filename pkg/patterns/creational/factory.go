package creational

import (
	"fmt"
	"io"
)

// Button is the product of the simple factory.
type Button interface {
	Label() string
	Paint() string
}

type primaryButton struct{}

func (primaryButton) Label() string { return "primary" }
func (primaryButton) Paint() string { return "painting a bold blue button" }

type dangerButton struct{}

func (dangerButton) Label() string { return "danger" }
func (dangerButton) Paint() string { return "painting a red warning button" }

type defaultButton struct{}

func (defaultButton) Label() string { return "default" }
func (defaultButton) Paint() string { return "painting a plain gray button" }

// NewButton maps a discriminator to exactly one concrete button.
// Unrecognized kinds fall to the default branch rather than returning
// nothing.
func NewButton(kind string) Button {
	switch kind {
	case "primary":
		return primaryButton{}
	case "danger":
		return dangerButton{}
	default:
		return defaultButton{}
	}
}

// DemoFactory creates each known kind plus an unknown one.
func DemoFactory(w io.Writer) error {
	for _, kind := range []string{"primary", "danger", "sparkly"} {
		b := NewButton(kind)
		if _, err := fmt.Fprintf(w, "%s -> %s: %s\n", kind, b.Label(), b.Paint()); err != nil {
			return err
		}
	}
	return nil
}
