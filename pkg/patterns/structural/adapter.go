// Package structural contains the structural pattern demonstrations:
// adapter, bridge, facade, flyweight and proxy.
package structural

import (
	"fmt"
	"io"
)

// MessageSource is the target contract client code is written against.
type MessageSource interface {
	Message() string
}

// ReversedService is the incompatible collaborator: it only speaks
// backwards.
type ReversedService struct{}

// ReversedMessage returns its text reversed.
func (ReversedService) ReversedMessage() string {
	return "!dlrow ,olleH"
}

// ReversingAdapter implements MessageSource by un-reversing the
// wrapped service's output, so clients never see the mismatch.
type ReversingAdapter struct {
	Service ReversedService
}

func (a ReversingAdapter) Message() string {
	return reverse(a.Service.ReversedMessage())
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// DemoAdapter shows a client reading through the adapter unmodified.
func DemoAdapter(w io.Writer) error {
	service := ReversedService{}
	fmt.Fprintf(w, "Service speaks: %s\n", service.ReversedMessage())

	var source MessageSource = ReversingAdapter{Service: service}
	_, err := fmt.Fprintf(w, "Adapter speaks: %s\n", source.Message())
	return err
}
