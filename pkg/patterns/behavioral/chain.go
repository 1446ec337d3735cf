// Package behavioral contains the behavioral pattern demonstrations:
// chain of responsibility, command, iterator, mediator, observer,
// state, template method and visitor. Each file is self-contained and
// ends with a Demo driver that prints illustrative output.
package behavioral

import (
	"fmt"
	"io"
)

// FoodHandler is one link in a chain of responsibility. Handle reports
// whether the request was satisfied; an unsatisfied request is forwarded
// to the successor, if any.
type FoodHandler interface {
	// SetNext wires the successor and returns it, so chains read as
	// a.SetNext(b).SetNext(c).
	SetNext(next FoodHandler) FoodHandler

	// Handle returns the handler's response and true when the request
	// matched, or the successor's result otherwise. A request no link
	// can satisfy yields ("", false).
	Handle(food string) (string, bool)
}

// baseHandler carries the successor link shared by every concrete handler.
// The chain topology is fixed once wired; traversal never mutates it.
type baseHandler struct {
	next FoodHandler
}

func (b *baseHandler) forward(food string) (string, bool) {
	if b.next == nil {
		return "", false
	}
	return b.next.Handle(food)
}

// MonkeyHandler eats bananas and forwards everything else.
type MonkeyHandler struct {
	baseHandler
}

func (h *MonkeyHandler) SetNext(next FoodHandler) FoodHandler {
	h.next = next
	return next
}

func (h *MonkeyHandler) Handle(food string) (string, bool) {
	if food == "Banana" {
		return "Monkey: I'll eat the " + food, true
	}
	return h.forward(food)
}

// SquirrelHandler eats nuts and forwards everything else.
type SquirrelHandler struct {
	baseHandler
}

func (h *SquirrelHandler) SetNext(next FoodHandler) FoodHandler {
	h.next = next
	return next
}

func (h *SquirrelHandler) Handle(food string) (string, bool) {
	if food == "Nut" {
		return "Squirrel: I'll eat the " + food, true
	}
	return h.forward(food)
}

// DogHandler eats meatballs and forwards everything else.
type DogHandler struct {
	baseHandler
}

func (h *DogHandler) SetNext(next FoodHandler) FoodHandler {
	h.next = next
	return next
}

func (h *DogHandler) Handle(food string) (string, bool) {
	if food == "MeatBall" {
		return "Dog: I'll eat the " + food, true
	}
	return h.forward(food)
}

// DemoChain wires Monkey -> Squirrel -> Dog and feeds the buffet.
func DemoChain(w io.Writer) error {
	monkey := &MonkeyHandler{}
	squirrel := &SquirrelHandler{}
	dog := &DogHandler{}
	monkey.SetNext(squirrel).SetNext(dog)

	for _, food := range []string{"Nut", "Banana", "Cup of coffee", "MeatBall"} {
		if _, err := fmt.Fprintf(w, "Who wants a %s?\n", food); err != nil {
			return err
		}
		result, ok := monkey.Handle(food)
		if !ok {
			result = food + " was left untouched"
		}
		if _, err := fmt.Fprintf(w, "  %s\n", result); err != nil {
			return err
		}
	}
	return nil
}
