package behavioral

import (
	"strings"
	"testing"
)

func newBuffetChain() FoodHandler {
	monkey := &MonkeyHandler{}
	squirrel := &SquirrelHandler{}
	dog := &DogHandler{}
	monkey.SetNext(squirrel).SetNext(dog)
	return monkey
}

func TestChainFirstMatchWins(t *testing.T) {
	t.Parallel()

	chain := newBuffetChain()

	tests := []struct {
		food string
		want string
	}{
		{"Banana", "Monkey: I'll eat the Banana"},
		{"Nut", "Squirrel: I'll eat the Nut"},
		{"MeatBall", "Dog: I'll eat the MeatBall"},
	}
	for _, tt := range tests {
		got, ok := chain.Handle(tt.food)
		if !ok {
			t.Errorf("Handle(%q) reported no match", tt.food)
		}
		if got != tt.want {
			t.Errorf("Handle(%q) = %q, want %q", tt.food, got, tt.want)
		}
	}
}

func TestChainUnhandledRequestIsAbsent(t *testing.T) {
	t.Parallel()

	chain := newBuffetChain()
	got, ok := chain.Handle("Cup of coffee")
	if ok {
		t.Errorf("Handle(coffee) = %q, want absent result", got)
	}
	if got != "" {
		t.Errorf("absent result should be empty, got %q", got)
	}
}

func TestChainSetNextReturnsArgument(t *testing.T) {
	t.Parallel()

	monkey := &MonkeyHandler{}
	squirrel := &SquirrelHandler{}
	if got := monkey.SetNext(squirrel); got != FoodHandler(squirrel) {
		t.Error("SetNext should return its argument for fluent wiring")
	}
}

func TestChainHandlerWithoutSuccessor(t *testing.T) {
	t.Parallel()

	lone := &DogHandler{}
	if _, ok := lone.Handle("Banana"); ok {
		t.Error("handler without successor must report absent for foreign requests")
	}
}

func TestDemoChainOutput(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	if err := DemoChain(&buf); err != nil {
		t.Fatalf("DemoChain() error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Squirrel: I'll eat the Nut",
		"Monkey: I'll eat the Banana",
		"Cup of coffee was left untouched",
		"Dog: I'll eat the MeatBall",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
