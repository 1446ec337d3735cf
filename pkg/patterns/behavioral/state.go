package behavioral

import (
	"fmt"
	"io"
)

// MoodState is the behavior a person delegates to while in that mood.
type MoodState interface {
	Name() string
	Think() string
}

// HappyState produces cheerful thoughts.
type HappyState struct{}

func (HappyState) Name() string  { return "happy" }
func (HappyState) Think() string { return "I like this day, the sun is shining!" }

// SadState produces gloomy thoughts.
type SadState struct{}

func (SadState) Name() string  { return "sad" }
func (SadState) Think() string { return "I don't like this day, it's raining." }

// Person holds exactly one mood at a time; Think is fully delegated to
// it. Transitions happen only through SetState.
type Person struct {
	state MoodState
}

// NewPerson creates a person starting in the given mood.
func NewPerson(initial MoodState) *Person {
	return &Person{state: initial}
}

// SetState replaces the current mood.
func (p *Person) SetState(state MoodState) {
	p.state = state
}

// State returns the current mood's name.
func (p *Person) State() string {
	return p.state.Name()
}

// Think delegates to the current mood.
func (p *Person) Think() string {
	return p.state.Think()
}

// DemoState lets a person think in both moods.
func DemoState(w io.Writer) error {
	person := NewPerson(HappyState{})
	fmt.Fprintf(w, "Person (%s): %s\n", person.State(), person.Think())

	person.SetState(SadState{})
	_, err := fmt.Fprintf(w, "Person (%s): %s\n", person.State(), person.Think())
	return err
}
