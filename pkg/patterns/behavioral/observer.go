package behavioral

import (
	"fmt"
	"io"
)

// Observer receives every value the subject emits after subscription.
type Observer func(value string)

// Subscription detaches its observer from future emissions.
type Subscription struct {
	subject *Subject
	id      int
}

// Unsubscribe removes the observer. An emission already in progress
// still delivers to it; later emissions do not.
func (s *Subscription) Unsubscribe() {
	for i, e := range s.subject.observers {
		if e.id == s.id {
			s.subject.observers = append(s.subject.observers[:i], s.subject.observers[i+1:]...)
			return
		}
	}
}

type subscriber struct {
	id int
	fn Observer
}

// Subject is an event source with an ordered observer list; observers
// are invoked in subscription order.
type Subject struct {
	observers []subscriber
	nextID    int
}

// Subscribe registers fn and returns a handle to remove it later.
func (s *Subject) Subscribe(fn Observer) *Subscription {
	s.nextID++
	s.observers = append(s.observers, subscriber{id: s.nextID, fn: fn})
	return &Subscription{subject: s, id: s.nextID}
}

// Emit delivers value synchronously to every currently subscribed
// observer, in subscription order, before returning. The list is
// snapshotted so unsubscribing mid-emission cannot skip anyone.
func (s *Subject) Emit(value string) {
	snapshot := make([]subscriber, len(s.observers))
	copy(snapshot, s.observers)
	for _, e := range snapshot {
		e.fn(value)
	}
}

// DemoObserver subscribes three observers, emits, drops one, emits again.
func DemoObserver(w io.Writer) error {
	subject := &Subject{}
	for _, name := range []string{"first", "second", "third"} {
		name := name
		subject.Subscribe(func(value string) {
			fmt.Fprintf(w, "Observer %s got %q\n", name, value)
		})
	}

	sub := subject.Subscribe(func(value string) {
		fmt.Fprintf(w, "Observer fourth got %q\n", value)
	})

	subject.Emit("sunny")
	sub.Unsubscribe()
	subject.Emit("rainy")
	return nil
}
