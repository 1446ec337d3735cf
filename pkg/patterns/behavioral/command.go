package behavioral

import (
	"fmt"
	"io"
)

// Command is an encapsulated action. Execute performs the work once;
// results surface as lines written to the command's sink.
type Command interface {
	Execute()
}

// SimpleCommand prints a message it captured at construction.
type SimpleCommand struct {
	payload string
	out     io.Writer
}

// NewSimpleCommand creates a command that prints payload when executed.
func NewSimpleCommand(out io.Writer, payload string) *SimpleCommand {
	return &SimpleCommand{payload: payload, out: out}
}

func (c *SimpleCommand) Execute() {
	fmt.Fprintf(c.out, "SimpleCommand: printing (%s)\n", c.payload)
}

// Receiver owns the business logic a complex command delegates to.
type Receiver struct {
	out io.Writer
}

// NewReceiver creates a Receiver that reports its work to out.
func NewReceiver(out io.Writer) *Receiver {
	return &Receiver{out: out}
}

func (r *Receiver) DoSomething(task string) {
	fmt.Fprintf(r.out, "Receiver: working on (%s)\n", task)
}

func (r *Receiver) DoSomethingElse(task string) {
	fmt.Fprintf(r.out, "Receiver: also working on (%s)\n", task)
}

// ComplexCommand delegates to a Receiver injected at construction.
type ComplexCommand struct {
	receiver *Receiver
	a, b     string
}

// NewComplexCommand captures the receiver and both task parameters.
func NewComplexCommand(receiver *Receiver, a, b string) *ComplexCommand {
	return &ComplexCommand{receiver: receiver, a: a, b: b}
}

func (c *ComplexCommand) Execute() {
	c.receiver.DoSomething(c.a)
	c.receiver.DoSomethingElse(c.b)
}

// Invoker holds two optional command slots. A nil slot is skipped
// silently; presence is a plain nil check, not a capability probe.
type Invoker struct {
	onStart  Command
	onFinish Command
}

// SetOnStart sets the command run before the main job.
func (i *Invoker) SetOnStart(cmd Command) {
	i.onStart = cmd
}

// SetOnFinish sets the command run after the main job.
func (i *Invoker) SetOnFinish(cmd Command) {
	i.onFinish = cmd
}

// DoSomethingImportant runs the start slot, the job itself, then the
// finish slot. Unset slots are no-ops.
func (i *Invoker) DoSomethingImportant(w io.Writer) {
	if i.onStart != nil {
		i.onStart.Execute()
	}
	fmt.Fprintln(w, "Invoker: doing something really important")
	if i.onFinish != nil {
		i.onFinish.Execute()
	}
}

// DemoCommand exercises simple and complex commands through an invoker.
func DemoCommand(w io.Writer) error {
	invoker := &Invoker{}
	invoker.SetOnStart(NewSimpleCommand(w, "Say Hi!"))

	receiver := NewReceiver(w)
	invoker.SetOnFinish(NewComplexCommand(receiver, "Send email", "Save report"))

	invoker.DoSomethingImportant(w)
	return nil
}
