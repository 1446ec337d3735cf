package behavioral

import (
	"fmt"
	"io"
)

// Fan and PowerSupplier are collaborators that never reference each
// other; the mediator owns all cross-collaborator coordination.

// Fan tracks whether it is spinning.
type Fan struct {
	on bool
}

func (f *Fan) IsOn() bool { return f.on }

// PowerSupplier switches current on and off.
type PowerSupplier struct {
	out io.Writer
}

func NewPowerSupplier(out io.Writer) *PowerSupplier {
	return &PowerSupplier{out: out}
}

func (p *PowerSupplier) TurnOn() {
	fmt.Fprintln(p.out, "PowerSupplier: current on")
}

func (p *PowerSupplier) TurnOff() {
	fmt.Fprintln(p.out, "PowerSupplier: current off")
}

// FanMediator coordinates a fan with its power supplier: pressing the
// button toggles power based on the fan's current state.
type FanMediator struct{}

// PressButton inspects the fan and drives the power supplier accordingly.
func (FanMediator) PressButton(fan *Fan, power *PowerSupplier) {
	if fan.on {
		fan.on = false
		power.TurnOff()
		return
	}
	fan.on = true
	power.TurnOn()
}

// --- middleware illustration ---

// MiddlewareRequest carries a path and collects the trace of stages it
// passed through.
type MiddlewareRequest struct {
	Path  string
	Trace []string
}

// Middleware intercepts a request before the terminal handler. A request
// only reaches the next stage if the middleware invokes next; skipping
// the call short-circuits the pipeline.
type Middleware func(req *MiddlewareRequest, next func())

// RunPipeline threads req through each middleware in order and finally
// through the terminal handler, honoring short-circuits.
func RunPipeline(req *MiddlewareRequest, terminal func(*MiddlewareRequest), chain ...Middleware) {
	var run func(i int)
	run = func(i int) {
		if i == len(chain) {
			terminal(req)
			return
		}
		chain[i](req, func() { run(i + 1) })
	}
	run(0)
}

// DemoMediator toggles a fan through the mediator, then shows the
// middleware pipeline passing and short-circuiting a request.
func DemoMediator(w io.Writer) error {
	fan := &Fan{}
	power := NewPowerSupplier(w)
	mediator := FanMediator{}

	fmt.Fprintln(w, "Button pressed")
	mediator.PressButton(fan, power)
	fmt.Fprintln(w, "Button pressed")
	mediator.PressButton(fan, power)

	logStage := func(name string) Middleware {
		return func(req *MiddlewareRequest, next func()) {
			req.Trace = append(req.Trace, name)
			next()
		}
	}
	guard := func(req *MiddlewareRequest, next func()) {
		if req.Path == "/blocked" {
			fmt.Fprintf(w, "Middleware: %s short-circuited\n", req.Path)
			return
		}
		next()
	}
	terminal := func(req *MiddlewareRequest) {
		fmt.Fprintf(w, "Handler: %s reached after %v\n", req.Path, req.Trace)
	}

	RunPipeline(&MiddlewareRequest{Path: "/fan"}, terminal, logStage("auth"), guard)
	RunPipeline(&MiddlewareRequest{Path: "/blocked"}, terminal, logStage("auth"), guard)
	return nil
}
