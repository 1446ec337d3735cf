package structural

import (
	"fmt"
	"io"
)

// The home theater subsystems. Callers of the facade never touch them
// directly.

type amplifier struct {
	out io.Writer
}

func (a *amplifier) SetVolume(v int) {
	fmt.Fprintf(a.out, "Amplifier: volume set to %d\n", v)
}

func (a *amplifier) On() {
	fmt.Fprintln(a.out, "Amplifier: on")
}

func (a *amplifier) Off() {
	fmt.Fprintln(a.out, "Amplifier: off")
}

type projector struct {
	out io.Writer
}

func (p *projector) WideScreen() {
	fmt.Fprintln(p.out, "Projector: widescreen mode")
}

func (p *projector) On() {
	fmt.Fprintln(p.out, "Projector: on")
}

func (p *projector) Off() {
	fmt.Fprintln(p.out, "Projector: off")
}

type player struct {
	out io.Writer
}

func (p *player) Load(movie string) {
	fmt.Fprintf(p.out, "Player: loaded %q\n", movie)
}

func (p *player) Play() {
	fmt.Fprintln(p.out, "Player: playing")
}

func (p *player) Stop() {
	fmt.Fprintln(p.out, "Player: stopped")
}

// HomeTheater sequences the subsystems in a fixed, correct order:
// parameters are set before power-on, playback starts last.
type HomeTheater struct {
	amp       *amplifier
	projector *projector
	player    *player
}

// NewHomeTheater wires the subsystems to the given sink.
func NewHomeTheater(out io.Writer) *HomeTheater {
	return &HomeTheater{
		amp:       &amplifier{out: out},
		projector: &projector{out: out},
		player:    &player{out: out},
	}
}

// WatchMovie prepares every subsystem and starts playback.
func (h *HomeTheater) WatchMovie(movie string) {
	h.amp.SetVolume(5)
	h.amp.On()
	h.projector.WideScreen()
	h.projector.On()
	h.player.Load(movie)
	h.player.Play()
}

// EndMovie shuts everything down in reverse order.
func (h *HomeTheater) EndMovie() {
	h.player.Stop()
	h.projector.Off()
	h.amp.Off()
}

// DemoFacade runs one movie night through the facade.
func DemoFacade(w io.Writer) error {
	theater := NewHomeTheater(w)
	theater.WatchMovie("The Go Gopher Strikes Back")
	theater.EndMovie()
	return nil
}
