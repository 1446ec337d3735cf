package structural

import (
	"fmt"
	"io"
)

// Device is the implementation side of the bridge. Remotes hold this
// contract, never a concrete device, so both hierarchies extend
// independently.
type Device interface {
	Name() string
	IsEnabled() bool
	Enable()
	Disable()
	Volume() int
	SetVolume(v int)
}

// TV is one concrete device.
type TV struct {
	enabled bool
	volume  int
}

func (t *TV) Name() string    { return "TV" }
func (t *TV) IsEnabled() bool { return t.enabled }
func (t *TV) Enable()         { t.enabled = true }
func (t *TV) Disable()        { t.enabled = false }
func (t *TV) Volume() int     { return t.volume }
func (t *TV) SetVolume(v int) { t.volume = clampVolume(v) }

// Radio is another concrete device.
type Radio struct {
	enabled bool
	volume  int
}

func (r *Radio) Name() string    { return "Radio" }
func (r *Radio) IsEnabled() bool { return r.enabled }
func (r *Radio) Enable()         { r.enabled = true }
func (r *Radio) Disable()        { r.enabled = false }
func (r *Radio) Volume() int     { return r.volume }
func (r *Radio) SetVolume(v int) { r.volume = clampVolume(v) }

func clampVolume(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Remote is the abstraction side: it delegates all primitive work to
// the held device.
type Remote struct {
	device Device
}

// NewRemote creates a remote driving the given device.
func NewRemote(device Device) *Remote {
	return &Remote{device: device}
}

// TogglePower flips the device on or off.
func (r *Remote) TogglePower() {
	if r.device.IsEnabled() {
		r.device.Disable()
		return
	}
	r.device.Enable()
}

// VolumeUp raises volume by 10.
func (r *Remote) VolumeUp() {
	r.device.SetVolume(r.device.Volume() + 10)
}

// VolumeDown lowers volume by 10.
func (r *Remote) VolumeDown() {
	r.device.SetVolume(r.device.Volume() - 10)
}

// AdvancedRemote extends the abstraction without touching any device.
type AdvancedRemote struct {
	Remote
}

// NewAdvancedRemote creates an advanced remote for the given device.
func NewAdvancedRemote(device Device) *AdvancedRemote {
	return &AdvancedRemote{Remote: Remote{device: device}}
}

// Mute drops the volume to zero.
func (r *AdvancedRemote) Mute() {
	r.device.SetVolume(0)
}

// DemoBridge drives a TV with a basic remote and a radio with an
// advanced one.
func DemoBridge(w io.Writer) error {
	tv := &TV{}
	remote := NewRemote(tv)
	remote.TogglePower()
	remote.VolumeUp()
	remote.VolumeUp()
	fmt.Fprintf(w, "%s: on=%t volume=%d\n", tv.Name(), tv.IsEnabled(), tv.Volume())

	radio := &Radio{volume: 30}
	advanced := NewAdvancedRemote(radio)
	advanced.TogglePower()
	advanced.Mute()
	_, err := fmt.Fprintf(w, "%s: on=%t volume=%d\n", radio.Name(), radio.IsEnabled(), radio.Volume())
	return err
}
