package structural

import "testing"

func TestRemoteDrivesAnyDevice(t *testing.T) {
	t.Parallel()

	devices := []Device{&TV{}, &Radio{}}
	for _, d := range devices {
		remote := NewRemote(d)
		remote.TogglePower()
		if !d.IsEnabled() {
			t.Errorf("%s: TogglePower should enable", d.Name())
		}
		remote.VolumeUp()
		if d.Volume() != 10 {
			t.Errorf("%s: volume = %d, want 10", d.Name(), d.Volume())
		}
		remote.TogglePower()
		if d.IsEnabled() {
			t.Errorf("%s: second toggle should disable", d.Name())
		}
	}
}

func TestVolumeIsClamped(t *testing.T) {
	t.Parallel()

	tv := &TV{}
	remote := NewRemote(tv)
	remote.VolumeDown()
	if tv.Volume() != 0 {
		t.Errorf("volume below zero should clamp to 0, got %d", tv.Volume())
	}

	for i := 0; i < 12; i++ {
		remote.VolumeUp()
	}
	if tv.Volume() != 100 {
		t.Errorf("volume above 100 should clamp, got %d", tv.Volume())
	}
}

func TestAdvancedRemoteExtendsAbstractionOnly(t *testing.T) {
	t.Parallel()

	radio := &Radio{volume: 40}
	advanced := NewAdvancedRemote(radio)
	advanced.Mute()
	if radio.Volume() != 0 {
		t.Errorf("Mute should zero the volume, got %d", radio.Volume())
	}

	// The base remote operations still work through the extension.
	advanced.TogglePower()
	if !radio.IsEnabled() {
		t.Error("inherited TogglePower should enable the device")
	}
}
