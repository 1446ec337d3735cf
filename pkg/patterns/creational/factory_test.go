package creational

import "testing"

func TestNewButtonMapsDiscriminators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind string
		want string
	}{
		{"primary", "primary"},
		{"danger", "danger"},
		{"", "default"},
		{"sparkly", "default"},
	}
	for _, tt := range tests {
		if got := NewButton(tt.kind).Label(); got != tt.want {
			t.Errorf("NewButton(%q).Label() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestNewButtonNeverReturnsNil(t *testing.T) {
	t.Parallel()

	if NewButton("definitely-unknown") == nil {
		t.Fatal("unknown kinds must fall to the default branch, not nil")
	}
}
