package structural

import "testing"

func TestAdapterTranslatesReversedText(t *testing.T) {
	t.Parallel()

	var source MessageSource = ReversingAdapter{Service: ReversedService{}}
	if got := source.Message(); got != "Hello, world!" {
		t.Errorf("Message() = %q, want %q", got, "Hello, world!")
	}
}

func TestReverseHandlesUnicode(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want string }{
		{"", ""},
		{"a", "a"},
		{"ab", "ba"},
		{"héllo", "olléh"},
	}
	for _, tt := range tests {
		if got := reverse(tt.in); got != tt.want {
			t.Errorf("reverse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
