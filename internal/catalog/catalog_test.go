package catalog

import (
	"strings"
	"testing"
)

func TestAllEighteenPatternsRegistered(t *testing.T) {
	t.Parallel()

	all := All()
	if len(all) != 18 {
		t.Fatalf("got %d entries, want 18", len(all))
	}

	seen := make(map[string]bool, len(all))
	for _, e := range all {
		if e.Name == "" || e.Summary == "" || e.Doc == "" || e.Run == nil {
			t.Errorf("entry %q is incomplete", e.Name)
		}
		if seen[e.Name] {
			t.Errorf("duplicate entry name %q", e.Name)
		}
		seen[e.Name] = true
	}
}

func TestCategoryCounts(t *testing.T) {
	t.Parallel()

	want := map[Category]int{
		Behavioral: 8,
		Creational: 5,
		Structural: 5,
	}
	for cat, n := range want {
		if got := len(ByCategory(cat)); got != n {
			t.Errorf("ByCategory(%s) = %d entries, want %d", cat, got, n)
		}
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"singleton", "SINGLETON", "  Singleton "} {
		e, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) error: %v", name, err)
		}
		if e.Name != "singleton" {
			t.Errorf("Lookup(%q) = %q", name, e.Name)
		}
	}
}

func TestLookupUnknownPattern(t *testing.T) {
	t.Parallel()

	if _, err := Lookup("monad"); err == nil {
		t.Fatal("Lookup(monad) should fail")
	}
}

func TestEveryDemoRunsAndPrints(t *testing.T) {
	t.Parallel()

	for _, e := range All() {
		e := e
		t.Run(e.Name, func(t *testing.T) {
			t.Parallel()
			var buf strings.Builder
			if err := e.Run(&buf); err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if buf.Len() == 0 {
				t.Error("demo produced no output")
			}
		})
	}
}
