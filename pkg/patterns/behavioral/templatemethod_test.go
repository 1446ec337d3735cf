package behavioral

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestNewRecipeRejectsMissingRequiredSteps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		steps RecipeSteps
	}{
		{"no steps", RecipeSteps{}},
		{"missing pour", RecipeSteps{Brew: func(io.Writer) {}}},
		{"missing brew", RecipeSteps{Pour: func(io.Writer) {}}},
	}
	for _, tt := range tests {
		if _, err := NewRecipe("x", tt.steps); !errors.Is(err, ErrMissingRequiredStep) {
			t.Errorf("%s: NewRecipe() error = %v, want ErrMissingRequiredStep", tt.name, err)
		}
	}
}

func TestRecipeStepOrderIsFixed(t *testing.T) {
	t.Parallel()

	var order []string
	record := func(step string) func(io.Writer) {
		return func(io.Writer) { order = append(order, step) }
	}

	recipe, err := NewRecipe("Tea", RecipeSteps{
		Brew:        record("brew"),
		Pour:        record("pour"),
		BeforeServe: record("before"),
		AfterServe:  record("after"),
	})
	if err != nil {
		t.Fatalf("NewRecipe() error: %v", err)
	}

	var buf strings.Builder
	recipe.Prepare(&buf)

	want := []string{"brew", "pour", "before", "after"}
	if fmt.Sprint(order) != fmt.Sprint(want) {
		t.Errorf("step order = %v, want %v", order, want)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "Tea: boiling water") {
		t.Errorf("base step must run first:\n%s", out)
	}
	if !strings.Contains(out, "Tea: serving") {
		t.Errorf("base serve step missing:\n%s", out)
	}
}

func TestRecipeHooksAreOptional(t *testing.T) {
	t.Parallel()

	recipe, err := NewRecipe("Plain", RecipeSteps{
		Brew: func(io.Writer) {},
		Pour: func(io.Writer) {},
	})
	if err != nil {
		t.Fatalf("NewRecipe() error: %v", err)
	}

	var buf strings.Builder
	recipe.Prepare(&buf)

	// Base steps appear identically whether or not hooks are set.
	want := "Plain: boiling water\nPlain: serving\n"
	if buf.String() != want {
		t.Errorf("base output = %q, want %q", buf.String(), want)
	}
}
