package behavioral

import (
	"errors"
	"fmt"
	"io"
)

// ErrMissingRequiredStep is returned when a recipe is built without one
// of its mandatory steps.
var ErrMissingRequiredStep = errors.New("behavioral: recipe requires Brew and Pour steps")

// RecipeSteps supplies the variable parts of the brewing template.
// Brew and Pour are required; the hooks default to no-ops.
type RecipeSteps struct {
	Brew func(w io.Writer) // required
	Pour func(w io.Writer) // required

	// Optional hooks around the fixed sequence.
	BeforeServe func(w io.Writer)
	AfterServe  func(w io.Writer)
}

// Recipe runs a fixed brewing sequence: boil, brew, pour, hooks around
// serving. The step order never varies; only step bodies do.
type Recipe struct {
	name  string
	steps RecipeSteps
}

// NewRecipe validates that both required steps are present. Missing
// required steps are a construction error, never a runtime surprise.
func NewRecipe(name string, steps RecipeSteps) (*Recipe, error) {
	if steps.Brew == nil || steps.Pour == nil {
		return nil, ErrMissingRequiredStep
	}
	return &Recipe{name: name, steps: steps}, nil
}

// Prepare executes the template: boilWater, Brew, Pour, BeforeServe
// hook, serve, AfterServe hook.
func (r *Recipe) Prepare(w io.Writer) {
	fmt.Fprintf(w, "%s: boiling water\n", r.name)
	r.steps.Brew(w)
	r.steps.Pour(w)
	if r.steps.BeforeServe != nil {
		r.steps.BeforeServe(w)
	}
	fmt.Fprintf(w, "%s: serving\n", r.name)
	if r.steps.AfterServe != nil {
		r.steps.AfterServe(w)
	}
}

// DemoTemplateMethod prepares tea (required steps only) and coffee
// (required steps plus a hook).
func DemoTemplateMethod(w io.Writer) error {
	tea, err := NewRecipe("Tea", RecipeSteps{
		Brew: func(w io.Writer) { fmt.Fprintln(w, "Tea: steeping the leaves") },
		Pour: func(w io.Writer) { fmt.Fprintln(w, "Tea: pouring into a cup") },
	})
	if err != nil {
		return err
	}
	tea.Prepare(w)

	coffee, err := NewRecipe("Coffee", RecipeSteps{
		Brew:        func(w io.Writer) { fmt.Fprintln(w, "Coffee: dripping through the filter") },
		Pour:        func(w io.Writer) { fmt.Fprintln(w, "Coffee: pouring into a mug") },
		BeforeServe: func(w io.Writer) { fmt.Fprintln(w, "Coffee: adding sugar and milk") },
	})
	if err != nil {
		return err
	}
	coffee.Prepare(w)
	return nil
}
