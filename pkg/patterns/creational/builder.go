package creational

import (
	"fmt"
	"io"
	"strings"
)

// Pizza is both the product and its own builder: each Add method
// mutates the pizza and returns it, so toppings chain fluently and the
// pizza is inspectable at any point. No terminal build step exists.
type Pizza struct {
	toppings []string
}

// NewPizza starts a plain pizza.
func NewPizza() *Pizza {
	return &Pizza{}
}

func (p *Pizza) AddCheese() *Pizza {
	p.toppings = append(p.toppings, "cheese")
	return p
}

func (p *Pizza) AddPepperoni() *Pizza {
	p.toppings = append(p.toppings, "pepperoni")
	return p
}

func (p *Pizza) AddMushrooms() *Pizza {
	p.toppings = append(p.toppings, "mushrooms")
	return p
}

// Toppings returns the toppings added so far, in order.
func (p *Pizza) Toppings() []string {
	return p.toppings
}

// Describe renders the pizza's current contents.
func (p *Pizza) Describe() string {
	if len(p.toppings) == 0 {
		return "plain pizza"
	}
	return "pizza with " + strings.Join(p.toppings, ", ")
}

// DemoBuilder shows the product staying usable mid-chain.
func DemoBuilder(w io.Writer) error {
	pizza := NewPizza().AddCheese()
	fmt.Fprintf(w, "So far: %s\n", pizza.Describe())

	pizza.AddPepperoni().AddMushrooms()
	_, err := fmt.Fprintf(w, "Finished: %s\n", pizza.Describe())
	return err
}
