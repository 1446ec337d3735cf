package creational

import "testing"

func TestPizzaChainsFluently(t *testing.T) {
	t.Parallel()

	pizza := NewPizza().AddCheese().AddPepperoni().AddMushrooms()
	want := []string{"cheese", "pepperoni", "mushrooms"}
	got := pizza.Toppings()
	if len(got) != len(want) {
		t.Fatalf("toppings = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("topping %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPizzaUsableMidChain(t *testing.T) {
	t.Parallel()

	pizza := NewPizza()
	if pizza.Describe() != "plain pizza" {
		t.Errorf("empty pizza = %q", pizza.Describe())
	}

	pizza.AddCheese()
	if pizza.Describe() != "pizza with cheese" {
		t.Errorf("mid-chain pizza = %q", pizza.Describe())
	}

	pizza.AddPepperoni()
	if pizza.Describe() != "pizza with cheese, pepperoni" {
		t.Errorf("final pizza = %q", pizza.Describe())
	}
}

func TestEachAddReturnsSameProduct(t *testing.T) {
	t.Parallel()

	pizza := NewPizza()
	if pizza.AddCheese() != pizza || pizza.AddPepperoni() != pizza {
		t.Error("Add methods must return the receiver")
	}
}
