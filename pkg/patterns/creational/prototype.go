package creational

import (
	"fmt"
	"io"
)

// Prototype is a base template plus overrides: a lookup first checks an
// object's own fields, then falls back through its held prototype
// reference. Chains of any depth are supported.
type Prototype struct {
	fields map[string]string
	parent *Prototype
}

// NewPrototype creates a prototype deriving from parent. A nil parent
// makes it a chain root.
func NewPrototype(parent *Prototype) *Prototype {
	return &Prototype{fields: make(map[string]string), parent: parent}
}

// Set stores an own field, shadowing any inherited value.
func (p *Prototype) Set(key, value string) *Prototype {
	p.fields[key] = value
	return p
}

// Lookup resolves key against own fields first, then walks up the
// prototype chain. The second return reports whether key was found.
func (p *Prototype) Lookup(key string) (string, bool) {
	if v, ok := p.fields[key]; ok {
		return v, true
	}
	if p.parent != nil {
		return p.parent.Lookup(key)
	}
	return "", false
}

// DemoPrototype derives a dog from an animal template and a puppy from
// the dog, showing shadowing and multi-hop fallback.
func DemoPrototype(w io.Writer) error {
	animal := NewPrototype(nil).Set("eats", "food").Set("legs", "4")
	dog := NewPrototype(animal).Set("sound", "woof")
	puppy := NewPrototype(dog).Set("size", "small")

	for _, key := range []string{"size", "sound", "legs", "wings"} {
		v, ok := puppy.Lookup(key)
		if !ok {
			v = "<not found>"
		}
		if _, err := fmt.Fprintf(w, "puppy.%s = %s\n", key, v); err != nil {
			return err
		}
	}
	return nil
}
