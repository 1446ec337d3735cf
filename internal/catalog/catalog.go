// Package catalog indexes every pattern demonstration shipped with the
// binary. The CLI lists, explains and runs demos exclusively through
// this registry.
package catalog

import (
	"fmt"
	"io"
	"strings"
)

// Category groups patterns the way the GoF book does.
type Category string

const (
	Behavioral Category = "behavioral"
	Creational Category = "creational"
	Structural Category = "structural"
)

// Runner executes one demo, writing its illustrative output to w.
type Runner func(w io.Writer) error

// Entry describes a single pattern demonstration.
type Entry struct {
	Name     string
	Category Category
	Summary  string
	Doc      string // markdown, rendered by `patterns explain`
	Run      Runner
}

// All returns every entry in declaration order: behavioral, creational,
// structural, each category in its fixed internal order.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Categories returns the category names in display order.
func Categories() []Category {
	return []Category{Behavioral, Creational, Structural}
}

// ByCategory returns the entries of one category, preserving order.
func ByCategory(cat Category) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

// Lookup finds an entry by name, case-insensitively.
func Lookup(name string) (Entry, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, e := range entries {
		if e.Name == needle {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("unknown pattern %q (try 'patterns list')", name)
}
