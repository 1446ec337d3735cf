package structural

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// CarFlyweight holds intrinsic state shared across every car of the
// same brand, model and color. Per-car state is always passed in, never
// stored here.
type CarFlyweight struct {
	brand string
	model string
	color string
}

// Register writes a registration line combining the shared state with
// the per-call plate and owner.
func (f *CarFlyweight) Register(w io.Writer, plate, owner string) {
	fmt.Fprintf(w, "Registered %s %s (%s) plate=%s owner=%s\n",
		f.brand, f.model, f.color, plate, owner)
}

// CarFactory caches flyweights by their intrinsic state. Equal shared
// state always yields the same instance; entries live for the process
// lifetime. Check-then-create is serialized for concurrent callers.
type CarFactory struct {
	mu    sync.Mutex
	cache map[string]*CarFlyweight
}

// NewCarFactory creates an empty factory.
func NewCarFactory() *CarFactory {
	return &CarFactory{cache: make(map[string]*CarFlyweight)}
}

// key derives the deterministic cache key from intrinsic state.
func (f *CarFactory) key(brand, model, color string) string {
	return strings.Join([]string{brand, model, color}, "_")
}

// GetFlyweight returns the cached flyweight for the shared state,
// constructing and caching it on first request.
func (f *CarFactory) GetFlyweight(brand, model, color string) *CarFlyweight {
	f.mu.Lock()
	defer f.mu.Unlock()

	k := f.key(brand, model, color)
	if fw, ok := f.cache[k]; ok {
		return fw
	}
	fw := &CarFlyweight{brand: brand, model: model, color: color}
	f.cache[k] = fw
	return fw
}

// Size reports how many distinct flyweights exist.
func (f *CarFactory) Size() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cache)
}

// DemoFlyweight registers three cars that share two flyweights.
func DemoFlyweight(w io.Writer) error {
	factory := NewCarFactory()

	factory.GetFlyweight("BMW", "X1", "red").Register(w, "CL234IR", "James Doe")
	factory.GetFlyweight("BMW", "X1", "red").Register(w, "XX555OO", "Jane Roe")
	factory.GetFlyweight("Mercedes", "C300", "black").Register(w, "AB123CD", "John Smith")

	_, err := fmt.Fprintf(w, "Flyweights in cache: %d\n", factory.Size())
	return err
}
