package structural

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestEqualSharedStateYieldsSameInstance(t *testing.T) {
	t.Parallel()

	factory := NewCarFactory()
	a := factory.GetFlyweight("BMW", "X1", "red")
	b := factory.GetFlyweight("BMW", "X1", "red")
	if a != b {
		t.Fatal("equal shared state must return the identical cached instance")
	}
	if factory.Size() != 1 {
		t.Errorf("cache size = %d, want 1", factory.Size())
	}
}

func TestUnseenKeyGrowsCacheByOne(t *testing.T) {
	t.Parallel()

	factory := NewCarFactory()
	factory.GetFlyweight("BMW", "X1", "red")
	before := factory.Size()
	factory.GetFlyweight("BMW", "X1", "blue")
	if factory.Size() != before+1 {
		t.Errorf("cache size = %d, want %d", factory.Size(), before+1)
	}
}

func TestUniqueStateIsNeverCached(t *testing.T) {
	t.Parallel()

	factory := NewCarFactory()
	fw := factory.GetFlyweight("BMW", "X1", "red")

	var buf strings.Builder
	fw.Register(&buf, "CL234IR", "James Doe")
	fw.Register(&buf, "XX555OO", "Jane Roe")

	out := buf.String()
	if !strings.Contains(out, "CL234IR") || !strings.Contains(out, "XX555OO") {
		t.Errorf("per-call state missing from output:\n%s", out)
	}
	if factory.Size() != 1 {
		t.Errorf("registering cars must not grow the cache, size = %d", factory.Size())
	}
}

func TestConcurrentGetFlyweightCreatesOnePerKey(t *testing.T) {
	t.Parallel()

	factory := NewCarFactory()
	const goroutines = 32
	results := make([]*CarFlyweight, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = factory.GetFlyweight("Audi", "A4", fmt.Sprintf("color-%d", i%4))
		}(i)
	}
	wg.Wait()

	if factory.Size() != 4 {
		t.Fatalf("cache size = %d, want 4", factory.Size())
	}
	for i := 4; i < goroutines; i++ {
		if results[i] != results[i%4] {
			t.Fatalf("goroutine %d got a duplicate flyweight for its key", i)
		}
	}
}
