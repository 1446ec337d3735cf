package creational

import (
	"sync"
	"testing"
)

func TestGetAppConfigReturnsSameInstance(t *testing.T) {
	t.Parallel()

	a := GetAppConfig()
	b := GetAppConfig()
	if a != b {
		t.Fatal("GetAppConfig() must return the identical instance")
	}

	a.Set("k", "v")
	if got := b.Get("k"); got != "v" {
		t.Errorf("state set through one accessor invisible through the other: %q", got)
	}
}

func TestGetAppConfigConcurrentFirstAccess(t *testing.T) {
	t.Parallel()

	const goroutines = 16
	results := make([]AppConfig, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = GetAppConfig()
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if results[i] != results[0] {
			t.Fatalf("goroutine %d observed a different instance", i)
		}
	}
}
