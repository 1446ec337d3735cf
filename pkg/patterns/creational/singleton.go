package creational

import (
	"fmt"
	"io"
	"sync"
)

// AppConfig is the process-wide unique configuration holder. Only the
// accessor can produce one; the backing struct is unexported so no
// other package can construct a second instance.
type AppConfig interface {
	Get(key string) string
	Set(key, value string)
}

type appConfig struct {
	mu     sync.RWMutex
	values map[string]string
}

func (c *appConfig) Get(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values[key]
}

func (c *appConfig) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

var (
	configOnce sync.Once
	configInst *appConfig
)

// GetAppConfig returns the singleton, constructing it on first call.
// First access is guarded against concurrent double-initialization;
// the instance lives until process exit.
func GetAppConfig() AppConfig {
	configOnce.Do(func() {
		configInst = &appConfig{values: map[string]string{"env": "demo"}}
	})
	return configInst
}

// DemoSingleton shows both accessors yielding the same instance.
func DemoSingleton(w io.Writer) error {
	a := GetAppConfig()
	b := GetAppConfig()
	a.Set("greeting", "hello")

	fmt.Fprintf(w, "same instance: %t\n", a == b)
	_, err := fmt.Fprintf(w, "b.greeting = %s\n", b.Get("greeting"))
	return err
}
