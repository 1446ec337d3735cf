package structural

import (
	"fmt"
	"io"
)

// KeyValueStore is the contract shared by the real store and its proxy.
type KeyValueStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MapStore is the real subject.
type MapStore struct {
	values map[string]string
}

// NewMapStore creates an empty store.
func NewMapStore() *MapStore {
	return &MapStore{values: make(map[string]string)}
}

func (s *MapStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *MapStore) Set(key, value string) {
	s.values[key] = value
}

// LoggingProxy intercepts every access, logs it, then forwards the
// operation unchanged and returns exactly what the target returned.
type LoggingProxy struct {
	target KeyValueStore
	log    io.Writer
}

// NewLoggingProxy wraps target, writing one log line per access.
func NewLoggingProxy(target KeyValueStore, log io.Writer) *LoggingProxy {
	return &LoggingProxy{target: target, log: log}
}

func (p *LoggingProxy) Get(key string) (string, bool) {
	v, ok := p.target.Get(key)
	fmt.Fprintf(p.log, "proxy: get %s -> %q (found=%t)\n", key, v, ok)
	return v, ok
}

func (p *LoggingProxy) Set(key, value string) {
	fmt.Fprintf(p.log, "proxy: set %s = %q\n", key, value)
	p.target.Set(key, value)
}

// DemoProxy drives the store through the proxy only.
func DemoProxy(w io.Writer) error {
	var store KeyValueStore = NewLoggingProxy(NewMapStore(), w)

	store.Set("city", "Guadalajara")
	store.Get("city")
	store.Get("country")
	return nil
}
