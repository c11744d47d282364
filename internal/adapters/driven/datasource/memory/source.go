// Package memory provides an in-process data source. Tests use it to
// serve fixture files, with optional per-file delays to control the
// order in which concurrent fetches complete.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/custodia-labs/postliste/internal/core/domain"
	"github.com/custodia-labs/postliste/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.DataSource = (*Source)(nil)

// Source serves files from a map.
type Source struct {
	mu      sync.RWMutex
	files   map[string][]byte
	delays  map[string]time.Duration
	fetched []string
}

// NewSource creates a source serving files. The map is copied.
func NewSource(files map[string][]byte) *Source {
	s := &Source{
		files:  make(map[string][]byte, len(files)),
		delays: make(map[string]time.Duration),
	}
	for name, data := range files {
		s.files[name] = data
	}
	return s
}

// Put adds or replaces a file.
func (s *Source) Put(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = data
}

// PutString adds or replaces a file with text content.
func (s *Source) PutString(name, data string) {
	s.Put(name, []byte(data))
}

// Delay makes fetches of name wait d before returning.
func (s *Source) Delay(name string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays[name] = d
}

// Fetch returns a copy of the named file.
func (s *Source) Fetch(ctx context.Context, name string) ([]byte, error) {
	s.mu.Lock()
	s.fetched = append(s.fetched, name)
	delay := s.delays[name]
	data, ok := s.files[name]
	s.mu.Unlock()

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if !ok {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrNotFound)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Fetched returns the names requested so far, in request order.
func (s *Source) Fetched() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.fetched))
	copy(out, s.fetched)
	return out
}

// Location returns a fixed description.
func (s *Source) Location() string {
	return ":memory:"
}
