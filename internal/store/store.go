// Package store persists each entity collection as one JSON document of the
// shape {"<name>": [...]}. Every operation reads or rewrites the whole
// document; a per-collection mutex serializes access so concurrent requests
// cannot interleave partial writes, though last-writer-wins across
// logically concurrent edits remains possible.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection is a handle to one on-disk collection document.
type Collection[T any] struct {
	path string
	name string
	mu   sync.Mutex
}

// NewCollection ensures the data directory exists and returns a handle for
// the collection named name, backed by <dir>/<name>.json.
func NewCollection[T any](dir, name string) (*Collection[T], error) {
	if dir == "" {
		dir = "./data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Collection[T]{
		path: filepath.Join(dir, name+".json"),
		name: name,
	}, nil
}

// Load reads the full collection. A missing or unparsable document yields an
// empty slice, never an error; callers always get a usable sequence.
func (c *Collection[T]) Load() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Save rewrites the full collection document.
func (c *Collection[T]) Save(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(records)
}

// Mutate performs a load-modify-save cycle under the collection lock and
// returns the sequence that was persisted.
func (c *Collection[T]) Mutate(fn func([]T) ([]T, error)) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return nil, err
	}
	updated, err := fn(records)
	if err != nil {
		return nil, err
	}
	if err := c.save(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Seed writes the default records only if the backing document does not
// exist yet. Calling it again is a no-op, so startup seeding is idempotent.
func (c *Collection[T]) Seed(defaults []T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := os.Stat(c.path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat %s: %w", c.path, err)
	}
	if err := c.save(defaults); err != nil {
		return false, err
	}
	return true, nil
}

// Path exposes the backing file path (useful for debugging).
func (c *Collection[T]) Path() string {
	return c.path
}

func (c *Collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return []T{}, nil
	}
	raw, ok := doc[c.name]
	if !ok {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return []T{}, nil
	}
	return records, nil
}

func (c *Collection[T]) save(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(map[string][]T{c.name: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}

	// Temp-file-and-rename so a crash mid-write never leaves a truncated
	// document behind.
	tmp, err := os.CreateTemp(filepath.Dir(c.path), c.name+"-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", c.name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, c.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", c.path, err)
	}
	return nil
}
