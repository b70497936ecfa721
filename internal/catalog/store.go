package catalog

import "sync/atomic"

// Store hands out the current catalog and lets a reloader replace it atomically.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore creates a Store serving c.
func NewStore(c *Catalog) *Store {
	s := &Store{}
	s.current.Store(c)
	return s
}

// Current returns the catalog in effect.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Swap installs c and returns the catalog it replaced.
func (s *Store) Swap(c *Catalog) *Catalog {
	return s.current.Swap(c)
}
