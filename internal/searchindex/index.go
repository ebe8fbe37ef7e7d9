package searchindex

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// Entry is one indexable page or section of the documentation site.
type Entry struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content,omitempty"`
	Excerpt string `json:"excerpt,omitempty"`
}

// Index is an ordered, immutable sequence of entries.
type Index struct {
	entries []Entry
}

// New builds an Index from entries. The slice is copied.
func New(entries []Entry) *Index {
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &Index{entries: cp}
}

// Empty returns an index with no entries.
func Empty() *Index {
	return &Index{}
}

// Len returns the number of entries.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}

// At returns the i-th entry in insertion order.
func (idx *Index) At(i int) Entry {
	return idx.entries[i]
}

// Entries returns a copy of all entries in insertion order.
func (idx *Index) Entries() []Entry {
	if idx == nil {
		return nil
	}
	cp := make([]Entry, len(idx.entries))
	copy(cp, idx.entries)
	return cp
}

// Decode parses a JSON array of entries. On error no index is returned.
func Decode(r io.Reader) (*Index, error) {
	var entries []Entry
	dec := json.NewDecoder(r)
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding search index: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("decoding search index: unexpected data after array")
	}
	return &Index{entries: entries}, nil
}

// Write writes entries as indented JSON to path.
func Write(entries []Entry, path string) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Store holds the index for the lifetime of one search component.
// It starts empty and accepts exactly one loaded index; readers always see
// either the empty index or the complete loaded one.
type Store struct {
	empty   *Index
	current atomic.Pointer[Index]
}

// NewStore returns a Store holding the empty index.
func NewStore() *Store {
	s := &Store{empty: Empty()}
	s.current.Store(s.empty)
	return s
}

// Get returns the current index. Never nil.
func (s *Store) Get() *Index {
	return s.current.Load()
}

// Set publishes idx if nothing has been published yet. It reports whether
// idx was stored.
func (s *Store) Set(idx *Index) bool {
	if idx == nil {
		return false
	}
	return s.current.CompareAndSwap(s.empty, idx)
}

// Loaded reports whether an index has been published.
func (s *Store) Loaded() bool {
	return s.current.Load() != s.empty
}
