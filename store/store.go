// Package store implements the writable value store (C5): the mapping
// from a concrete path to its stored Value, owned by a graph and
// JSON-serializable as a unit alongside a migrations counter.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/exp/maps"

	"github.com/trueprep/fact-graph/fgpath"
	"github.com/trueprep/fact-graph/value"
)

// ErrStore reports a malformed store, such as unparseable persisted JSON.
var ErrStore = errors.New("store")

// Entry pairs a concrete path with its stored value, returned by
// EnumerateWritables in a stable, sorted order.
type Entry struct {
	Path  string
	Value value.Value
}

// Store is a mapping from concrete-path (as string) to Value, plus a
// migrations-applied counter. A zero Store is ready to use.
type Store struct {
	facts             map[string]value.Value
	migrationsApplied int
}

// New returns an empty Store.
func New() *Store {
	return &Store{facts: map[string]value.Value{}}
}

// Get returns the value stored at path, if any.
func (s *Store) Get(path string) (value.Value, bool) {
	v, ok := s.facts[path]
	return v, ok
}

// Put unconditionally replaces the value at path, inserting it on first
// write.
func (s *Store) Put(path string, v value.Value) {
	if s.facts == nil {
		s.facts = map[string]value.Value{}
	}
	s.facts[path] = v
}

// Delete removes path from the store. A no-op if path was never written.
func (s *Store) Delete(path string) {
	delete(s.facts, path)
}

// Len returns the number of stored facts.
func (s *Store) Len() int { return len(s.facts) }

// MigrationsApplied returns the number of migrations already applied to
// this store's contents.
func (s *Store) MigrationsApplied() int { return s.migrationsApplied }

// SetMigrationsApplied records that n migrations have now been applied.
func (s *Store) SetMigrationsApplied(n int) { s.migrationsApplied = n }

// EnumerateWritables returns every stored (path, value) pair, sorted by
// path for deterministic iteration.
func (s *Store) EnumerateWritables() []Entry {
	keys := maps.Keys(s.facts)
	sort.Strings(keys)
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Path: k, Value: s.facts[k]})
	}
	return entries
}

// persisted is the on-the-wire shape of a Store: {facts: {path: tagged
// value}, migrations: n}.
type persisted struct {
	Facts      map[string]json.RawMessage `json:"facts"`
	Migrations int                        `json:"migrations"`
}

// ToJSON encodes the store as {facts: {path: tagged-value}, migrations: n}.
// When indent is true the output is pretty-printed with two-space
// indentation.
func (s *Store) ToJSON(indent bool) ([]byte, error) {
	facts := make(map[string]json.RawMessage, len(s.facts))
	for path, v := range s.facts {
		raw, err := value.MarshalTagged(v)
		if err != nil {
			return nil, fmt.Errorf("%w: encoding %s: %w", ErrStore, path, err)
		}
		facts[path] = raw
	}
	p := persisted{Facts: facts, Migrations: s.migrationsApplied}
	if indent {
		return json.MarshalIndent(p, "", "  ")
	}
	return json.Marshal(p)
}

// OptionSource resolves the live Enum/MultiEnum option set for an
// options path, used while decoding so that FromJSON can validate
// choices rather than accept them unchecked. A nil OptionSource skips
// validation (the caller is expected to re-validate via the limit
// package's intrinsic enum check before trusting the value).
type OptionSource func(optionsPath string) (options []string, ok bool)

// FromJSON decodes a store previously produced by ToJSON. raw's facts are
// decoded with resolveOptions (may be nil) supplying the Enum/MultiEnum
// option set per stored fact path; every other kind ignores it.
func FromJSON(raw []byte, resolveOptions OptionSource) (*Store, error) {
	var p persisted
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	s := New()
	s.migrationsApplied = p.Migrations
	for path, item := range p.Facts {
		var opts *value.OptionSource
		var peek struct {
			Type string `json:"$type"`
		}
		if err := json.Unmarshal(item, &peek); err == nil && resolveOptions != nil {
			if o, ok := resolveOptions(path); ok {
				opts = &value.OptionSource{Path: path, Options: o}
			}
		}
		v, err := value.UnmarshalTagged(item, opts)
		if err != nil {
			return nil, fmt.Errorf("%w: decoding %s: %w", ErrStore, path, err)
		}
		s.facts[path] = v
	}
	return s, nil
}

// DictionaryPaths is the narrow surface SyncWithDictionary needs from a
// dictionary: whether it still declares a writable at an abstract path.
// Kept separate from the dictionary package to avoid an import cycle
// (dictionary never needs to import store).
type DictionaryPaths interface {
	HasAbstract(abstractPath string) bool
}

// SyncWithDictionary drops every stored entry whose abstract path is no
// longer declared in dict, returning the dropped paths. Entries whose
// concrete path fails to parse are treated as stale and dropped too.
func (s *Store) SyncWithDictionary(dict DictionaryPaths) []string {
	var dropped []string
	for path := range s.facts {
		concrete, err := fgpath.Parse(path)
		if err != nil {
			dropped = append(dropped, path)
			continue
		}
		if !dict.HasAbstract(concrete.ToAbstract().String()) {
			dropped = append(dropped, path)
		}
	}
	sort.Strings(dropped)
	for _, path := range dropped {
		delete(s.facts, path)
	}
	return dropped
}
