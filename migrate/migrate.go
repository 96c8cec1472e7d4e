// Package migrate implements the append-only migration pipeline (C9):
// ordinal-tagged pure functions over a persisted facts map, applied in
// order from a blob's recorded migrations-applied count up to the
// registry's total, before the result is parsed into typed Values.
package migrate

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/trueprep/fact-graph/store"
)

// ErrMigrate reports a malformed registry or blob: a migrations_applied
// value out of range for the registered migrations, or unparseable JSON.
var ErrMigrate = errors.New("migrate")

// FactsMap is the generic JSON representation a migration operates over:
// path string to its still-tagged JSON value (a map[string]any for a
// tagged scalar, or nested further for a Collection's member subtree).
// This is the shape the persisted blob's "facts" object decodes to
// before store.FromJSON parses it into typed Values.
type FactsMap = map[string]any

// Func transforms facts from one schema version to the next. A
// well-behaved Func rewrites, renames, or restructures only what its
// version's change calls for and leaves every other path untouched.
type Func func(FactsMap) FactsMap

// Migration pairs a transform with its ordinal. Ordinals are contiguous
// from 1 and, once registered, are never reused, renumbered, or
// reordered: new schema changes only ever append.
type Migration struct {
	Ordinal int
	Fn      Func
}

// Registry is the ordered, append-only list of migrations a persisted
// blob's facts are brought forward through on load.
type Registry struct {
	migrations []Migration
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry { return &Registry{} }

// Register appends fn as the next ordinal (current length + 1).
// Chainable.
func (r *Registry) Register(fn Func) *Registry {
	r.migrations = append(r.migrations, Migration{Ordinal: len(r.migrations) + 1, Fn: fn})
	return r
}

// Total returns TOTAL, the number of registered migrations.
func (r *Registry) Total() int { return len(r.migrations) }

// Apply runs every migration after already (exclusive) through Total
// (inclusive), in order, over facts. Calling it again with already ==
// Total is a no-op and returns facts unchanged, so Load is safe to call
// against an already-current blob.
func (r *Registry) Apply(facts FactsMap, already int) (FactsMap, error) {
	if already < 0 || already > len(r.migrations) {
		return nil, fmt.Errorf("%w: migrations_applied %d out of range for %d registered", ErrMigrate, already, len(r.migrations))
	}
	for _, m := range r.migrations[already:] {
		facts = m.Fn(facts)
	}
	return facts, nil
}

// persisted mirrors store's own on-the-wire shape, except Facts decodes
// generically (map[string]any) rather than as raw JSON per key, so a
// migration can inspect and rewrite it directly.
type persisted struct {
	Facts      FactsMap `json:"facts"`
	Migrations int      `json:"migrations"`
}

// Load reads a persisted blob, brings its facts map forward through
// every migration registry has beyond what the blob records as already
// applied, then parses the result into a typed *store.Store using
// resolveOptions for Enum/MultiEnum option validation (spec §4.8: "parse
// values into typed Values using the current dictionary's types").
func Load(raw []byte, registry *Registry, resolveOptions store.OptionSource) (*store.Store, error) {
	var p persisted
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMigrate, err)
	}
	facts, err := registry.Apply(p.Facts, p.Migrations)
	if err != nil {
		return nil, err
	}
	rewritten, err := json.Marshal(persisted{Facts: facts, Migrations: registry.Total()})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMigrate, err)
	}
	return store.FromJSON(rewritten, resolveOptions)
}
