// Package dictionary implements the immutable fact dictionary (C6): the
// closed set of fact definitions, keyed by abstract path, that a graph is
// instantiated against.
package dictionary

import (
	"errors"
	"fmt"
	"sort"

	"github.com/trueprep/fact-graph/expr"
	"github.com/trueprep/fact-graph/fgpath"
	"github.com/trueprep/fact-graph/limit"
	"github.com/trueprep/fact-graph/value"
)

// ErrDictionary reports a malformed dictionary or a query against one: a
// duplicate, unparseable or relative abstract path, a derived fact missing
// its expression, a writable fact declaring one, a duplicate or unknown
// module, or a dependency query for an undeclared path.
var ErrDictionary = errors.New("dictionary")

// Override is a conditional replacement for a writable fact's value and
// placeholder. At read time, the first Override whose Condition is
// Complete(true) wins; its Replacement stands in for both the stored
// value and the Placeholder.
type Override struct {
	Condition   expr.Node
	Replacement expr.Node
}

// FactDefinition is one entry in the dictionary: an abstract path plus
// everything needed to build a fact instance when that path (or a
// concrete instantiation of it) is first resolved. Immutable once a
// Dictionary is frozen.
type FactDefinition struct {
	// AbstractPath is the path string as declared, e.g. "/filers/*/age".
	AbstractPath string
	DeclaredType value.Kind
	IsWritable   bool

	// Expression is the derivation tree for a non-writable fact. Required
	// when IsWritable is false; must be nil when IsWritable is true (a
	// writable fact's ordinary read path is its stored value, not an
	// expression — Placeholder and Overrides cover the cases where it
	// isn't).
	Expression expr.Node

	// Limits apply only to writable facts; checked on Set, TrySet and Save.
	Limits []limit.Limit

	// EnumOptions is set only for Enum/MultiEnum declared types, supplying
	// the intrinsic option-membership limit (spec invariant 8).
	EnumOptions *expr.EnumOptions

	// Placeholder, if set, is evaluated (and its result demoted to
	// Placeholder) when a writable fact is read with no stored value.
	Placeholder expr.Node

	// Overrides apply to writable facts only.
	Overrides []Override
}

// Dictionary is an immutable set of fact definitions keyed by abstract
// path, plus a set of named modules (root paths Dep can resolve against
// by name). Read-only and safe for concurrent use once frozen.
type Dictionary struct {
	facts   map[string]FactDefinition
	modules map[string]fgpath.Path
}

// Lookup returns the definition declared at abstractPath, if any.
func (d *Dictionary) Lookup(abstractPath string) (FactDefinition, bool) {
	def, ok := d.facts[abstractPath]
	return def, ok
}

// HasAbstract reports whether abstractPath is declared. Also satisfies
// store.DictionaryPaths, so a *Dictionary can be passed directly to
// Store.SyncWithDictionary.
func (d *Dictionary) HasAbstract(abstractPath string) bool {
	_, ok := d.facts[abstractPath]
	return ok
}

// ResolveModule returns the root path registered for a named module.
// Also satisfies the module-resolution half of expr.EvalContext, which
// graph.FactInstance delegates to its dictionary.
func (d *Dictionary) ResolveModule(name string) (fgpath.Path, bool) {
	p, ok := d.modules[name]
	return p, ok
}

// AbstractPaths returns every declared abstract path, sorted.
func (d *Dictionary) AbstractPaths() []string {
	keys := make([]string, 0, len(d.facts))
	for k := range d.facts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Builder accumulates fact definitions and named modules before Freeze
// produces an immutable Dictionary. The zero Builder is not usable; use
// NewBuilder.
type Builder struct {
	facts   map[string]FactDefinition
	modules map[string]fgpath.Path
	err     error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{facts: map[string]FactDefinition{}, modules: map[string]fgpath.Path{}}
}

// Define adds def to the builder. Chainable; once an error occurs,
// further calls are no-ops and Freeze returns that error.
func (b *Builder) Define(def FactDefinition) *Builder {
	if b.err != nil {
		return b
	}
	path, err := fgpath.Parse(def.AbstractPath)
	if err != nil {
		b.err = fmt.Errorf("%w: %s: %w", ErrDictionary, def.AbstractPath, err)
		return b
	}
	if !path.Absolute {
		b.err = fmt.Errorf("%w: %s: abstract path must be absolute", ErrDictionary, def.AbstractPath)
		return b
	}
	if _, exists := b.facts[def.AbstractPath]; exists {
		b.err = fmt.Errorf("%w: duplicate definition at %s", ErrDictionary, def.AbstractPath)
		return b
	}
	if !def.IsWritable && def.Expression == nil {
		b.err = fmt.Errorf("%w: %s: derived fact has no expression", ErrDictionary, def.AbstractPath)
		return b
	}
	if def.IsWritable && def.Expression != nil {
		b.err = fmt.Errorf("%w: %s: writable fact must not declare an expression", ErrDictionary, def.AbstractPath)
		return b
	}
	b.facts[def.AbstractPath] = def
	return b
}

// Module registers name as resolving to root for Dep(path, module).
func (b *Builder) Module(name string, root fgpath.Path) *Builder {
	if b.err != nil {
		return b
	}
	if _, exists := b.modules[name]; exists {
		b.err = fmt.Errorf("%w: duplicate module %q", ErrDictionary, name)
		return b
	}
	b.modules[name] = root
	return b
}

// Freeze validates the accumulated definitions and returns an immutable
// Dictionary, or the first error encountered by Define/Module.
func (b *Builder) Freeze() (*Dictionary, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &Dictionary{facts: b.facts, modules: b.modules}, nil
}
