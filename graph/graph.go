// Package graph implements the Fact Graph runtime (C8): a fact-instance
// cache and result cache layered over a dictionary and a writable store,
// with lazy memoized evaluation, cycle detection, and the mutating
// operations (set, delete, add/remove member, save) that invalidate the
// result cache.
package graph

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/trueprep/fact-graph/dictionary"
	"github.com/trueprep/fact-graph/fgpath"
	"github.com/trueprep/fact-graph/limit"
	"github.com/trueprep/fact-graph/result"
	"github.com/trueprep/fact-graph/store"
	"github.com/trueprep/fact-graph/value"
)

// Graph is the runtime evaluation engine: a dictionary (shared,
// read-only), an owned store, a monotonic fact-instance cache, and a
// result cache that's fully cleared on every write. Not safe for
// concurrent use — one graph per worker (spec §5).
type Graph struct {
	dict  *dictionary.Dictionary
	store *store.Store
	today value.Day

	factCache   map[string]*FactInstance
	resultCache map[string]result.Result
	inProgress  map[string]bool
	log         logrus.FieldLogger
}

// Option configures a Graph at construction.
type Option func(*Graph)

// WithToday fixes the value Today() expressions observe. Without it, the
// graph uses the real current date.
func WithToday(d value.Day) Option {
	return func(g *Graph) { g.today = d }
}

// WithLogger attaches a structured logger the graph uses for explain
// tracing (C10). Without it, Explain logs nothing — the evaluation
// engine otherwise stays logging-free on the hot path, matching the
// teacher's separation of core logic from its adapters' logging.
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *Graph) { g.log = l }
}

// New returns a Graph over dict and st. st is owned by the returned
// Graph; callers must not mutate it directly afterward.
func New(dict *dictionary.Dictionary, st *store.Store, opts ...Option) *Graph {
	now := time.Now()
	g := &Graph{
		dict:        dict,
		store:       st,
		today:       value.NewDay(now.Year(), now.Month(), now.Day()),
		factCache:   map[string]*FactInstance{},
		resultCache: map[string]result.Result{},
		inProgress:  map[string]bool{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Store returns the graph's underlying store, for callers that need to
// serialize it (ToJSON) or hand it to a migration pipeline.
func (g *Graph) Store() *store.Store { return g.store }

// Dictionary returns the graph's dictionary.
func (g *Graph) Dictionary() *dictionary.Dictionary { return g.dict }

func (g *Graph) invalidateResultCache() {
	g.resultCache = map[string]result.Result{}
}

// factInstance returns the cached FactInstance for concrete, creating it
// from the matching abstract definition on first resolution. The fact
// cache is monotonic: once created, an instance is never evicted, even
// across writes (only the result cache is write-invalidated).
func (g *Graph) factInstance(concrete fgpath.Path) (*FactInstance, error) {
	key := concrete.String()
	if fi, ok := g.factCache[key]; ok {
		return fi, nil
	}
	def, ok := g.dict.Lookup(concrete.ToAbstract().String())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPath, key)
	}
	fi := &FactInstance{path: concrete, def: def, graph: g}
	g.factCache[key] = fi
	return fi, nil
}

// force evaluates (or returns the memoized Result for) the single
// concrete path, detecting self-referential recursion within the same
// evaluation.
func (g *Graph) force(concrete fgpath.Path) (result.Result, error) {
	key := concrete.String()
	if r, ok := g.resultCache[key]; ok {
		return r, nil
	}
	if g.inProgress[key] {
		return result.Result{}, fmt.Errorf("%w: %s", ErrEvaluationCycle, key)
	}
	fi, err := g.factInstance(concrete)
	if err != nil {
		return result.Result{}, err
	}

	g.inProgress[key] = true
	r, err := fi.force()
	delete(g.inProgress, key)
	if err != nil {
		return result.Result{}, err
	}

	g.resultCache[key] = r
	return r, nil
}

// memberLister backs fgpath.Path.Populate: the member ids of the
// Collection stored (or derived) at collectionPath.
func (g *Graph) memberLister(collectionPath fgpath.Path) ([]string, error) {
	r, err := g.force(collectionPath)
	if err != nil {
		return nil, err
	}
	v, ok := r.Value()
	if !ok {
		return nil, nil
	}
	c, ok := v.(value.Collection)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a Collection", ErrGraph, collectionPath.String())
	}
	return c.Members(), nil
}

// resolveAbsolute resolves an already-absolute path (concrete or
// abstract) to a Vector: Single for a concrete path, Multiple — via
// wildcard population against current collection membership — for an
// abstract one.
func (g *Graph) resolveAbsolute(path fgpath.Path) (result.Vector, error) {
	if path.IsAbstract() {
		concretePaths, err := path.Populate(g.memberLister)
		if err != nil {
			return result.Vector{}, err
		}
		results := make([]result.Result, len(concretePaths))
		for i, cp := range concretePaths {
			r, err := g.force(cp)
			if err != nil {
				return result.Vector{}, err
			}
			results[i] = r
		}
		return result.Multiple(results, true), nil
	}
	r, err := g.force(path)
	if err != nil {
		return result.Vector{}, err
	}
	return result.Single(r), nil
}

func parseAbsolute(pathStr string) (fgpath.Path, error) {
	p, err := fgpath.Parse(pathStr)
	if err != nil {
		return fgpath.Path{}, err
	}
	return fgpath.Root().Resolve(p)
}

// Get resolves path to one concrete fact and returns its Result. Returns
// an error if path resolves to more than one concrete fact (use GetVect
// for wildcard paths).
func (g *Graph) Get(pathStr string) (result.Result, error) {
	abs, err := parseAbsolute(pathStr)
	if err != nil {
		return result.Result{}, err
	}
	v, err := g.resolveAbsolute(abs)
	if err != nil {
		return result.Result{}, err
	}
	if !v.IsSingle() {
		return result.Result{}, fmt.Errorf("%w: %s resolves to more than one fact; use GetVect", ErrGraph, pathStr)
	}
	return v.MustSingle(), nil
}

// GetVect resolves path and flattens the result into a list — length 1
// for a concrete path, one entry per enumerated member for a wildcard
// path.
func (g *Graph) GetVect(pathStr string) ([]result.Result, error) {
	abs, err := parseAbsolute(pathStr)
	if err != nil {
		return nil, err
	}
	v, err := g.resolveAbsolute(abs)
	if err != nil {
		return nil, err
	}
	return v.Flatten(), nil
}

// resolveWritable parses pathStr, resolves it to an absolute concrete
// path, and validates it names a writable fact whose declared type
// matches v's kind.
func (g *Graph) resolveWritable(pathStr string, v value.Value) (fgpath.Path, dictionary.FactDefinition, error) {
	abs, err := parseAbsolute(pathStr)
	if err != nil {
		return fgpath.Path{}, dictionary.FactDefinition{}, err
	}
	if abs.IsAbstract() {
		return fgpath.Path{}, dictionary.FactDefinition{}, fmt.Errorf("%w: set requires a concrete path, got %s", ErrGraph, abs.String())
	}
	def, ok := g.dict.Lookup(abs.ToAbstract().String())
	if !ok {
		return fgpath.Path{}, dictionary.FactDefinition{}, fmt.Errorf("%w: %s", ErrUnknownPath, abs.String())
	}
	if !def.IsWritable {
		return fgpath.Path{}, dictionary.FactDefinition{}, fmt.Errorf("%w: %s is not writable", ErrGraph, abs.String())
	}
	if v.Kind() != def.DeclaredType {
		return fgpath.Path{}, dictionary.FactDefinition{}, fmt.Errorf("%w: %s expects %s, got %s", ErrTypeMismatch, abs.String(), def.DeclaredType, v.Kind())
	}
	return abs, def, nil
}

func (g *Graph) checkLimits(abs fgpath.Path, def dictionary.FactDefinition, actual value.Value) ([]limit.Violation, error) {
	fi, err := g.factInstance(abs)
	if err != nil {
		return nil, err
	}
	var violations []limit.Violation
	for _, l := range def.Limits {
		v, err := limit.Evaluate(fi, abs.String(), l, actual)
		if err != nil {
			return nil, err
		}
		if v != nil {
			violations = append(violations, *v)
		}
	}
	if def.EnumOptions != nil {
		v, err := limit.EvaluateEnumOptions(fi, abs.String(), *def.EnumOptions, actual)
		if err != nil {
			return nil, err
		}
		if v != nil {
			violations = append(violations, *v)
		}
	}
	return violations, nil
}

// Set unconditionally stores v at path (even if limits fail — see
// TrySet for the strict alternative) and reports any limit violations
// observed immediately.
func (g *Graph) Set(pathStr string, v value.Value) (bool, []limit.Violation, error) {
	abs, def, err := g.resolveWritable(pathStr, v)
	if err != nil {
		return false, nil, err
	}
	g.store.Put(abs.String(), v)
	g.invalidateResultCache()

	violations, err := g.checkLimits(abs, def, v)
	if err != nil {
		return false, nil, err
	}
	return len(violations) == 0, violations, nil
}

// TrySet checks v against path's limits first and only stores it if
// every limit passes. Unlike Set, a violating value is never written.
func (g *Graph) TrySet(pathStr string, v value.Value) (bool, []limit.Violation, error) {
	abs, def, err := g.resolveWritable(pathStr, v)
	if err != nil {
		return false, nil, err
	}
	violations, err := g.checkLimits(abs, def, v)
	if err != nil {
		return false, nil, err
	}
	if len(violations) > 0 {
		return false, violations, nil
	}
	g.store.Put(abs.String(), v)
	g.invalidateResultCache()
	return true, nil, nil
}

// Delete removes the value at path from the store.
func (g *Graph) Delete(pathStr string) error {
	abs, err := parseAbsolute(pathStr)
	if err != nil {
		return err
	}
	g.store.Delete(abs.String())
	g.invalidateResultCache()
	return nil
}

func (g *Graph) collectionAt(pathStr string) (fgpath.Path, value.Collection, error) {
	abs, err := parseAbsolute(pathStr)
	if err != nil {
		return fgpath.Path{}, value.Collection{}, err
	}
	def, ok := g.dict.Lookup(abs.ToAbstract().String())
	if !ok {
		return fgpath.Path{}, value.Collection{}, fmt.Errorf("%w: %s", ErrUnknownPath, abs.String())
	}
	if def.DeclaredType != value.KindCollection {
		return fgpath.Path{}, value.Collection{}, fmt.Errorf("%w: %s is not a Collection", ErrGraph, abs.String())
	}
	if stored, ok := g.store.Get(abs.String()); ok {
		c, ok := stored.(value.Collection)
		if !ok {
			return fgpath.Path{}, value.Collection{}, fmt.Errorf("%w: %s stored value is not a Collection", ErrGraph, abs.String())
		}
		return abs, c, nil
	}
	empty, _ := value.NewCollection(nil)
	return abs, empty, nil
}

// AddMember appends id to the collection at collectionPath. Fails if id
// is already a member.
func (g *Graph) AddMember(collectionPath, id string) error {
	abs, c, err := g.collectionAt(collectionPath)
	if err != nil {
		return err
	}
	if c.Contains(id) {
		return fmt.Errorf("%w: %s already has member %q", ErrGraph, abs.String(), id)
	}
	next, err := c.Add(id)
	if err != nil {
		return err
	}
	g.store.Put(abs.String(), next)
	g.invalidateResultCache()
	return nil
}

// AddMemberAuto generates a fresh member id, adds it, and returns it. The
// "m" prefix guarantees a valid path identifier regardless of which hex
// digit uuid.NewString() happens to start with (a path identifier, like
// a Go one, can't start with a digit).
func (g *Graph) AddMemberAuto(collectionPath string) (string, error) {
	id := "m" + uuid.NewString()
	if err := g.AddMember(collectionPath, id); err != nil {
		return "", err
	}
	return id, nil
}

// RemoveMember removes id from the collection at collectionPath and
// deletes every stored value under that member's subtree.
func (g *Graph) RemoveMember(collectionPath, id string) error {
	abs, c, err := g.collectionAt(collectionPath)
	if err != nil {
		return err
	}
	if !c.Contains(id) {
		return fmt.Errorf("%w: %s has no member %q", ErrGraph, abs.String(), id)
	}
	g.store.Put(abs.String(), c.Remove(id))

	memberPath := abs.WithMember(id).String()
	prefix := memberPath + "/"
	for _, entry := range g.store.EnumerateWritables() {
		if entry.Path == memberPath || strings.HasPrefix(entry.Path, prefix) {
			g.store.Delete(entry.Path)
		}
	}
	g.invalidateResultCache()
	return nil
}

// Save evaluates every writable's limits against its current stored
// value and returns the aggregate violation list.
func (g *Graph) Save() (bool, []limit.Violation, error) {
	var violations []limit.Violation
	for _, entry := range g.store.EnumerateWritables() {
		abs, err := fgpath.Parse(entry.Path)
		if err != nil {
			return false, nil, err
		}
		def, ok := g.dict.Lookup(abs.ToAbstract().String())
		if !ok {
			// Stale entry from a prior dictionary version; SyncWithDictionary
			// is the mechanism for pruning these, not save.
			continue
		}
		vs, err := g.checkLimits(abs, def, entry.Value)
		if err != nil {
			return false, nil, err
		}
		violations = append(violations, vs...)
	}
	return len(violations) == 0, violations, nil
}

// Reset clears the store to empty, keeping the dictionary and the fact
// cache (fact instances carry no stored values of their own, so they
// stay valid against the new, empty store).
func (g *Graph) Reset() {
	g.store = store.New()
	g.invalidateResultCache()
}

// LoadStore replaces the graph's store wholesale, e.g. after migrate.Load
// has brought a persisted blob forward to the current schema, and
// invalidates the result cache.
func (g *Graph) LoadStore(st *store.Store) {
	g.store = st
	g.invalidateResultCache()
}

// Diff reports what changed between the graph's current store and other
// (spec §6's "snapshot / load / diff" boundary operation).
func (g *Graph) Diff(other *store.Store) store.Diff {
	return store.DiffStores(g.store, other)
}
