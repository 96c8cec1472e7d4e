package expr_test

import (
	"fmt"

	"github.com/trueprep/fact-graph/expr"
	"github.com/trueprep/fact-graph/fgpath"
	"github.com/trueprep/fact-graph/result"
	"github.com/trueprep/fact-graph/value"
)

// fakeCtx is a minimal in-memory expr.EvalContext for operator tests: a
// fixed map of concrete-path string to a pre-resolved Vector/Result,
// keyed as though every dependency had already been evaluated.
type fakeCtx struct {
	current  fgpath.Path
	resolved map[string]result.Vector
	writable map[string]result.Result
	modules  map[string]fgpath.Path
	today    value.Day
}

func newFakeCtx() *fakeCtx {
	return &fakeCtx{
		current:  fgpath.Root(),
		resolved: map[string]result.Vector{},
		writable: map[string]result.Result{},
		modules:  map[string]fgpath.Path{},
		today:    value.NewDay(2026, 7, 30),
	}
}

func (c *fakeCtx) with(path string, v result.Vector) *fakeCtx {
	c.resolved[path] = v
	return c
}

func (c *fakeCtx) CurrentPath() fgpath.Path { return c.current }

func (c *fakeCtx) Resolve(path fgpath.Path) (result.Vector, error) {
	resolved, err := c.current.Resolve(path)
	if err != nil {
		return result.Vector{}, err
	}
	v, ok := c.resolved[resolved.String()]
	if !ok {
		return result.Vector{}, fmt.Errorf("fakeCtx: no entry for %s", resolved.String())
	}
	return v, nil
}

func (c *fakeCtx) ReadWritable() (result.Result, error) {
	r, ok := c.writable[c.current.String()]
	if !ok {
		return result.OfIncomplete(), nil
	}
	return r, nil
}

func (c *fakeCtx) ResolveModule(name string) (fgpath.Path, bool) {
	p, ok := c.modules[name]
	return p, ok
}

func (c *fakeCtx) Today() value.Day { return c.today }

func (c *fakeCtx) WithCurrentPath(path fgpath.Path) (expr.EvalContext, error) {
	return &fakeCtx{current: path, resolved: c.resolved, writable: c.writable, modules: c.modules, today: c.today}, nil
}
