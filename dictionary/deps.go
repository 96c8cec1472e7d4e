package dictionary

import (
	"fmt"
	"sort"

	"github.com/trueprep/fact-graph/expr"
	"github.com/trueprep/fact-graph/fgpath"
)

// DepRef names one fact a definition depends on: its absolute abstract
// path, plus the module name the owning Dep referenced it through, if
// any (spec §6's "forward deps | path | list of {path, module?}").
type DepRef struct {
	Path   string
	Module string
}

// ForwardDeps returns every fact abstractPath's definition directly
// references through a Dep node in its expression, placeholder, or
// override trees, with each Dep's path resolved to an absolute abstract
// path (relative Deps resolve against abstractPath itself; module Deps
// resolve against the named module's registered root).
func (d *Dictionary) ForwardDeps(abstractPath string) ([]DepRef, error) {
	def, ok := d.Lookup(abstractPath)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDictionary, abstractPath)
	}
	base, err := fgpath.Parse(abstractPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDictionary, abstractPath, err)
	}

	var refs []DepRef
	collect := func(n expr.Node) {
		if n == nil {
			return
		}
		expr.Walk(n, func(node expr.Node) {
			dep, ok := node.(expr.Dep)
			if !ok {
				return
			}
			ref, err := d.resolveDepRef(base, dep)
			if err != nil {
				return
			}
			refs = append(refs, ref)
		})
	}

	collect(def.Expression)
	collect(def.Placeholder)
	for _, ov := range def.Overrides {
		collect(ov.Condition)
		collect(ov.Replacement)
	}

	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Path != refs[j].Path {
			return refs[i].Path < refs[j].Path
		}
		return refs[i].Module < refs[j].Module
	})
	return refs, nil
}

func (d *Dictionary) resolveDepRef(base fgpath.Path, dep expr.Dep) (DepRef, error) {
	if dep.Module == "" {
		resolved, err := base.Resolve(dep.Path)
		if err != nil {
			return DepRef{}, err
		}
		return DepRef{Path: resolved.ToAbstract().String()}, nil
	}
	root, ok := d.ResolveModule(dep.Module)
	if !ok {
		return DepRef{}, fmt.Errorf("%w: unknown module %q", ErrDictionary, dep.Module)
	}
	resolved, err := root.Resolve(dep.Path)
	if err != nil {
		return DepRef{}, err
	}
	return DepRef{Path: resolved.ToAbstract().String(), Module: dep.Module}, nil
}

// ReverseDeps returns the abstract path of every fact whose forward
// dependencies include abstractPath, sorted.
func (d *Dictionary) ReverseDeps(abstractPath string) ([]string, error) {
	if !d.HasAbstract(abstractPath) {
		return nil, fmt.Errorf("%w: %s", ErrDictionary, abstractPath)
	}
	var reverse []string
	for _, candidate := range d.AbstractPaths() {
		deps, err := d.ForwardDeps(candidate)
		if err != nil {
			return nil, err
		}
		for _, dep := range deps {
			if dep.Path == abstractPath {
				reverse = append(reverse, candidate)
				break
			}
		}
	}
	sort.Strings(reverse)
	return reverse, nil
}
