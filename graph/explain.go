package graph

import (
	"fmt"
	"strings"

	"github.com/trueprep/fact-graph/expr"
	"github.com/trueprep/fact-graph/fgpath"
	"github.com/trueprep/fact-graph/result"
)

// Explain returns a human-readable derivation trace for path (C10): the
// defining expression, annotated with each sub-node's own Result. A
// wildcard path yields one block per enumerated concrete instance.
func (g *Graph) Explain(pathStr string) (string, error) {
	if g.log != nil {
		g.log.WithField("path", pathStr).Debug("explain")
	}
	abs, err := parseAbsolute(pathStr)
	if err != nil {
		return "", err
	}
	if abs.IsAbstract() {
		paths, err := abs.Populate(g.memberLister)
		if err != nil {
			return "", err
		}
		var b strings.Builder
		for i, cp := range paths {
			if i > 0 {
				b.WriteByte('\n')
			}
			s, err := g.explainConcrete(cp)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		}
		return b.String(), nil
	}
	return g.explainConcrete(abs)
}

func (g *Graph) explainConcrete(path fgpath.Path) (string, error) {
	fi, err := g.factInstance(path)
	if err != nil {
		return "", err
	}
	r, err := g.force(path)
	if err != nil {
		return "", err
	}

	var body string
	if fi.def.IsWritable {
		body = explainWritable(fi)
	} else {
		body = g.explainNode(fi, fi.def.Expression)
	}
	return fmt.Sprintf("%s => %s\n%s", path.String(), describeResult(r), indent(body, 1)), nil
}

func explainWritable(fi *FactInstance) string {
	var b strings.Builder
	b.WriteString("$this (writable)")
	for _, ov := range fi.def.Overrides {
		fmt.Fprintf(&b, "\n  override when %s => %s", ov.Condition.String(), ov.Replacement.String())
	}
	if fi.def.Placeholder != nil {
		fmt.Fprintf(&b, "\n  placeholder %s", fi.def.Placeholder.String())
	}
	return b.String()
}

// explainNode renders node's own Result (re-evaluated under ctx) followed
// by a recursive breakdown of its operands, for the node shapes common
// enough to be worth annotating individually. Anything else falls back
// to its String() form alongside its own Result.
func (g *Graph) explainNode(ctx expr.EvalContext, node expr.Node) string {
	line := fmt.Sprintf("%s => %s", node.String(), g.evalNodeSummary(ctx, node))

	children := expr.Children(node)
	if len(children) == 0 {
		return line
	}
	var b strings.Builder
	b.WriteString(line)
	for _, c := range children {
		b.WriteByte('\n')
		b.WriteString(indent(g.explainNode(ctx, c), 1))
	}
	return b.String()
}

func (g *Graph) evalNodeSummary(ctx expr.EvalContext, node expr.Node) string {
	v, err := node.Eval(ctx)
	if err != nil {
		return fmt.Sprintf("error: %s", err)
	}
	if v.IsSingle() {
		return describeResult(v.MustSingle())
	}
	parts := make([]string, 0, v.Len())
	for _, r := range v.Flatten() {
		parts = append(parts, describeResult(r))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func describeResult(r result.Result) string {
	if v, ok := r.Value(); ok {
		return fmt.Sprintf("%s(%s)", r.Status(), v.String())
	}
	return r.Status().String()
}

func indent(s string, n int) string {
	prefix := strings.Repeat("  ", n)
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}
