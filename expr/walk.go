package expr

// Children returns node's immediate operand nodes, for the node shapes
// common enough to be worth walking individually — dependency analysis
// (dictionary.ForwardDeps) and derivation rendering (graph.Explain) both
// build on this rather than each maintaining their own type switch.
// Leaf nodes (Const, WritableRef, Dep) and any node shape not listed
// return nil.
func Children(node Node) []Node {
	switch n := node.(type) {
	case Add:
		return []Node{n.Left, n.Right}
	case Subtract:
		children := []Node{n.Minuend}
		return append(children, n.Subtrahends...)
	case Multiply:
		return []Node{n.Left, n.Right}
	case Divide:
		return []Node{n.Dividend, n.Divisor}
	case Round:
		return []Node{n.Operand}
	case RoundToInt:
		return []Node{n.Operand}
	case Ceiling:
		return []Node{n.Operand}
	case Floor:
		return []Node{n.Operand}
	case Equal:
		return []Node{n.Left, n.Right}
	case NotEqual:
		return []Node{n.Left, n.Right}
	case GreaterThan:
		return []Node{n.Left, n.Right}
	case LessThan:
		return []Node{n.Left, n.Right}
	case GreaterThanOrEqual:
		return []Node{n.Left, n.Right}
	case LessThanOrEqual:
		return []Node{n.Left, n.Right}
	case GreaterOf:
		return []Node{n.Left, n.Right}
	case LesserOf:
		return []Node{n.Left, n.Right}
	case Not:
		return []Node{n.Operand}
	case All:
		return n.Operands
	case Any:
		return n.Operands
	case Maximum:
		return n.Operands
	case Minimum:
		return n.Operands
	case Switch:
		var children []Node
		for _, c := range n.Cases {
			children = append(children, c.Cond, c.Branch)
		}
		if n.Default != nil {
			children = append(children, n.Default)
		}
		return children
	case ConditionalList:
		var children []Node
		for _, c := range n.Cases {
			children = append(children, c.Cond, c.Branch)
		}
		return children
	case AddPayrollMonths:
		return []Node{n.Operand}
	case Length:
		return []Node{n.Operand}
	case Paste:
		return n.Operands
	case AsString:
		return []Node{n.Operand}
	case AsDecimalString:
		return []Node{n.Operand}
	case Trim:
		return []Node{n.Operand}
	case ToUpper:
		return []Node{n.Operand}
	case StripChars:
		return []Node{n.Operand}
	case TruncateNameForMeF:
		return []Node{n.Operand}
	case LastDayOfMonthExpr:
		return []Node{n.Operand}
	case IsComplete:
		return []Node{n.Operand}
	case Filter:
		return []Node{n.Predicate}
	case Find:
		return []Node{n.Predicate}
	case IndexOf:
		return []Node{n.Index}
	default:
		return nil
	}
}

// Walk calls visit for node and every node reachable from it through
// Children, depth-first, pre-order.
func Walk(node Node, visit func(Node)) {
	if node == nil {
		return
	}
	visit(node)
	for _, c := range Children(node) {
		Walk(c, visit)
	}
}
