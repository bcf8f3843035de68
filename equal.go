package goderiv

// Equal reports whether a and b are structurally identical trees.
// Equality is purely structural; no algebraic identities beyond the
// construction-time rules are considered.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *Constant:
		y, ok := b.(*Constant)
		return ok && x.val == y.val
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.name == y.name
	case *Sum:
		y, ok := b.(*Sum)
		return ok && Equal(x.left, y.left) && Equal(x.right, y.right)
	case *Difference:
		y, ok := b.(*Difference)
		return ok && Equal(x.left, y.left) && Equal(x.right, y.right)
	case *Product:
		y, ok := b.(*Product)
		return ok && Equal(x.left, y.left) && Equal(x.right, y.right)
	case *Quotient:
		y, ok := b.(*Quotient)
		return ok && Equal(x.left, y.left) && Equal(x.right, y.right)
	case *Power:
		y, ok := b.(*Power)
		return ok && Equal(x.base, y.base) && Equal(x.exp, y.exp)
	case *NaturalLog:
		y, ok := b.(*NaturalLog)
		return ok && Equal(x.arg, y.arg)
	}
	return false
}

// FreeVariables returns the set of variable names occurring in e.
func FreeVariables(e Expr) map[string]bool {
	vars := map[string]bool{}
	collectVars(e, vars)
	return vars
}

func collectVars(e Expr, vars map[string]bool) {
	switch n := e.(type) {
	case *Constant:
	case *Variable:
		vars[n.name] = true
	case *Sum:
		collectVars(n.left, vars)
		collectVars(n.right, vars)
	case *Difference:
		collectVars(n.left, vars)
		collectVars(n.right, vars)
	case *Product:
		collectVars(n.left, vars)
		collectVars(n.right, vars)
	case *Quotient:
		collectVars(n.left, vars)
		collectVars(n.right, vars)
	case *Power:
		collectVars(n.base, vars)
		collectVars(n.exp, vars)
	case *NaturalLog:
		collectVars(n.arg, vars)
	}
}
