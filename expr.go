// Package goderiv provides a small symbolic differentiation kernel for Go.
//
// Expression trees are built through simplifying constructors (SumOf,
// SubOf, MulOf, DivOf, PowOf, LnOf), differentiated with Diff, and
// rendered with String or LaTeX. Trees are immutable: every transformation
// returns new nodes, and an existing subtree may be shared freely between
// parents.
//
// Design goals:
//   - Closed variant set, exhaustive type-switch dispatch
//   - Simplification happens at construction time, never afterwards
//   - Deterministic, fully parenthesized rendering
//   - Embeddable in Go services, CLI tools, and agent backends
package goderiv

import "math"

// E is the base of the natural logarithm.
const E = 2.718281828459045

// Constants within this absolute distance of E are treated as e itself.
const eTolerance = 1e-10

// Expr is an expression tree node. The implementation set is closed:
// Constant, Variable, Sum, Difference, Product, Quotient, Power and
// NaturalLog. Nodes are immutable after construction.
type Expr interface {
	isExpr()
}

// Constant is a numeric literal.
type Constant struct{ val float64 }

// Variable is an opaque symbolic identifier. Two variables denote the same
// quantity iff their names are equal.
type Variable struct{ name string }

// Sum is left + right.
type Sum struct{ left, right Expr }

// Difference is left - right.
type Difference struct{ left, right Expr }

// Product is left * right.
type Product struct{ left, right Expr }

// Quotient is left / right. DivOf guarantees the right-hand side is never
// the constant zero.
type Quotient struct{ left, right Expr }

// Power is base ^ exponent.
type Power struct{ base, exp Expr }

// NaturalLog is ln(arg). LnOf guarantees the argument is never the
// constant zero.
type NaturalLog struct{ arg Expr }

func (*Constant) isExpr()   {}
func (*Variable) isExpr()   {}
func (*Sum) isExpr()        {}
func (*Difference) isExpr() {}
func (*Product) isExpr()    {}
func (*Quotient) isExpr()   {}
func (*Power) isExpr()      {}
func (*NaturalLog) isExpr() {}

func (c *Constant) Value() float64 { return c.val }
func (c *Constant) IsZero() bool   { return c.val == 0 }
func (c *Constant) IsOne() bool    { return c.val == 1 }

// IsE reports whether the constant is the mathematical constant e, within
// a fixed absolute tolerance.
func (c *Constant) IsE() bool { return math.Abs(c.val-E) < eTolerance }

func (v *Variable) Name() string { return v.name }

func (s *Sum) Left() Expr  { return s.left }
func (s *Sum) Right() Expr { return s.right }

func (d *Difference) Left() Expr  { return d.left }
func (d *Difference) Right() Expr { return d.right }

func (p *Product) Left() Expr  { return p.left }
func (p *Product) Right() Expr { return p.right }

func (q *Quotient) Left() Expr  { return q.left }
func (q *Quotient) Right() Expr { return q.right }

func (p *Power) Base() Expr     { return p.base }
func (p *Power) Exponent() Expr { return p.exp }

func (l *NaturalLog) Arg() Expr { return l.arg }

// IsConstant reports whether e is a Constant node. Every other kind
// reports false.
func IsConstant(e Expr) bool { _, ok := e.(*Constant); return ok }

func asConstant(e Expr) (*Constant, bool) {
	c, ok := e.(*Constant)
	return c, ok
}
