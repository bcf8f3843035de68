package goderiv

import "github.com/pkg/errors"

// The XxxOf constructors below are the only sanctioned way to build
// composite nodes. Each one applies its identity and annihilator rules
// first and only allocates when no rule fires, so a freshly built tree
// never contains a trivially reducible subtree. Rules match constant
// operands only; structurally equal non-constant operands are not
// considered (x - x stays x - x).

// N builds a numeric literal.
func N(v float64) *Constant { return &Constant{val: v} }

// V builds a variable with the given name.
func V(name string) *Variable { return &Variable{name: name} }

// SumOf builds left + right. A zero operand yields the other operand
// unchanged.
func SumOf(left, right Expr) Expr {
	if c, ok := asConstant(left); ok && c.IsZero() {
		return right
	}
	if c, ok := asConstant(right); ok && c.IsZero() {
		return left
	}
	return &Sum{left: left, right: right}
}

// SubOf builds left - right. Subtracting zero yields left unchanged.
func SubOf(left, right Expr) Expr {
	if c, ok := asConstant(right); ok && c.IsZero() {
		return left
	}
	return &Difference{left: left, right: right}
}

// MulOf builds left * right. Zero annihilates; one yields the other
// operand unchanged.
func MulOf(left, right Expr) Expr {
	if c, ok := asConstant(left); ok {
		if c.IsZero() {
			return N(0)
		}
		if c.IsOne() {
			return right
		}
	}
	if c, ok := asConstant(right); ok {
		if c.IsZero() {
			return N(0)
		}
		if c.IsOne() {
			return left
		}
	}
	return &Product{left: left, right: right}
}

// PowOf builds base ^ exponent. For a non-constant base, exponent zero
// collapses to one and exponent one yields the base unchanged. A constant
// base is never collapsed, so exact values like e survive for the
// exponential rule.
func PowOf(base, exp Expr) Expr {
	if !IsConstant(base) {
		if c, ok := asConstant(exp); ok {
			if c.IsZero() {
				return N(1)
			}
			if c.IsOne() {
				return base
			}
		}
	}
	return &Power{base: base, exp: exp}
}

// DivOf builds left / right. Division by the constant zero fails with
// ErrDivisionByZero; division by one yields left unchanged; a zero
// numerator collapses to zero.
func DivOf(left, right Expr) (Expr, error) {
	if c, ok := asConstant(right); ok {
		if c.IsZero() {
			return nil, errors.Wrap(ErrDivisionByZero, "building quotient")
		}
		if c.IsOne() {
			return left, nil
		}
	}
	if c, ok := asConstant(left); ok && c.IsZero() {
		return N(0), nil
	}
	return &Quotient{left: left, right: right}, nil
}

// LnOf builds ln(arg). The constant zero fails with ErrLogOfZero; the
// constant e folds to one.
func LnOf(arg Expr) (Expr, error) {
	if c, ok := asConstant(arg); ok {
		if c.IsZero() {
			return nil, errors.Wrap(ErrLogOfZero, "building natural log")
		}
		if c.IsE() {
			return N(1), nil
		}
	}
	return &NaturalLog{arg: arg}, nil
}
