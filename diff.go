package goderiv

import "github.com/pkg/errors"

// Diff returns the derivative of e with respect to the variable named
// varName. Results are built through the simplifying constructors, so
// every derivative comes back pre-simplified. A variable other than
// varName differentiates to zero.
//
// Powers are supported only when exactly one of base and exponent is a
// constant; any other shape fails with ErrUnsupportedDifferentiation.
func Diff(e Expr, varName string) (Expr, error) {
	switch n := e.(type) {
	case *Constant:
		return N(0), nil
	case *Variable:
		if n.name == varName {
			return N(1), nil
		}
		return N(0), nil
	case *Sum:
		dl, dr, err := diffOperands(n.left, n.right, varName)
		if err != nil {
			return nil, err
		}
		if lc, rc, ok := bothConstant(dl, dr); ok {
			return N(lc.val + rc.val), nil
		}
		return SumOf(dl, dr), nil
	case *Difference:
		dl, dr, err := diffOperands(n.left, n.right, varName)
		if err != nil {
			return nil, err
		}
		if lc, rc, ok := bothConstant(dl, dr); ok {
			return N(lc.val - rc.val), nil
		}
		return SubOf(dl, dr), nil
	case *Product:
		// Product rule: u*v' + u'*v, with the original operands reused.
		du, dv, err := diffOperands(n.left, n.right, varName)
		if err != nil {
			return nil, err
		}
		return SumOf(MulOf(n.left, dv), MulOf(du, n.right)), nil
	case *Quotient:
		// Quotient rule: (u'*v - u*v') / v^2.
		du, dv, err := diffOperands(n.left, n.right, varName)
		if err != nil {
			return nil, err
		}
		num := SubOf(MulOf(du, n.right), MulOf(n.left, dv))
		q, err := DivOf(num, PowOf(n.right, N(2)))
		if err != nil {
			return nil, errors.Wrap(err, "quotient rule")
		}
		return q, nil
	case *Power:
		return diffPower(n, varName)
	case *NaturalLog:
		// Chain rule: v'/v, built as (1/v)*v'.
		dv, err := Diff(n.arg, varName)
		if err != nil {
			return nil, err
		}
		recip, err := DivOf(N(1), n.arg)
		if err != nil {
			return nil, errors.Wrap(err, "log rule")
		}
		return MulOf(recip, dv), nil
	}
	// The Expr set is closed; no other kind exists.
	return nil, errors.Errorf("unknown expression kind %T", e)
}

func diffPower(p *Power, varName string) (Expr, error) {
	baseConst := IsConstant(p.base)
	expConst := IsConstant(p.exp)
	switch {
	case expConst && !baseConst:
		// Power rule with chain factor: e * b^(e-1) * b'.
		db, err := Diff(p.base, varName)
		if err != nil {
			return nil, err
		}
		c := p.exp.(*Constant)
		return MulOf(MulOf(p.exp, PowOf(p.base, N(c.val-1))), db), nil
	case baseConst && !expConst:
		// Exponential rule: b^e * ln(b) * e'.
		de, err := Diff(p.exp, varName)
		if err != nil {
			return nil, err
		}
		ln, err := LnOf(p.base)
		if err != nil {
			return nil, errors.Wrap(err, "exponential rule")
		}
		return MulOf(MulOf(PowOf(p.base, p.exp), ln), de), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedDifferentiation, "power %s", String(p))
	}
}

// DiffN differentiates e n times with respect to varName.
func DiffN(e Expr, varName string, n int) (Expr, error) {
	var err error
	for i := 0; i < n; i++ {
		e, err = Diff(e, varName)
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}

func diffOperands(left, right Expr, varName string) (Expr, Expr, error) {
	dl, err := Diff(left, varName)
	if err != nil {
		return nil, nil, err
	}
	dr, err := Diff(right, varName)
	if err != nil {
		return nil, nil, err
	}
	return dl, dr, nil
}

func bothConstant(a, b Expr) (*Constant, *Constant, bool) {
	ac, ok := asConstant(a)
	if !ok {
		return nil, nil, false
	}
	bc, ok := asConstant(b)
	if !ok {
		return nil, nil, false
	}
	return ac, bc, true
}
