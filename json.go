package goderiv

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ToJSON encodes e as a tagged JSON tree, e.g.
// {"type":"sum","left":{"type":"var","name":"x"},"right":{"type":"const","value":1}}.
func ToJSON(e Expr) (string, error) {
	b, err := json.Marshal(toMap(e))
	if err != nil {
		return "", errors.Wrap(err, "encoding expression")
	}
	return string(b), nil
}

func toMap(e Expr) map[string]interface{} {
	switch n := e.(type) {
	case *Constant:
		return map[string]interface{}{"type": "const", "value": n.val}
	case *Variable:
		return map[string]interface{}{"type": "var", "name": n.name}
	case *Sum:
		return binMap("sum", n.left, n.right)
	case *Difference:
		return binMap("difference", n.left, n.right)
	case *Product:
		return binMap("product", n.left, n.right)
	case *Quotient:
		return binMap("quotient", n.left, n.right)
	case *Power:
		return map[string]interface{}{"type": "power", "base": toMap(n.base), "exp": toMap(n.exp)}
	case *NaturalLog:
		return map[string]interface{}{"type": "ln", "arg": toMap(n.arg)}
	}
	return nil
}

func binMap(kind string, left, right Expr) map[string]interface{} {
	return map[string]interface{}{"type": kind, "left": toMap(left), "right": toMap(right)}
}

// FromJSON decodes a tagged JSON tree produced by ToJSON. Composite nodes
// are rebuilt through the simplifying constructors, so a decoded tree
// satisfies the same invariants as a freshly built one; in particular, a
// quotient by the constant zero fails with ErrDivisionByZero.
func FromJSON(data []byte) (Expr, error) {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "decoding expression")
	}
	return fromMap(m)
}

func fromMap(m map[string]interface{}) (Expr, error) {
	kind, _ := m["type"].(string)
	switch kind {
	case "const":
		v, ok := m["value"].(float64)
		if !ok {
			return nil, errors.New("const node needs a numeric value")
		}
		return N(v), nil
	case "var":
		name, ok := m["name"].(string)
		if !ok || name == "" {
			return nil, errors.New("var node needs a non-empty name")
		}
		return V(name), nil
	case "sum", "difference", "product", "quotient":
		left, err := childExpr(m, "left")
		if err != nil {
			return nil, err
		}
		right, err := childExpr(m, "right")
		if err != nil {
			return nil, err
		}
		switch kind {
		case "sum":
			return SumOf(left, right), nil
		case "difference":
			return SubOf(left, right), nil
		case "product":
			return MulOf(left, right), nil
		default:
			return DivOf(left, right)
		}
	case "power":
		base, err := childExpr(m, "base")
		if err != nil {
			return nil, err
		}
		exp, err := childExpr(m, "exp")
		if err != nil {
			return nil, err
		}
		return PowOf(base, exp), nil
	case "ln":
		arg, err := childExpr(m, "arg")
		if err != nil {
			return nil, err
		}
		return LnOf(arg)
	}
	return nil, errors.Errorf("unknown expression type %q", kind)
}

func childExpr(m map[string]interface{}, key string) (Expr, error) {
	child, ok := m[key].(map[string]interface{})
	if !ok {
		return nil, errors.Errorf("missing %q operand", key)
	}
	return fromMap(child)
}
