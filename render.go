package goderiv

import (
	"io"
	"strconv"
	"strings"
)

// String renders e in fully parenthesized infix form: every composite as
// "(A op B)", ln as "ln(A)", constants as locale-independent decimals,
// variables as their bare names. Rendering is a pure function of
// structure; identical trees always render identically.
func String(e Expr) string {
	var sb strings.Builder
	write(&sb, e)
	return sb.String()
}

// Fprint writes the rendering of e to w.
func Fprint(w io.Writer, e Expr) error {
	_, err := io.WriteString(w, String(e))
	return err
}

func write(sb *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Constant:
		sb.WriteString(formatConst(n.val))
	case *Variable:
		sb.WriteString(n.name)
	case *Sum:
		writeBinary(sb, n.left, " + ", n.right)
	case *Difference:
		writeBinary(sb, n.left, " - ", n.right)
	case *Product:
		writeBinary(sb, n.left, " * ", n.right)
	case *Quotient:
		writeBinary(sb, n.left, " / ", n.right)
	case *Power:
		writeBinary(sb, n.base, " ^ ", n.exp)
	case *NaturalLog:
		sb.WriteString("ln(")
		write(sb, n.arg)
		sb.WriteByte(')')
	}
}

func writeBinary(sb *strings.Builder, left Expr, op string, right Expr) {
	sb.WriteByte('(')
	write(sb, left)
	sb.WriteString(op)
	write(sb, right)
	sb.WriteByte(')')
}

// formatConst uses the shortest decimal that round-trips the value.
func formatConst(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// LaTeX renders e as a LaTeX math fragment.
func LaTeX(e Expr) string {
	switch n := e.(type) {
	case *Constant:
		return formatConst(n.val)
	case *Variable:
		return n.name
	case *Sum:
		return `\left(` + LaTeX(n.left) + " + " + LaTeX(n.right) + `\right)`
	case *Difference:
		return `\left(` + LaTeX(n.left) + " - " + LaTeX(n.right) + `\right)`
	case *Product:
		return `\left(` + LaTeX(n.left) + ` \cdot ` + LaTeX(n.right) + `\right)`
	case *Quotient:
		return `\frac{` + LaTeX(n.left) + `}{` + LaTeX(n.right) + `}`
	case *Power:
		base := LaTeX(n.base)
		if _, nested := n.base.(*Power); nested {
			base = `\left(` + base + `\right)`
		}
		return base + "^{" + LaTeX(n.exp) + "}"
	case *NaturalLog:
		return `\ln\left(` + LaTeX(n.arg) + `\right)`
	}
	return ""
}

func (c *Constant) String() string   { return formatConst(c.val) }
func (v *Variable) String() string   { return v.name }
func (s *Sum) String() string        { return String(s) }
func (d *Difference) String() string { return String(d) }
func (p *Product) String() string    { return String(p) }
func (q *Quotient) String() string   { return String(q) }
func (p *Power) String() string      { return String(p) }
func (l *NaturalLog) String() string { return String(l) }
