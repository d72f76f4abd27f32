// Package amount evaluates the fraction expressions the source format uses
// to encode monetary values, e.g. "400/10" or "-2185/20".
package amount

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MalformedExpressionError reports an amount expression that does not match
// the fraction grammar. It aborts conversion of the current document.
type MalformedExpressionError struct {
	Expr   string
	Reason string
}

func (e *MalformedExpressionError) Error() string {
	return fmt.Sprintf("malformed amount expression %q: %s", e.Expr, e.Reason)
}

// Evaluate parses expr and computes its exact decimal value. The grammar is
// integers joined by '+', '-' and '/', with an optional sign attached to
// each integer. Evaluation is strictly left-to-right with no operator
// precedence: "1+2/4" is (1+2)/4.
func Evaluate(expr string) (decimal.Decimal, error) {
	for _, r := range expr {
		if (r < '0' || r > '9') && r != '+' && r != '-' && r != '/' {
			return decimal.Zero, &MalformedExpressionError{Expr: expr, Reason: fmt.Sprintf("invalid character %q", r)}
		}
	}

	p := parser{expr: expr}
	acc, err := p.term()
	if err != nil {
		return decimal.Zero, err
	}

	for p.pos < len(p.expr) {
		op := p.expr[p.pos]
		p.pos++

		t, err := p.term()
		if err != nil {
			return decimal.Zero, err
		}

		switch op {
		case '+':
			acc = acc.Add(t)
		case '-':
			acc = acc.Sub(t)
		case '/':
			if t.IsZero() {
				return decimal.Zero, &MalformedExpressionError{Expr: expr, Reason: "division by zero"}
			}
			acc = acc.Div(t)
		}
	}

	return acc, nil
}

// EvaluateString is Evaluate collapsed to the canonical fixed-point string
// used in posting lines, e.g. "40.00".
func EvaluateString(expr string, places int32) (string, error) {
	d, err := Evaluate(expr)
	if err != nil {
		return "", err
	}
	return d.StringFixed(places), nil
}

type parser struct {
	expr string
	pos  int
}

// term reads an optionally signed integer. A sign directly before digits
// belongs to that integer, so "-5/2" is (-5)/2.
func (p *parser) term() (decimal.Decimal, error) {
	neg := false
	if p.pos < len(p.expr) && (p.expr[p.pos] == '+' || p.expr[p.pos] == '-') {
		neg = p.expr[p.pos] == '-'
		p.pos++
	}

	start := p.pos
	for p.pos < len(p.expr) && p.expr[p.pos] >= '0' && p.expr[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return decimal.Zero, &MalformedExpressionError{Expr: p.expr, Reason: fmt.Sprintf("expected digits at offset %d", start)}
	}

	d, err := decimal.NewFromString(p.expr[start:p.pos])
	if err != nil {
		return decimal.Zero, &MalformedExpressionError{Expr: p.expr, Reason: err.Error()}
	}
	if neg {
		d = d.Neg()
	}
	return d, nil
}
