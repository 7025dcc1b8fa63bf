// Package normalize implements the Arity Normalizer and Body Sequencer
// passes (spec.md §4.3–§4.4): currying n-ary lambdas/applications into
// unary form, then collapsing multi-expression lambda bodies into a single
// expression via left-to-right sequencing.
package normalize

import (
	"github.com/schemec/schemec/internal/errors"
	"github.com/schemec/schemec/internal/fresh"
	"github.com/schemec/schemec/internal/ir"
)

// ExpandLamApp is the Arity Normalizer (spec.md §4.3). It recursively
// normalizes bodies/operands before restructuring, then curries n-ary Lam
// and App nodes into nested unary LamOne/AppOne chains. After this pass
// only LamOne, AppOne, Var, Lit, and BuiltinIdent survive (invariant 1).
func ExpandLamApp(expr ir.Expr, ctx *fresh.Context) (ir.Expr, error) {
	switch e := expr.(type) {
	case *ir.Lam:
		body, err := expandBody(e.Body, ctx)
		if err != nil {
			return nil, err
		}
		if len(e.Params) == 0 {
			return ir.NewLamOne(e.Pos(), ctx.Throwaway(), body), nil
		}
		// Curry right to left: the last parameter wraps the (already
		// normalized) body; earlier parameters each wrap the previous result.
		last := e.Params[len(e.Params)-1]
		acc := ir.Expr(ir.NewLamOne(e.Pos(), last, body))
		for i := len(e.Params) - 2; i >= 0; i-- {
			acc = ir.NewLamOne(e.Pos(), e.Params[i], []ir.Expr{acc})
		}
		return acc, nil

	case *ir.App:
		operator, err := ExpandLamApp(e.Operator, ctx)
		if err != nil {
			return nil, err
		}
		operands := make([]ir.Expr, len(e.Operands))
		for i, o := range e.Operands {
			norm, err := ExpandLamApp(o, ctx)
			if err != nil {
				return nil, err
			}
			operands[i] = norm
		}
		if len(operands) == 0 {
			return ir.NewAppOne(e.Pos(), operator, ir.VoidObj(e.Pos())), nil
		}
		acc := ir.Expr(ir.NewAppOne(e.Pos(), operator, operands[0]))
		for _, operand := range operands[1:] {
			acc = ir.NewAppOne(e.Pos(), acc, operand)
		}
		return acc, nil

	case *ir.Var, *ir.Lit, *ir.BuiltinIdent:
		return e, nil

	default:
		return nil, errors.WrapReport(errors.InvalidStage(errors.PhaseNormalize, "ExpandLamApp", expr.Pos(), variantName(expr)))
	}
}

func expandBody(body []ir.Expr, ctx *fresh.Context) ([]ir.Expr, error) {
	out := make([]ir.Expr, len(body))
	for i, b := range body {
		norm, err := ExpandLamApp(b, ctx)
		if err != nil {
			return nil, err
		}
		out[i] = norm
	}
	return out, nil
}

func variantName(expr ir.Expr) string {
	switch expr.(type) {
	case *ir.LamOne:
		return "LamOne"
	case *ir.AppOne:
		return "AppOne"
	case *ir.LamOneOne:
		return "LamOneOne"
	case *ir.LamOneOneCont:
		return "LamOneOneCont"
	case *ir.AppOneCont:
		return "AppOneCont"
	default:
		return "unknown"
	}
}
