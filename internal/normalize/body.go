package normalize

import (
	"github.com/schemec/schemec/internal/errors"
	"github.com/schemec/schemec/internal/fresh"
	"github.com/schemec/schemec/internal/ir"
)

// ExpandLamBody is the Body Sequencer (spec.md §4.4). It eliminates
// multi-expression lambda bodies: for LamOne(arg, [e1..em]) the result
// threads e1..e(m-1) through fresh single-use continuations, discarding
// their values, with em as the innermost body, whose value is returned — the
// left-to-right-evaluation, last-value-returned semantics spec.md §9
// settles on for the ambiguous historical behavior. After this pass every
// surviving lambda has shape LamOneOne (invariant 2).
func ExpandLamBody(expr ir.Expr, ctx *fresh.Context) (ir.Expr, error) {
	switch e := expr.(type) {
	case *ir.LamOne:
		if len(e.Body) == 0 {
			return ir.NewLamOneOne(e.Pos(), e.Param, ir.VoidObj(e.Pos())), nil
		}

		// Recurse on each sub-expression right-to-left (matching the
		// original source's traversal order) before folding them into the
		// sequencing chain, so that a nested lambda in an earlier position
		// is itself fully sequenced before it is wrapped.
		normalized := make([]ir.Expr, len(e.Body))
		for i := len(e.Body) - 1; i >= 0; i-- {
			n, err := ExpandLamBody(e.Body[i], ctx)
			if err != nil {
				return nil, err
			}
			normalized[i] = n
		}

		// normalized[last] is the value of the whole body; fold the rest
		// in as discarded single-use bindings, innermost first and outermost
		// (first evaluated) last, so the chain evaluates left to right at
		// runtime.
		acc := normalized[len(normalized)-1]
		for i := len(normalized) - 2; i >= 0; i-- {
			name := ctx.Ident("lam_expand")
			wrapper := ir.NewLamOneOne(e.Pos(), name, acc)
			acc = ir.NewAppOne(e.Pos(), wrapper, normalized[i])
		}

		return ir.NewLamOneOne(e.Pos(), e.Param, acc), nil

	case *ir.AppOne:
		operator, err := ExpandLamBody(e.Operator, ctx)
		if err != nil {
			return nil, err
		}
		operand, err := ExpandLamBody(e.Operand, ctx)
		if err != nil {
			return nil, err
		}
		return ir.NewAppOne(e.Pos(), operator, operand), nil

	case *ir.Var, *ir.Lit, *ir.BuiltinIdent:
		return e, nil

	default:
		return nil, errors.WrapReport(errors.InvalidStage(errors.PhaseNormalize, "ExpandLamBody", expr.Pos(), variantName(expr)))
	}
}
