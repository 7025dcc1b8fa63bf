// Package cps implements the CPS Converter (spec.md §4.5): two
// mutually-recursive functions translating unary direct-style IR into CPS
// IR, where every application takes an explicit continuation.
package cps

import (
	"github.com/schemec/schemec/internal/errors"
	"github.com/schemec/schemec/internal/fresh"
	"github.com/schemec/schemec/internal/ir"
)

// Transform is the CPS Converter's entry point (spec.md §4.5): it converts
// the whole program to CPS by evaluating expr with a synthesized outer
// continuation named "k" (spec.md S3, S4, S6's "outer continuation k",
// which resolves global in an empty program env), not just the special
// case where expr already happens to be a bare lambda.
func Transform(expr ir.Expr, ctx *fresh.Context) (ir.Expr, error) {
	return TransformCont(expr, ir.NewVar(expr.Pos(), "k"), ctx)
}

// transformLam converts a direct-style unary lambda to CPS: it gains an
// explicit continuation parameter, and its body is converted in tail
// position against that new parameter.
func transformLam(lam *ir.LamOneOne, ctx *fresh.Context) (ir.Expr, error) {
	k := ctx.Cont()
	body, err := TransformCont(lam.Body, ir.NewVar(lam.Pos(), k), ctx)
	if err != nil {
		return nil, err
	}
	return ir.NewLamOneOneCont(lam.Pos(), lam.Param, k, body), nil
}

// TransformCont evaluates expr and passes its value to cont, fixing
// left-to-right evaluation: for an application, the operator is evaluated
// before the operand, which is evaluated before the call itself.
func TransformCont(expr ir.Expr, cont ir.Expr, ctx *fresh.Context) (ir.Expr, error) {
	switch e := expr.(type) {
	case *ir.Var, *ir.Lit, *ir.BuiltinIdent, *ir.LamOneOneCont:
		return ir.NewAppOne(e.Pos(), cont, e), nil

	case *ir.LamOneOne:
		lam, err := transformLam(e, ctx)
		if err != nil {
			return nil, err
		}
		return ir.NewAppOne(e.Pos(), cont, lam), nil

	case *ir.AppOne:
		operatorVar := ctx.Ident("operator_var")
		operandVar := ctx.Ident("operand_var")

		operandCont := ir.NewLamOneOne(e.Pos(), operandVar, ir.NewAppOneCont(
			e.Pos(),
			ir.NewVar(e.Pos(), operatorVar),
			ir.NewVar(e.Pos(), operandVar),
			cont,
		))
		operandTransformed, err := TransformCont(e.Operand, operandCont, ctx)
		if err != nil {
			return nil, err
		}

		operatorCont := ir.NewLamOneOne(e.Pos(), operatorVar, operandTransformed)
		return TransformCont(e.Operator, operatorCont, ctx)

	case *ir.AppOneCont:
		return nil, errors.WrapReport(errors.InvalidStage(errors.PhaseCPS, "cps.TransformCont", expr.Pos(), "AppOneCont"))

	default:
		return nil, errors.WrapReport(errors.InvalidStage(errors.PhaseCPS, "cps.TransformCont", expr.Pos(), variantName(expr)))
	}
}

func variantName(expr ir.Expr) string {
	switch expr.(type) {
	case *ir.Lam:
		return "Lam"
	case *ir.App:
		return "App"
	case *ir.LamOne:
		return "LamOne"
	default:
		return "unknown"
	}
}
