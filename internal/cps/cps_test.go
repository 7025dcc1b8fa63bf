package cps

import (
	"testing"

	"github.com/schemec/schemec/internal/fresh"
	"github.com/schemec/schemec/internal/ir"
)

func p() ir.Pos { return ir.Pos{} }

// TestTransformAtomAppliesOuterContinuation covers the simplest top-level
// program: a bare variable gets applied to the synthesized outer
// continuation k, never left unconverted.
func TestTransformAtomAppliesOuterContinuation(t *testing.T) {
	ctx := fresh.New()
	out, err := Transform(ir.NewVar(p(), "x"), ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	app, ok := out.(*ir.AppOne)
	if !ok {
		t.Fatalf("got %#v, want AppOne", out)
	}
	k, ok := app.Operator.(*ir.Var)
	if !ok || k.Name != "k" {
		t.Errorf("operator = %#v, want Var(k)", app.Operator)
	}
	v, ok := app.Operand.(*ir.Var)
	if !ok || v.Name != "x" {
		t.Errorf("operand = %#v, want Var(x)", app.Operand)
	}
}

// TestTransformLambdaGainsContinuationParam reproduces spec.md's scenario
// S2: (lambda (x) x), after arity+body normalization, is LamOneOne(x, x).
// It must become LamOneOneCont(x, $cont, AppOne(Var($cont), Var(x))), and
// since it is the whole program, that lambda value is itself applied to
// the outer continuation k.
func TestTransformLambdaGainsContinuationParam(t *testing.T) {
	ctx := fresh.New()
	in := ir.NewLamOneOne(p(), "x", ir.NewVar(p(), "x"))

	out, err := Transform(in, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	app, ok := out.(*ir.AppOne)
	if !ok {
		t.Fatalf("got %#v, want AppOne applying the lambda value to k", out)
	}
	if k, ok := app.Operator.(*ir.Var); !ok || k.Name != "k" {
		t.Errorf("operator = %#v, want Var(k)", app.Operator)
	}

	lam, ok := app.Operand.(*ir.LamOneOneCont)
	if !ok || lam.Param != "x" {
		t.Fatalf("operand = %#v, want LamOneOneCont(x, ...)", app.Operand)
	}

	body, ok := lam.Body.(*ir.AppOne)
	if !ok {
		t.Fatalf("body = %#v, want AppOne(Var(cont), Var(x))", lam.Body)
	}
	cont, ok := body.Operator.(*ir.Var)
	if !ok || cont.Name != lam.ContParam {
		t.Errorf("body operator = %#v, want Var(%s)", body.Operator, lam.ContParam)
	}
	if v, ok := body.Operand.(*ir.Var); !ok || v.Name != "x" {
		t.Errorf("body operand = %#v, want Var(x)", body.Operand)
	}
}

// TestTransformBuiltinApplicationNestsTemporaries reproduces spec.md's
// scenario S3: (+ 1 2), after the Builtin Resolver and Arity Normalizer,
// is AppOne(AppOne(BuiltinIdent, 1), 2). CPS conversion must introduce a
// temporary per AppOne and bottom out in AppOneCont(operator, operand, k).
func TestTransformBuiltinApplicationNestsTemporaries(t *testing.T) {
	ctx := fresh.New()
	add := ir.NewBuiltinIdent(p(), "object_int_obj_add", ir.TwoArg)
	in := ir.NewAppOne(p(), ir.NewAppOne(p(), add, ir.NewIntLit(p(), 1)), ir.NewIntLit(p(), 2))

	out, err := Transform(in, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !containsAppOneContTo(out, "k") {
		t.Errorf("expected some AppOneCont with continuation Var(k) in %#v", out)
	}
}

// TestTransformApplicationAllGlobal reproduces spec.md's scenario S6:
// (f a b), after the Arity Normalizer, is AppOne(AppOne(f, a), b); none of
// f, a, b are bound by any lambda CPS conversion introduces.
func TestTransformApplicationAllGlobal(t *testing.T) {
	ctx := fresh.New()
	in := ir.NewAppOne(p(),
		ir.NewAppOne(p(), ir.NewVar(p(), "f"), ir.NewVar(p(), "a")),
		ir.NewVar(p(), "b"))

	out, err := Transform(in, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !containsAppOneContTo(out, "k") {
		t.Errorf("expected some AppOneCont with continuation Var(k) in %#v", out)
	}
}

// TestTransformContRejectsAlreadyConvertedApplication verifies that
// TransformCont refuses an AppOneCont input: a program cannot legally
// reach the CPS Converter already holding CPS'd nodes.
func TestTransformContRejectsAlreadyConvertedApplication(t *testing.T) {
	ctx := fresh.New()
	in := ir.NewAppOneCont(p(), ir.NewVar(p(), "f"), ir.NewVar(p(), "a"), ir.NewVar(p(), "k"))
	if _, err := TransformCont(in, ir.NewVar(p(), "k"), ctx); err == nil {
		t.Fatal("expected InvalidStage error for AppOneCont at the CPS stage")
	}
}

// TestTransformContRejectsPreNormalizationVariant verifies that n-ary Lam
// (not yet curried by the Arity Normalizer) is rejected, not silently
// passed through.
func TestTransformContRejectsPreNormalizationVariant(t *testing.T) {
	ctx := fresh.New()
	in := ir.NewLam(p(), []string{"a", "b"}, []ir.Expr{ir.NewVar(p(), "a")})
	if _, err := TransformCont(in, ir.NewVar(p(), "k"), ctx); err == nil {
		t.Fatal("expected InvalidStage error for a pre-normalization Lam")
	}
}

// containsAppOneContTo reports whether expr contains, anywhere in its
// tree, an AppOneCont whose continuation is a bare Var named name. CPS
// conversion of a nested application scatters several administrative
// continuations through the tree; only one of them carries the outer
// continuation through to its terminal call.
func containsAppOneContTo(expr ir.Expr, name string) bool {
	switch e := expr.(type) {
	case *ir.AppOneCont:
		if v, ok := e.Continuation.(*ir.Var); ok && v.Name == name {
			return true
		}
		return containsAppOneContTo(e.Operator, name) ||
			containsAppOneContTo(e.Operand, name) ||
			containsAppOneContTo(e.Continuation, name)
	case *ir.AppOne:
		return containsAppOneContTo(e.Operator, name) || containsAppOneContTo(e.Operand, name)
	case *ir.LamOneOne:
		return containsAppOneContTo(e.Body, name)
	case *ir.LamOneOneCont:
		return containsAppOneContTo(e.Body, name)
	default:
		return false
	}
}
