// Package lift implements the Lambda Lifter (spec.md §4.7): it walks the
// environment-annotated IR, extracting every Lam/LamCont to a table entry
// keyed by the lam_id the Environment Resolver already assigned, and
// leaving a LamRef in its place.
package lift

import "github.com/schemec/schemec/internal/lexenv"

// Table maps a lambda's id to its lifted definition: the id → lambda map
// spec.md §2 item 7 calls for.
type Table map[uint64]lexenv.Expr

// Lift walks expr, returning the top-level expression with every Lam/
// LamCont replaced by a LamRef, plus the table of lifted definitions. Each
// lambda's body is lifted before the lambda itself is inserted into the
// table (original_source/src/flat_expr.rs's lift_lambdas_internal: lift
// the body first, then record the rebuilt lambda under its id), so nested
// lambdas never appear inside a table entry's body — invariant 6.
func Lift(expr lexenv.Expr) (lexenv.Expr, Table) {
	table := Table{}
	root := liftInternal(expr, table)
	return root, table
}

func liftInternal(expr lexenv.Expr, table Table) lexenv.Expr {
	switch e := expr.(type) {
	case *lexenv.Lam:
		body := liftInternal(e.Body, table)
		table[e.ID] = &lexenv.Lam{Arg: e.Arg, Body: body, At: e.At, Envv: e.Envv, ID: e.ID}
		return &lexenv.LamRef{ID: e.ID}

	case *lexenv.LamCont:
		body := liftInternal(e.Body, table)
		table[e.ID] = &lexenv.LamCont{Arg: e.Arg, Cont: e.Cont, Body: body, At: e.At, Envv: e.Envv, ID: e.ID}
		return &lexenv.LamRef{ID: e.ID}

	case *lexenv.App1:
		return &lexenv.App1{
			Cont: liftInternal(e.Cont, table),
			Rand: liftInternal(e.Rand, table),
			At:   e.At,
			Envv: e.Envv,
		}

	case *lexenv.App2:
		return &lexenv.App2{
			Rator: liftInternal(e.Rator, table),
			Rand:  liftInternal(e.Rand, table),
			Cont:  liftInternal(e.Cont, table),
			At:    e.At,
			Envv:  e.Envv,
		}

	default:
		// Var, Lit, BuiltinIdent, LamRef: leaves with no nested lambdas.
		return e
	}
}
