// Package printer renders the pipeline's intermediate trees back to
// s-expression text for debugging and golden-file tests, grounded on
// original_source/src/nodes.rs's Display impls for LExpr and LExEnv. It
// is an external collaborator (spec.md §1): nothing in the core passes
// depends on it.
package printer

import (
	"fmt"
	"strings"

	"github.com/schemec/schemec/internal/ir"
	"github.com/schemec/schemec/internal/lexenv"
)

// Print renders a pre-lift ir.Expr tree. ir's own String() methods already
// implement most of this (one per variant); Print exists so callers needn't
// know that and so env-annotated trees (Env) have a matching entry point.
func Print(e ir.Expr) string {
	return e.String()
}

// PrintEnv renders an environment-annotated LExEnv tree, mirroring
// nodes.rs's "impl Display for LExEnv": lambdas and applications print as
// s-expressions; Var prints just its name and LamRef just its target id
// (as #<lambda_ID>), with no environment or slot detail, and lambdas print
// without their id (matching the original's terse Display).
func PrintEnv(e lexenv.Expr) string {
	var b strings.Builder
	printEnv(&b, e)
	return b.String()
}

func printEnv(b *strings.Builder, e lexenv.Expr) {
	switch n := e.(type) {
	case *lexenv.Lam:
		fmt.Fprintf(b, "(lambda (%s) ", n.Arg)
		printEnv(b, n.Body)
		b.WriteString(")")

	case *lexenv.LamCont:
		fmt.Fprintf(b, "(lambda (%s %s) ", n.Arg, n.Cont)
		printEnv(b, n.Body)
		b.WriteString(")")

	case *lexenv.App1:
		b.WriteString("(")
		printEnv(b, n.Cont)
		b.WriteString(" ")
		printEnv(b, n.Rand)
		b.WriteString(")")

	case *lexenv.App2:
		b.WriteString("(")
		printEnv(b, n.Rator)
		b.WriteString(" ")
		printEnv(b, n.Rand)
		b.WriteString(" ")
		printEnv(b, n.Cont)
		b.WriteString(")")

	case *lexenv.Var:
		b.WriteString(n.Name)

	case *lexenv.Lit:
		if n.Kind == ir.VoidLit {
			b.WriteString("void")
		} else {
			fmt.Fprintf(b, "%d", n.Value)
		}

	case *lexenv.BuiltinIdent:
		b.WriteString(n.Canonical)

	case *lexenv.LamRef:
		fmt.Fprintf(b, "#<lambda_%d>", n.ID)

	default:
		fmt.Fprintf(b, "#<unknown %T>", e)
	}
}
