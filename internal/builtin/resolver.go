// Package builtin implements the Builtin Resolver pass (spec.md §4.2): a
// structural walk that rewrites any Var bound to a name in the fixed
// builtin table into a tagged BuiltinIdent reference.
package builtin

import (
	"github.com/schemec/schemec/internal/errors"
	"github.com/schemec/schemec/internal/ir"
)

// Entry is one row of the builtin table: a surface name mapped to its
// canonical runtime symbol and expected arity.
type Entry struct {
	Canonical string
	Arity     ir.Arity
}

// Table is the fixed surface-name → builtin mapping required by spec.md
// §4.2. It is not user-extensible from the surface language; internal/config
// may override it for experimentation (see internal/config).
var Table = map[string]Entry{
	"+":          {"object_int_obj_add", ir.TwoArg},
	"-":          {"object_int_obj_sub", ir.TwoArg},
	"*":          {"object_int_obj_mul", ir.TwoArg},
	"/":          {"object_int_obj_div", ir.TwoArg},
	"to_string":  {"to_string_func", ir.TwoArg},
	"println":    {"println_func", ir.TwoArg},
}

// Resolve walks expr, rewriting builtin-bound Vars into BuiltinIdents.
// expr must only contain Var, Lit, BuiltinIdent, Lam, and App nodes
// (spec.md §6's parser output contract); any other variant is a programmer
// error and Resolve reports errors.STG001.
func Resolve(table map[string]Entry, expr ir.Expr) (ir.Expr, error) {
	switch e := expr.(type) {
	case *ir.Var:
		if entry, ok := table[e.Name]; ok {
			return ir.NewBuiltinIdent(e.Pos(), entry.Canonical, entry.Arity), nil
		}
		return e, nil

	case *ir.Lit, *ir.BuiltinIdent:
		return expr, nil

	case *ir.Lam:
		body := make([]ir.Expr, len(e.Body))
		for i, b := range e.Body {
			resolved, err := Resolve(table, b)
			if err != nil {
				return nil, err
			}
			body[i] = resolved
		}
		return ir.NewLam(e.Pos(), e.Params, body), nil

	case *ir.App:
		operator, err := Resolve(table, e.Operator)
		if err != nil {
			return nil, err
		}
		operands := make([]ir.Expr, len(e.Operands))
		for i, o := range e.Operands {
			resolved, err := Resolve(table, o)
			if err != nil {
				return nil, err
			}
			operands[i] = resolved
		}
		return ir.NewApp(e.Pos(), operator, operands), nil

	default:
		return nil, errors.WrapReport(errors.InvalidStage(errors.PhaseBuiltin, "builtin.Resolve", expr.Pos(), variantName(expr)))
	}
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
