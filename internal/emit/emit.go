// Package emit implements the Code Emitter (spec.md §4.8): it turns the
// lifted lambda table, the top-level expression, and the resolver's
// EnvCtx into a C translation unit AST (internal/cdecl), grounded on
// original_source/src/codegen.rs's lambda_codegen/codegen/gen_env_ids.
package emit

import (
	"fmt"
	"sort"

	"github.com/schemec/schemec/internal/cdecl"
	"github.com/schemec/schemec/internal/errors"
	"github.com/schemec/schemec/internal/ir"
	"github.com/schemec/schemec/internal/lexenv"
	"github.com/schemec/schemec/internal/lift"
	"github.com/schemec/schemec/internal/resolve"
)

func lambdaName(id uint64) string { return fmt.Sprintf("lambda_%d", id) }

// Unit is the Code Emitter's entry point. It produces function declarations
// for every lifted lambda, a `main` wrapper compiling the top-level
// expression (spec.md's core does not specify a program entry point
// convention beyond the function declarations themselves, but the lifted
// program's entry expression still has to appear in the translation unit
// somewhere, or the program it names is never actually run), and, when
// emitEnvTable is set, the environment descriptor table (internal/config's
// EmitEnvTable setting: a runtime that supplies its own env table wiring
// doesn't need this repeated in every translation unit).
func Unit(table lift.Table, root lexenv.Expr, ctx *resolve.Ctx, builtinEnvIDs []uint64, emitEnvTable bool) (*cdecl.TranslationUnit, error) {
	decls, err := lambdaDecls(table)
	if err != nil {
		return nil, err
	}

	rootExpr, err := expr(root)
	if err != nil {
		return nil, err
	}
	decls = append(decls, cdecl.Fun{
		Name:   "main",
		Return: cdecl.Void{},
		Body:   []cdecl.CStmt{cdecl.Expr{Value: rootExpr}},
	})

	if emitEnvTable {
		decls = append(decls, envTable(ctx, builtinEnvIDs)...)
	}

	return &cdecl.TranslationUnit{Decls: decls}, nil
}

// lambdaDecls emits one Fun per lifted lambda, in ascending id order so
// output is deterministic across runs (spec.md invariant 7).
func lambdaDecls(table lift.Table) ([]cdecl.CDecl, error) {
	ids := make([]uint64, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	decls := make([]cdecl.CDecl, 0, len(ids))
	for _, id := range ids {
		switch l := table[id].(type) {
		case *lexenv.Lam:
			body, err := expr(l.Body)
			if err != nil {
				return nil, err
			}
			decls = append(decls, cdecl.Fun{
				Name:   lambdaName(id),
				Return: cdecl.Void{},
				Args:   []cdecl.Param{{Name: l.Arg, Type: cdecl.ObjectPtr()}},
				Body:   []cdecl.CStmt{cdecl.Expr{Value: body}},
			})

		case *lexenv.LamCont:
			body, err := expr(l.Body)
			if err != nil {
				return nil, err
			}
			decls = append(decls, cdecl.Fun{
				Name:   lambdaName(id),
				Return: cdecl.Void{},
				Args: []cdecl.Param{
					{Name: l.Arg, Type: cdecl.ObjectPtr()},
					{Name: l.Cont, Type: cdecl.ObjectPtr()},
				},
				Body: []cdecl.CStmt{cdecl.Expr{Value: body}},
			})

		default:
			return nil, errors.WrapReport(errors.EmitterNoLambda(ir.Pos{}))
		}
	}
	return decls, nil
}

// expr compiles a single LExEnv expression to a C expression (spec.md
// §4.8 item 3).
func expr(e lexenv.Expr) (cdecl.CExpr, error) {
	switch n := e.(type) {
	case *lexenv.LamRef:
		return cdecl.LitStr{Value: lambdaName(n.ID)}, nil

	case *lexenv.Var:
		if n.Global {
			return genGlobalLookup(n.Name), nil
		}
		slot, _ := n.Env().Get(n.Name)
		return genLocalLookup(slot), nil

	case *lexenv.Lit:
		if n.Kind == ir.VoidLit {
			return genGlobalLookup("void"), nil
		}
		return cdecl.LitInt{Value: n.Value}, nil

	case *lexenv.BuiltinIdent:
		return cdecl.LitStr{Value: n.Canonical}, nil

	case *lexenv.App1:
		cont, err := expr(n.Cont)
		if err != nil {
			return nil, err
		}
		rand, err := expr(n.Rand)
		if err != nil {
			return nil, err
		}
		return cdecl.FunCallOp{Expr: cont, Args: []cdecl.CExpr{rand}}, nil

	case *lexenv.App2:
		rator, err := expr(n.Rator)
		if err != nil {
			return nil, err
		}
		rand, err := expr(n.Rand)
		if err != nil {
			return nil, err
		}
		cont, err := expr(n.Cont)
		if err != nil {
			return nil, err
		}
		return cdecl.FunCallOp{Expr: rator, Args: []cdecl.CExpr{rand, cont}}, nil

	case *lexenv.Lam, *lexenv.LamCont:
		// The lifter's invariant (spec.md §4.7, §4.8: "the emitter never
		// encounters in-line Lam or LamCont") is violated if we get here.
		return nil, errors.WrapReport(errors.EmitterNoLambda(ir.Pos{}))

	default:
		return nil, errors.WrapReport(errors.EmitterNoLambda(ir.Pos{}))
	}
}

// genGlobalLookup names, but does not implement, the runtime's global
// table lookup (spec.md §6: "implementation-defined against the runtime").
func genGlobalLookup(name string) cdecl.CExpr {
	return cdecl.MacroCall{Name: "GLOBAL_LOOKUP", Args: []cdecl.CExpr{cdecl.LitStr{Value: name}}}
}

// genLocalLookup names the runtime's local-environment slot lookup.
func genLocalLookup(slot int) cdecl.CExpr {
	return cdecl.MacroCall{Name: "ENV_LOOKUP", Args: []cdecl.CExpr{cdecl.LitInt{Value: int64(slot)}}}
}

// envTable emits one ENV_ENTRY(...) macro invocation per lam_id, builtin
// envs first, then program envs (spec.md §4.8 item 2), each listing its
// env's slot ids in assignment order.
func envTable(ctx *resolve.Ctx, builtinEnvIDs []uint64) []cdecl.CDecl {
	isBuiltin := make(map[uint64]bool, len(builtinEnvIDs))
	for _, id := range builtinEnvIDs {
		isBuiltin[id] = true
	}

	ids := make([]uint64, 0, ctx.LambdaCount())
	for i := 0; i < ctx.LambdaCount(); i++ {
		ids = append(ids, uint64(i))
	}
	sort.Slice(ids, func(i, j int) bool {
		bi, bj := isBuiltin[ids[i]], isBuiltin[ids[j]]
		if bi != bj {
			return bi // builtin envs precede program envs
		}
		return ids[i] < ids[j]
	})

	decls := make([]cdecl.CDecl, 0, len(ids))
	for _, id := range ids {
		env, ok := ctx.LamEnv(id)
		if !ok {
			continue
		}
		args := make([]cdecl.CExpr, 0, len(env.Slots()))
		for _, slot := range env.Slots() {
			args = append(args, cdecl.LitInt{Value: int64(slot)})
		}
		decls = append(decls, cdecl.MacroInvocation{Call: cdecl.MacroCall{Name: "ENV_ENTRY", Args: args}})
	}
	return decls
}
