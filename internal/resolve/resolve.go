// Package resolve implements the Environment Resolver (spec.md §4.6): it
// walks post-CPS IR threading a parent Env, annotating every variable
// occurrence with whether it resolves locally or globally, and assigning
// every lambda a stable, densely-numbered id.
package resolve

import (
	"github.com/schemec/schemec/internal/errors"
	"github.com/schemec/schemec/internal/ir"
	"github.com/schemec/schemec/internal/lexenv"
)

// Ctx owns the slot-id and lambda-id counters plus the authoritative
// lam_id → Env mapping (spec.md §4.6's EnvCtx return value).
type Ctx struct {
	nextSlot int
	nextLam  uint64
	lamEnvs  map[uint64]*lexenv.Env
}

// NewCtx creates an empty resolver context.
func NewCtx() *Ctx {
	return &Ctx{lamEnvs: map[uint64]*lexenv.Env{}}
}

// LamEnv returns the Env captured for lambda id, and whether it exists.
func (c *Ctx) LamEnv(id uint64) (*lexenv.Env, bool) {
	env, ok := c.lamEnvs[id]
	return env, ok
}

// LambdaCount returns the number of lambdas assigned an id so far; with
// Resolve's dense-id invariant, ids run 0..LambdaCount()-1.
func (c *Ctx) LambdaCount() int { return int(c.nextLam) }

func (c *Ctx) allocSlot() int {
	slot := c.nextSlot
	c.nextSlot++
	return slot
}

func (c *Ctx) allocLam() uint64 {
	id := c.nextLam
	c.nextLam++
	return id
}

// Resolve is the Environment Resolver's entry point. It returns the
// root expression annotated with lexical environments and lambda ids, plus
// the Ctx recording every lambda's environment (spec.md §4.6's
// "(root_expr, EnvCtx)").
func Resolve(expr ir.Expr) (lexenv.Expr, *Ctx, error) {
	ctx := NewCtx()
	root, err := resolveInternal(expr, lexenv.Empty(), ctx)
	if err != nil {
		return nil, nil, err
	}
	return root, ctx, nil
}

func resolveInternal(expr ir.Expr, env *lexenv.Env, ctx *Ctx) (lexenv.Expr, error) {
	switch e := expr.(type) {
	case *ir.Var:
		_, bound := env.Get(e.Name)
		return &lexenv.Var{Name: e.Name, Global: !bound, At: e.Pos(), Envv: env}, nil

	case *ir.Lit:
		return &lexenv.Lit{Kind: e.Kind, Value: e.Value, At: e.Pos(), Envv: env}, nil

	case *ir.BuiltinIdent:
		return &lexenv.BuiltinIdent{Canonical: e.Canonical, Arity: e.Arity, At: e.Pos(), Envv: env}, nil

	case *ir.AppOne:
		cont, err := resolveInternal(e.Operator, env, ctx)
		if err != nil {
			return nil, err
		}
		rand, err := resolveInternal(e.Operand, env, ctx)
		if err != nil {
			return nil, err
		}
		return &lexenv.App1{Cont: cont, Rand: rand, At: e.Pos(), Envv: env}, nil

	case *ir.AppOneCont:
		rator, err := resolveInternal(e.Operator, env, ctx)
		if err != nil {
			return nil, err
		}
		rand, err := resolveInternal(e.Operand, env, ctx)
		if err != nil {
			return nil, err
		}
		cont, err := resolveInternal(e.Continuation, env, ctx)
		if err != nil {
			return nil, err
		}
		return &lexenv.App2{Rator: rator, Rand: rand, Cont: cont, At: e.Pos(), Envv: env}, nil

	case *ir.LamOneOne:
		slot := ctx.allocSlot()
		newEnv := env.Extend(e.Param, slot)
		id := ctx.allocLam()
		body, err := resolveInternal(e.Body, newEnv, ctx)
		if err != nil {
			return nil, err
		}
		ctx.lamEnvs[id] = newEnv
		return &lexenv.Lam{Arg: e.Param, Body: body, At: e.Pos(), Envv: newEnv, ID: id}, nil

	case *ir.LamOneOneCont:
		argSlot := ctx.allocSlot()
		contSlot := ctx.allocSlot()
		newEnv := env.ExtendAll([]string{e.Param, e.ContParam}, []int{argSlot, contSlot})
		id := ctx.allocLam()
		body, err := resolveInternal(e.Body, newEnv, ctx)
		if err != nil {
			return nil, err
		}
		ctx.lamEnvs[id] = newEnv
		return &lexenv.LamCont{Arg: e.Param, Cont: e.ContParam, Body: body, At: e.Pos(), Envv: newEnv, ID: id}, nil

	default:
		return nil, errors.WrapReport(errors.InvalidStage(errors.PhaseResolve, "resolve.Resolve", expr.Pos(), variantName(expr)))
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
