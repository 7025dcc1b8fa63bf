package lexenv

import "github.com/schemec/schemec/internal/ir"

// Expr is the environment-annotated IR from spec.md §3 (LExEnv): it mirrors
// the post-CPS IR, but every node carries the Env that reaches it, and
// every lambda carries a stable id assigned once, at resolution time.
type Expr interface {
	Env() *Env
	exprNode()
}

// Lam is a unary, non-CPS lambda. Spec.md notes this is normally absent
// once every lambda has passed through CPS conversion; it is kept for
// completeness and because the emitter's data contract (spec.md §4.8 item
// 1) still names a Lam signature shape distinct from LamCont.
type Lam struct {
	Arg  string
	Body Expr
	At   ir.Pos
	Envv *Env
	ID   uint64
}

func (l *Lam) Env() *Env { return l.Envv }
func (*Lam) exprNode()   {}

// LamCont is a CPS lambda: value parameter plus continuation parameter.
type LamCont struct {
	Arg  string
	Cont string
	Body Expr
	At   ir.Pos
	Envv *Env
	ID   uint64
}

func (l *LamCont) Env() *Env { return l.Envv }
func (*LamCont) exprNode()   {}

// App1 applies a continuation to a value: cont(rand).
type App1 struct {
	Cont Expr
	Rand Expr
	At   ir.Pos
	Envv *Env
}

func (a *App1) Env() *Env { return a.Envv }
func (*App1) exprNode()   {}

// App2 is a full CPS call: rator(rand, cont).
type App2 struct {
	Rator Expr
	Rand  Expr
	Cont  Expr
	At    ir.Pos
	Envv  *Env
}

func (a *App2) Env() *Env { return a.Envv }
func (*App2) exprNode()   {}

// Var is a variable occurrence annotated with whether it resolves locally
// (Global == false) or is assumed to be a runtime global (Global == true).
type Var struct {
	Name   string
	Global bool
	At     ir.Pos
	Envv   *Env
}

func (v *Var) Env() *Env { return v.Envv }
func (*Var) exprNode()   {}

// LamRef is an opaque reference to a lifted lambda, produced by the lambda
// lifter (internal/lift) in place of an inline Lam/LamCont.
type LamRef struct {
	ID uint64
}

func (*LamRef) Env() *Env { return nil }
func (*LamRef) exprNode() {}

// Lit and BuiltinIdent mirror ir.Lit/ir.BuiltinIdent, the post-CPS IR's two
// remaining atomic leaves (spec.md §3: LExEnv "mirrors the post-CPS IR").
// spec.md §3's LExEnv variant list names only Lam/LamCont/App1/App2/Var/
// LamRef, but since Lit and BuiltinIdent legally appear as AppOne/
// AppOneCont operands after CPS conversion (the CPS converter's atom case
// leaves them untouched), the resolver and emitter need an annotated form
// for them too; they carry Env along for uniformity even though neither
// ever needs to look a name up in it.
type Lit struct {
	Kind  ir.LitKind
	Value int64
	At    ir.Pos
	Envv  *Env
}

func (l *Lit) Env() *Env { return l.Envv }
func (*Lit) exprNode()   {}

type BuiltinIdent struct {
	Canonical string
	Arity     ir.Arity
	At        ir.Pos
	Envv      *Env
}

func (b *BuiltinIdent) Env() *Env { return b.Envv }
func (*BuiltinIdent) exprNode()   {}
