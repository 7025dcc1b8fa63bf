// Package pipeline composes the lexer, parser, and every IR-to-IR pass
// (spec.md §4-§5) into a single compilation entry point, grounded on the
// teacher's internal/pipeline's Config/Result orchestration shape but
// carrying this domain's eight stages rather than AILANG's AST/Core/
// Typed/Linked artifacts.
package pipeline

import (
	"fmt"
	"time"

	"github.com/schemec/schemec/internal/builtin"
	"github.com/schemec/schemec/internal/cdecl"
	"github.com/schemec/schemec/internal/cps"
	"github.com/schemec/schemec/internal/emit"
	"github.com/schemec/schemec/internal/fresh"
	"github.com/schemec/schemec/internal/ir"
	"github.com/schemec/schemec/internal/lexenv"
	"github.com/schemec/schemec/internal/lexer"
	"github.com/schemec/schemec/internal/lift"
	"github.com/schemec/schemec/internal/normalize"
	"github.com/schemec/schemec/internal/parser"
	"github.com/schemec/schemec/internal/resolve"
)

// Config controls one Compile invocation.
type Config struct {
	// Source is the raw program text, pre-normalization.
	Source string
	// Filename is used for diagnostics only.
	Filename string
	// BuiltinTable overrides internal/builtin.Table when non-nil.
	BuiltinTable map[string]builtin.Entry
	// BuiltinEnvIDs flags which lifted lambda ids count as builtin envs
	// for the emitter's env table ordering (spec.md §4.8 item 2).
	BuiltinEnvIDs []uint64
	// SkipEnvTable omits the environment descriptor table from the emitted
	// translation unit when set (internal/config's EmitEnvTable, inverted
	// so the zero value keeps the table, matching Compile's prior
	// unconditional behavior).
	SkipEnvTable bool
}

// Artifacts holds every pass's output, so a caller (tests, the REPL's
// :dump-* commands) can inspect intermediate IR, not only the final result.
type Artifacts struct {
	Parsed      ir.Expr
	Literalized ir.Expr
	Resolved    ir.Expr // after builtin resolution
	Curried     ir.Expr // after arity normalization
	Sequenced   ir.Expr // after body sequencing
	CPS         ir.Expr
	Env         lexenv.Expr
	EnvCtx      *resolve.Ctx
	Lifted      lexenv.Expr
	LiftedTable lift.Table
	Unit        *cdecl.TranslationUnit
}

// Result is Compile's return value.
type Result struct {
	Artifacts    Artifacts
	Err          error
	PhaseTimings map[string]int64 // milliseconds, keyed by stage name
}

// Compile runs the full pipeline: lex/parse, literal-constructor rewrite,
// builtin resolution, arity normalization, body sequencing, CPS
// conversion, environment resolution, lambda lifting, and code emission.
// A failure at any stage stops the pipeline and is reported in Result.Err;
// earlier stages' artifacts remain populated for diagnostics.
func Compile(cfg Config) *Result {
	res := &Result{PhaseTimings: map[string]int64{}}
	timed := func(name string, fn func() error) bool {
		start := time.Now()
		err := fn()
		res.PhaseTimings[name] = time.Since(start).Milliseconds()
		if err != nil {
			res.Err = fmt.Errorf("%s: %w", name, err)
			return false
		}
		return true
	}

	table := cfg.BuiltinTable
	if table == nil {
		table = builtin.Table
	}

	fctx := fresh.New()

	if !timed("parse", func() error {
		normalized := lexer.Normalize([]byte(cfg.Source))
		l := lexer.New(string(normalized))
		p := parser.New(l, cfg.Filename)
		expr, err := p.ParseProgram()
		if err != nil {
			return err
		}
		res.Artifacts.Parsed = expr
		return nil
	}) {
		return res
	}

	res.Artifacts.Literalized = ir.RewriteLiteralConstructors(res.Artifacts.Parsed)

	if !timed("builtin_resolve", func() error {
		resolved, err := builtin.Resolve(table, res.Artifacts.Literalized)
		if err != nil {
			return err
		}
		res.Artifacts.Resolved = resolved
		return nil
	}) {
		return res
	}

	if !timed("normalize_arity", func() error {
		curried, err := normalize.ExpandLamApp(res.Artifacts.Resolved, fctx)
		if err != nil {
			return err
		}
		res.Artifacts.Curried = curried
		return nil
	}) {
		return res
	}

	if !timed("normalize_body", func() error {
		sequenced, err := normalize.ExpandLamBody(res.Artifacts.Curried, fctx)
		if err != nil {
			return err
		}
		res.Artifacts.Sequenced = sequenced
		return nil
	}) {
		return res
	}

	if !timed("cps", func() error {
		converted, err := cps.Transform(res.Artifacts.Sequenced, fctx)
		if err != nil {
			return err
		}
		res.Artifacts.CPS = converted
		return nil
	}) {
		return res
	}

	if !timed("resolve", func() error {
		env, ctx, err := resolve.Resolve(res.Artifacts.CPS)
		if err != nil {
			return err
		}
		res.Artifacts.Env = env
		res.Artifacts.EnvCtx = ctx
		return nil
	}) {
		return res
	}

	timed("lift", func() error {
		lifted, table := lift.Lift(res.Artifacts.Env)
		res.Artifacts.Lifted = lifted
		res.Artifacts.LiftedTable = table
		return nil
	})

	timed("emit", func() error {
		unit, err := emit.Unit(res.Artifacts.LiftedTable, res.Artifacts.Lifted, res.Artifacts.EnvCtx, cfg.BuiltinEnvIDs, !cfg.SkipEnvTable)
		if err != nil {
			return err
		}
		res.Artifacts.Unit = unit
		return nil
	})

	return res
}
