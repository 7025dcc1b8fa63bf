// Package fresh implements the compiler-wide fresh-name context (spec.md
// §4.1): a single, monotonically-incrementing counter shared by every pass
// in the pipeline so generated names never collide, regardless of which
// pass minted them.
package fresh

import (
	"fmt"

	"github.com/schemec/schemec/internal/ir"
)

// Context is single-threaded on purpose: passes share one instance for the
// whole pipeline run. There is no locking because there is no concurrent
// access (spec.md §5).
type Context struct {
	count uint64
}

// New creates a fresh-name context starting its counter at zero.
func New() *Context {
	return &Context{}
}

func (c *Context) next() uint64 {
	n := c.count
	c.count++
	return n
}

// Ident returns a new administrative identifier derived from hint, e.g.
// gen_ident("operator_var") → "$anon_var_operator_var_7".
func (c *Context) Ident(hint string) string {
	return fmt.Sprintf("$anon_var_%s_%d", hint, c.next())
}

// Cont returns a fresh continuation-parameter name, e.g. "$cont_var_3".
func (c *Context) Cont() string {
	return fmt.Sprintf("$cont_var_%d", c.next())
}

// Throwaway returns a fresh name for an unused binding position, e.g. the
// implicit parameter of a zero-argument lambda.
func (c *Context) Throwaway() string {
	return fmt.Sprintf("$throwaway_var_%d", c.next())
}

// Var is a convenience wrapper returning an ir.Var bound to a fresh
// administrative identifier.
func (c *Context) Var(hint string, at ir.Pos) *ir.Var {
	return ir.NewVar(at, c.Ident(hint))
}
