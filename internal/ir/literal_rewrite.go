package ir

// RewriteLiteralConstructors is the Literal Constructor Rewriter pass
// (spec §2 item 2). It is reserved: today the surface language has no
// user-defined constructors, so wrapping a literal occurrence in a
// constructor call has nothing to do. It is the identity transform and
// exists so the pipeline has a stable slot to extend into once literal
// constructors (e.g. boxed rationals, tagged small integers) are added.
func RewriteLiteralConstructors(expr Expr) Expr {
	return expr
}
