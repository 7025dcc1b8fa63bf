// Package errors provides centralized error code definitions for schemec.
// All error codes follow a consistent taxonomy so tooling and editors can
// key off a stable code rather than parsing message text.
package errors

// Error code constants organized by phase. Each constant represents a
// specific error condition with structured reporting via Report.
const (
	// ============================================================================
	// Lexer errors (LEX###)
	// ============================================================================

	// LEX001 indicates an unterminated string or comment
	LEX001 = "LEX001"

	// LEX002 indicates an invalid character in the input stream
	LEX002 = "LEX002"

	// ============================================================================
	// Parser errors (PAR###)
	// ============================================================================

	// PAR001 indicates an unexpected token
	PAR001 = "PAR001"

	// PAR002 indicates a missing closing paren
	PAR002 = "PAR002"

	// PAR003 indicates a lambda parameter list element that isn't a symbol
	PAR003 = "PAR003"

	// PAR004 indicates a malformed lambda form (missing parameter list)
	PAR004 = "PAR004"

	// ============================================================================
	// Pipeline stage-violation errors (STG###) — spec.md §7
	// ============================================================================

	// STG001 indicates a pass encountered an IR variant illegal at its stage
	// (spec.md's InvalidStage)
	STG001 = "STG001"

	// STG002 indicates the emitter encountered an inline lambda, meaning the
	// lifter invariant was violated (spec.md's EmitterNoLambda)
	STG002 = "STG002"

	// STG003 is reserved for UnboundInCPS (a continuation escaping its
	// lambda); not currently enforced by any pass, per spec.md §7.
	STG003 = "STG003"
)

// Phase names used in Report.Phase.
const (
	PhaseLexer     = "lexer"
	PhaseParser    = "parser"
	PhaseBuiltin   = "builtin"
	PhaseNormalize = "normalize"
	PhaseCPS       = "cps"
	PhaseResolve   = "resolve"
	PhaseLift      = "lift"
	PhaseEmit      = "emit"
)
