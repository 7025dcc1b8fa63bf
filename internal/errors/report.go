package errors

import (
	"encoding/json"
	"errors"

	"github.com/schemec/schemec/internal/ir"
)

// Span is a source range, reported alongside a diagnostic when available.
type Span struct {
	Start ir.Pos `json:"start"`
	End   ir.Pos `json:"end"`
}

// Fix represents a suggested fix for a diagnostic.
type Fix struct {
	Suggestion string  `json:"suggestion"`
	Confidence float64 `json:"confidence"`
}

// Report is the canonical structured error type for schemec. All error
// builders return *Report, which is wrapped as a ReportError so it survives
// errors.As() unwrapping.
type Report struct {
	Schema  string         `json:"schema"`         // Always "schemec.error/v1"
	Code    string         `json:"code"`           // Error code (STG001, PAR002, ...)
	Phase   string         `json:"phase"`          // Phase: "parser", "cps", "resolve", ...
	Message string         `json:"message"`        // Human-readable message
	Span    *Span          `json:"span,omitempty"` // Source location (optional)
	Data    map[string]any `json:"data,omitempty"` // Structured data (sorted keys)
	Fix     *Fix           `json:"fix,omitempty"`  // Suggested fix (optional)
}

// ReportError wraps a Report as an error.
type ReportError struct {
	Rep *Report
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown error"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// AsReport attempts to extract a Report from an error chain.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// WrapReport wraps a Report as a ReportError. Call sites return
// errors.WrapReport(report) to preserve structure.
func WrapReport(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// ToJSON converts a Report to JSON (deterministic, sorted keys).
func (r *Report) ToJSON(compact bool) (string, error) {
	var data []byte
	var err error

	if compact {
		data, err = json.Marshal(r)
	} else {
		data, err = json.MarshalIndent(r, "", "  ")
	}

	if err != nil {
		return "", err
	}
	return string(data), nil
}

// InvalidStage builds the Report for spec.md's InvalidStage error: a pass
// saw an IR variant that should not appear at its stage.
func InvalidStage(phase, pass string, at ir.Pos, variant string) *Report {
	return &Report{
		Schema:  "schemec.error/v1",
		Code:    STG001,
		Phase:   phase,
		Message: pass + ": unexpected IR variant " + variant + " at this stage",
		Span:    &Span{Start: at, End: at},
		Data:    map[string]any{"variant": variant, "pass": pass},
	}
}

// EmitterNoLambda builds the Report for spec.md's EmitterNoLambda error:
// the emitter encountered an inline lambda because the lifter failed.
func EmitterNoLambda(at ir.Pos) *Report {
	return &Report{
		Schema:  "schemec.error/v1",
		Code:    STG002,
		Phase:   PhaseEmit,
		Message: "emitter encountered an inline lambda; lambda lifter invariant violated",
		Span:    &Span{Start: at, End: at},
	}
}

// NewGeneric creates a generic error report, used at phase boundaries for
// errors not otherwise classified.
func NewGeneric(phase string, err error) *Report {
	return &Report{
		Schema:  "schemec.error/v1",
		Code:    "RUNTIME",
		Phase:   phase,
		Message: err.Error(),
		Data:    map[string]any{},
	}
}
