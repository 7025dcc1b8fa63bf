package errors

// Info describes one error code in the taxonomy.
type Info struct {
	Code        string
	Phase       string
	Category    string
	Description string
}

// ErrorRegistry is the authoritative map from code to Info, used to keep
// codes.go's constants and their documentation in sync and to drive
// category predicates like IsParserError.
var ErrorRegistry = map[string]Info{
	LEX001: {LEX001, "lexer", "syntax", "unterminated string or comment"},
	LEX002: {LEX002, "lexer", "syntax", "invalid character in input"},

	PAR001: {PAR001, "parser", "syntax", "unexpected token"},
	PAR002: {PAR002, "parser", "syntax", "missing closing paren"},
	PAR003: {PAR003, "parser", "syntax", "lambda parameter is not a symbol"},
	PAR004: {PAR004, "parser", "syntax", "malformed lambda form"},

	STG001: {STG001, "pipeline", "invariant", "IR variant illegal at this stage"},
	STG002: {STG002, "emit", "invariant", "inline lambda reached the emitter"},
	STG003: {STG003, "cps", "invariant", "continuation escaped its lambda (reserved, unenforced)"},
}

// GetErrorInfo looks up a code's Info.
func GetErrorInfo(code string) (Info, bool) {
	info, ok := ErrorRegistry[code]
	return info, ok
}

// IsParserError reports whether code belongs to the lexer or parser phases.
func IsParserError(code string) bool {
	info, ok := ErrorRegistry[code]
	return ok && (info.Phase == "parser" || info.Phase == "lexer")
}

// IsStageError reports whether code is one of the pipeline stage-invariant
// violations (spec.md §7).
func IsStageError(code string) bool {
	info, ok := ErrorRegistry[code]
	return ok && info.Category == "invariant"
}
