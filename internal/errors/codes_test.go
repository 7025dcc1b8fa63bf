package errors

import "testing"

func TestErrorCodeTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		phase    string
		category string
	}{
		{"LEX001", LEX001, "lexer", "syntax"},
		{"PAR001", PAR001, "parser", "syntax"},
		{"PAR002", PAR002, "parser", "syntax"},
		{"STG001", STG001, "pipeline", "invariant"},
		{"STG002", STG002, "emit", "invariant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, exists := GetErrorInfo(tt.code)
			if !exists {
				t.Fatalf("error code %s not found in registry", tt.code)
			}
			if info.Code != tt.code {
				t.Errorf("Code mismatch: got %s, want %s", info.Code, tt.code)
			}
			if info.Phase != tt.phase {
				t.Errorf("Phase mismatch for %s: got %s, want %s", tt.code, info.Phase, tt.phase)
			}
			if info.Category != tt.category {
				t.Errorf("Category mismatch for %s: got %s, want %s", tt.code, info.Category, tt.category)
			}
		})
	}
}

func TestIsParserError(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{LEX001, true},
		{PAR001, true},
		{STG001, false},
		{STG002, false},
	}
	for _, tt := range tests {
		if got := IsParserError(tt.code); got != tt.want {
			t.Errorf("IsParserError(%s) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestAllErrorCodesInRegistry(t *testing.T) {
	allCodes := []string{
		LEX001, LEX002,
		PAR001, PAR002, PAR003, PAR004,
		STG001, STG002, STG003,
	}
	for _, code := range allCodes {
		t.Run(code, func(t *testing.T) {
			if _, exists := GetErrorInfo(code); !exists {
				t.Errorf("error code %s is defined but not in registry", code)
			}
		})
	}
	if len(ErrorRegistry) != len(allCodes) {
		t.Errorf("registry has %d codes, expected %d", len(ErrorRegistry), len(allCodes))
	}
}

func TestErrorInfoConsistency(t *testing.T) {
	for code, info := range ErrorRegistry {
		if info.Code != code {
			t.Errorf("code mismatch in registry: key=%s, info.Code=%s", code, info.Code)
		}
		if len(code) < 4 || len(code) > 6 {
			t.Errorf("invalid code format: %s", code)
		}
		if info.Description == "" {
			t.Errorf("empty description for %s", code)
		}
	}
}
