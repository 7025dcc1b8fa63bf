package lexer

import (
	"bytes"
	"testing"

	"golang.org/x/text/unicode/norm"
)

func TestBOMStripping(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{
			name:     "with_bom",
			input:    []byte{0xEF, 0xBB, 0xBF, 'h', 'e', 'l', 'l', 'o'},
			expected: []byte("hello"),
		},
		{
			name:     "without_bom",
			input:    []byte("hello"),
			expected: []byte("hello"),
		},
		{
			name:     "empty_with_bom",
			input:    []byte{0xEF, 0xBB, 0xBF},
			expected: []byte{},
		},
		{
			name:     "empty_without_bom",
			input:    []byte{},
			expected: []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if !bytes.Equal(got, tt.expected) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNFCNormalization(t *testing.T) {
	// "cafe" + combining acute accent U+0301 (NFD) must normalize to the
	// precomposed form (NFC).
	nfd := append([]byte("cafe"), 0xCC, 0x81)
	got := Normalize(nfd)
	if !norm.NFC.IsNormal(got) {
		t.Errorf("Normalize output is not NFC: %q", got)
	}

	nfc := []byte("café")
	if !bytes.Equal(Normalize(nfd), Normalize(nfc)) {
		t.Errorf("NFD and NFC forms of the same string normalized differently")
	}
}

// TestNormalizeTokenEquivalence checks that lexically equivalent source in
// NFD vs NFC form produces an identical token stream once normalized.
func TestNormalizeTokenEquivalence(t *testing.T) {
	nfd := "(" + string(append([]byte("cafe"), 0xCC, 0x81)) + " 1)"
	nfc := "(café 1)"

	tokens1 := tokenize(Normalize([]byte(nfd)))
	tokens2 := tokenize(Normalize([]byte(nfc)))

	if len(tokens1) != len(tokens2) {
		t.Fatalf("token count mismatch: %d vs %d", len(tokens1), len(tokens2))
	}
	for i := range tokens1 {
		if tokens1[i].Type != tokens2[i].Type || tokens1[i].Lexeme != tokens2[i].Lexeme {
			t.Errorf("token %d mismatch: %s vs %s", i, tokens1[i], tokens2[i])
		}
	}
}

func tokenize(src []byte) []Token {
	l := New(string(src))
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			break
		}
	}
	return tokens
}

// TestNormalizeDeterminism verifies Normalize() produces stable output.
func TestNormalizeDeterminism(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("café")...) // BOM + text

	var results [][]byte
	for i := 0; i < 100; i++ {
		results = append(results, Normalize(input))
	}

	baseline := results[0]
	for i, result := range results[1:] {
		if !bytes.Equal(result, baseline) {
			t.Errorf("iteration %d produced different output", i+1)
		}
	}
}
