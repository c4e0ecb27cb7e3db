package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Médecin", "medecin"},
		{"medecin", "medecin"},
		{"  Pharmacie  ", "pharmacie"},
		{"ÉTÉ", "ete"},
		{"Zürich", "zurich"},
		{"Genève", "geneve"},
		{"plain ascii", "plain ascii"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.input), "input %q", tt.input)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Médecin", "  Crème Brûlée  ", "São Paulo", "hello", "über-Straße"}

	for _, s := range inputs {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", s)
	}
}

func TestNormalizeAccentedEqualsPlain(t *testing.T) {
	assert.Equal(t, Normalize("medecin"), Normalize("Médecin"))
	assert.Equal(t, Normalize("creme"), Normalize("Crème"))
}
