package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tomate", "tomate"},
		{"TOMATE", "tomate"},
		{"  Tomate  ", "tomate"},
		{"Crème fraîche", "creme fraiche"},
		{"Piment   séché", "piment seche"},
		{"Feuilles d'Eru", "feuilles d'eru"},
		{"Bœuf", "bœuf"}, // œ is a letter, not an accent mark
		{"ÉPICES", "epices"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Crème Fraîche", "tomate", "HUILE de Palme "}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}
