package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTerm(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Acme", "Acme"},
		{"  Acme  ", "Acme"},
		{"José Pérez", "José Pérez"},
		{"O'Brien & Cía.", "OBrien  Cía"},
		{"12345", "12345"},
		{"!!!", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, normalizeTerm(c.in), "entrada: %q", c.in)
	}
}
