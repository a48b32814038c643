package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"José", "jose"},
		{"  María  ", "maria"},
		{"GARCÍA", "garcia"},
		{"Núñez", "nunez"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Fold(c.in), "Fold(%q)", c.in)
	}
}

func TestFoldIdempotent(t *testing.T) {
	once := Fold("Ibáñez Á")
	assert.Equal(t, once, Fold(once))
}
