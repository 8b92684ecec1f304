package chars

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChar16From(t *testing.T) {
	testCases := []struct {
		name    string
		in      uint16
		wantErr bool
	}{
		{"nul", 0, false},
		{"ascii", 'A', false},
		{"last before surrogates", 0xD7FF, false},
		{"first high surrogate", 0xD800, true},
		{"low surrogate", 0xDC00, true},
		{"last surrogate", 0xDFFF, true},
		{"first after surrogates", 0xE000, false},
		{"max", 0xFFFF, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Char16From(tc.in)
			if tc.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidChar))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Char16(tc.in), c)
		})
	}
}

func TestChar16FromRune(t *testing.T) {
	c, err := Char16FromRune('é')
	require.NoError(t, err)
	assert.Equal(t, 'é', c.Rune())
	assert.Equal(t, "é", c.String())

	_, err = Char16FromRune('😀')
	assert.ErrorIs(t, err, ErrInvalidChar)

	_, err = Char16FromRune(-1)
	assert.ErrorIs(t, err, ErrInvalidChar)
}

func TestChar8FromRune(t *testing.T) {
	c, err := Char8FromRune('ÿ')
	require.NoError(t, err)
	assert.Equal(t, Char8(0xFF), c)
	assert.Equal(t, "ÿ", c.String())

	_, err = Char8FromRune('Ā')
	assert.ErrorIs(t, err, ErrInvalidChar)
}
