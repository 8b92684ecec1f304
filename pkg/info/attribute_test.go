package info

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileAttribute_String(t *testing.T) {
	tests := []struct {
		attr FileAttribute
		want string
	}{
		{0, "none"},
		{ReadOnly, "read-only"},
		{ReadOnly | Hidden, "read-only|hidden"},
		{Directory | Archive, "directory|archive"},
		{ReadOnly | 0x100, "read-only|0x100"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.attr.String())
	}
}

func TestParseFileAttribute(t *testing.T) {
	a, err := ParseFileAttribute("read-only|hidden")
	require.NoError(t, err)
	assert.Equal(t, ReadOnly|Hidden, a)

	a, err = ParseFileAttribute("Directory, archive")
	require.NoError(t, err)
	assert.Equal(t, Directory|Archive, a)

	a, err = ParseFileAttribute("none")
	require.NoError(t, err)
	assert.Zero(t, a)

	_, err = ParseFileAttribute("sticky")
	assert.Error(t, err)
}

func TestFileAttribute_Has(t *testing.T) {
	a := ReadOnly | System
	assert.True(t, a.Has(ReadOnly))
	assert.True(t, a.Has(ReadOnly|System))
	assert.False(t, a.Has(ReadOnly|Hidden))
	assert.Zero(t, ValidAttr&Reserved)
}
