package token

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{21}$`)

func TestGenerator_Generate(t *testing.T) {
	gen := NewGenerator()

	tok, err := gen.Generate()
	require.NoError(t, err)
	assert.Regexp(t, tokenPattern, tok)
}

func TestGenerator_TokensAreDistinct(t *testing.T) {
	gen := NewGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		tok, err := gen.Generate()
		require.NoError(t, err)
		_, dup := seen[tok]
		require.False(t, dup, "duplicate token %q", tok)
		seen[tok] = struct{}{}
	}
}
