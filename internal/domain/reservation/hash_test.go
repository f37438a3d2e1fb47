package reservation

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHash(t *testing.T) {
	hexRe := regexp.MustCompile(`^[0-9a-f]{32}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		h, err := NewHash()
		require.NoError(t, err)

		assert.Regexp(t, hexRe, h)
		assert.False(t, seen[h], "hash repeated: %s", h)
		seen[h] = true
	}
}
