package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code, err := NewTicketCode()
		require.NoError(t, err)
		assert.Len(t, code, 16)
		for _, r := range code {
			assert.Contains(t, "0123456789ABCDEF", string(r))
		}
		_, dup := seen[code]
		assert.False(t, dup, "code %s repeated", code)
		seen[code] = struct{}{}
	}
}
