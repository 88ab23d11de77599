package helpers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUUIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	ids, err := ParseUUIDs([]string{a.String(), b.String()})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)

	ids, err = ParseUUIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = ParseUUIDs([]string{a.String(), "not-a-uuid"})
	assert.Error(t, err)
}
