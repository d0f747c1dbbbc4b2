package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDAcceptsPaddedUUID(t *testing.T) {
	id := uuid.NewString()

	parsed, err := parseID("user", "\t "+id+" \n")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseIDRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "abc", "123", "not-a-uuid", "00000000"} {
		_, err := parseID("user", raw)
		assert.Error(t, err, "expected %q to be rejected", raw)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "aliya@example.com", normalizeEmail("  Aliya@Example.COM "))
}
