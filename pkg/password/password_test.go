package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("RahasiaGym123")
	require.NoError(t, err)
	assert.NotEqual(t, "RahasiaGym123", hash)

	assert.True(t, CheckPasswordHash("RahasiaGym123", hash))
	assert.False(t, CheckPasswordHash("SalahPassword", hash))
}
