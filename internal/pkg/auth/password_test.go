package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cretpass")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cretpass", hash)

	assert.True(t, CheckPassword(hash, "s3cretpass"))
	assert.False(t, CheckPassword(hash, "wrongpass"))
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	first, err := HashPassword("s3cretpass")
	require.NoError(t, err)
	second, err := HashPassword("s3cretpass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
