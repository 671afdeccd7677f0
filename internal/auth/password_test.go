package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret-passw0rd", 4)
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-passw0rd", hash)

	assert.NoError(t, ComparePassword(hash, "s3cret-passw0rd"))
	assert.Error(t, ComparePassword(hash, "wrong-password"))
}
