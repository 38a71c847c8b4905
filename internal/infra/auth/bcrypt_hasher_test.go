package auth

import (
	"testing"

	"lokabumi/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:    4,
			SessionSecret: "unit-test-session-secret",
		},
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(testAuthConfig())

	hash, err := hasher.Hash("correct-horse-9")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse-9", hash)

	assert.True(t, hasher.Check("correct-horse-9", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasher(testAuthConfig())

	first, err := hasher.Hash("correct-horse-9")
	require.NoError(t, err)
	second, err := hasher.Hash("correct-horse-9")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
