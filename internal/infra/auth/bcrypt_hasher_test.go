package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"pulse/config"
)

func createTestHasher() *bcryptHasher {
	cfg := &config.Config{}
	// MinCost keeps the test fast; production cost comes from config.
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := createTestHasher()

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Password123!", hash)

	assert.True(t, hasher.Check("Password123!", hash))
}

func TestBcryptHasher_Hash_SaltedHashesDiffer(t *testing.T) {
	hasher := createTestHasher()

	first, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	second, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	// A fresh salt per call means the two hashes never match, yet both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("Password123!", first))
	assert.True(t, hasher.Check("Password123!", second))
}

func TestBcryptHasher_Check_WrongPassword(t *testing.T) {
	hasher := createTestHasher()

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	assert.False(t, hasher.Check("Password124!", hash))
}

func TestBcryptHasher_Check_MalformedHash(t *testing.T) {
	hasher := createTestHasher()

	assert.False(t, hasher.Check("Password123!", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("Password123!", ""))
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	cfg := &config.Config{}

	hasher := NewBcryptHasher(cfg).(*bcryptHasher)

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
