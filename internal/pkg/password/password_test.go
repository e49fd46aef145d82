//go:build unit

package password_test

import (
	"testing"

	"roomescape/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt(t *testing.T) {
	hasher := password.NewBcryptWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, hasher.Matches("password123", hash))
	assert.False(t, hasher.Matches("wrong", hash))
	assert.False(t, hasher.Matches("", hash))

	_, err = hasher.Hash("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestComparePassword(t *testing.T) {
	hash, err := password.NewBcryptWithCost(bcrypt.MinCost).Hash("secret")
	require.NoError(t, err)

	assert.NoError(t, password.ComparePassword(hash, "secret"))
	assert.ErrorIs(t, password.ComparePassword(hash, "nope"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword("", "secret"), password.ErrInvalidPassword)
}
