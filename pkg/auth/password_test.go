package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	t.Run("successfully hashes password", func(t *testing.T) {
		password := "mysecretpassword"

		hash, err := HashPassword(password)

		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, password, hash)
		// Verify it's a valid bcrypt hash
		err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
		assert.NoError(t, err)
	})

	t.Run("generates different hashes for same password", func(t *testing.T) {
		password := "testpassword"

		hash1, err1 := HashPassword(password)
		hash2, err2 := HashPassword(password)

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, hash1, hash2, "bcrypt should generate unique salts")
	})

	t.Run("uses the configured work factor", func(t *testing.T) {
		hash, err := HashPassword("password123")

		require.NoError(t, err)
		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, hashCost, cost)
	})

	t.Run("returns error for password exceeding 72 bytes", func(t *testing.T) {
		// bcrypt has a 72-byte limit
		longPassword := string(make([]byte, 100))

		_, err := HashPassword(longPassword)

		assert.Error(t, err, "bcrypt should reject passwords over 72 bytes")
	})

	t.Run("hashes password with special characters", func(t *testing.T) {
		password := "p@$$w0rd!#$%^&*()_+-=[]{}|;':\",./<>?"

		hash, err := HashPassword(password)

		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
		assert.NoError(t, err)
	})
}

func TestCheckPassword(t *testing.T) {
	t.Run("returns nil for matching password", func(t *testing.T) {
		password := "correctpassword"
		hash, _ := HashPassword(password)

		err := CheckPassword(password, hash)

		assert.NoError(t, err)
	})

	t.Run("returns error for wrong password", func(t *testing.T) {
		password := "correctpassword"
		hash, _ := HashPassword(password)

		err := CheckPassword("wrongpassword", hash)

		assert.Error(t, err)
		assert.Equal(t, bcrypt.ErrMismatchedHashAndPassword, err)
	})

	t.Run("returns error for empty password against hash", func(t *testing.T) {
		hash, _ := HashPassword("somepassword")

		err := CheckPassword("", hash)

		assert.Error(t, err)
	})

	t.Run("returns error for invalid hash format", func(t *testing.T) {
		err := CheckPassword("password", "notavalidhash")

		assert.Error(t, err)
	})
}
