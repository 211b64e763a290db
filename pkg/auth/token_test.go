package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoflow/autoflow/pkg/model"
)

func testUser() *model.User {
	return &model.User{
		ID:    uuid.New(),
		Email: "ada@example.com",
		Name:  "Ada",
		Role:  model.RoleAdmin,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager([]byte("test-secret"), time.Hour)
	user := testUser()

	token, err := manager.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "autoflow", claims.Issuer)
}

func TestExpiredTokenRejected(t *testing.T) {
	manager := NewTokenManager([]byte("test-secret"), -time.Minute)

	token, err := manager.Generate(testUser())
	require.NoError(t, err)

	_, err = manager.Validate(token)
	assert.Error(t, err)
}

func TestWrongKeyRejected(t *testing.T) {
	manager := NewTokenManager([]byte("test-secret"), time.Hour)
	other := NewTokenManager([]byte("other-secret"), time.Hour)

	token, err := manager.Generate(testUser())
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	manager := NewTokenManager([]byte("test-secret"), time.Hour)

	_, err := manager.Validate("not-a-token")
	assert.Error(t, err)
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPassword(hash, "hunter22"))
	assert.False(t, CheckPassword(hash, "hunter23"))
	assert.False(t, CheckPassword("", "hunter22"))
}
