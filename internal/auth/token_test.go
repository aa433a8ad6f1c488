package auth_test

import (
	"testing"
	"time"

	"shop/internal/auth"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
	"shop/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndResolve(t *testing.T) {
	svc := auth.NewTokenService("test-secret")
	userID := kernel.NewUUID()

	token, err := svc.Issue(userID, user.RoleCustomer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := svc.Resolve(token)
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.True(t, identity.UserID.IsEqual(userID))
	assert.Equal(t, user.RoleCustomer, identity.Role)
	assert.False(t, identity.IsAdmin())
}

func TestTokenService_Resolve_Anonymous(t *testing.T) {
	svc := auth.NewTokenService("test-secret")

	identity, err := svc.Resolve("")

	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestTokenService_Resolve_Unauthorized(t *testing.T) {
	svc := auth.NewTokenService("test-secret")

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Resolve("not-a-token")

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other := auth.NewTokenService("other-secret")
		token, err := other.Issue(kernel.NewUUID(), user.RoleCustomer)
		require.NoError(t, err)

		_, err = svc.Resolve(token)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := auth.Claims{
			UserID: kernel.NewUUID().String(),
			Role:   user.RoleCustomer.String(),
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.Resolve(token)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("token with non-uuid subject", func(t *testing.T) {
		claims := auth.Claims{
			UserID: "42",
			Role:   user.RoleCustomer.String(),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.Resolve(token)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestIdentity_IsAdmin(t *testing.T) {
	assert.False(t, (*auth.Identity)(nil).IsAdmin())
	assert.True(t, (&auth.Identity{UserID: kernel.NewUUID(), Role: user.RoleAdmin}).IsAdmin())
}
