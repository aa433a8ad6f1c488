// Package auth implements the identity contract of the order subsystem:
// issuing bearer tokens at registration/login and resolving an optional
// credential to an authenticated identity or to anonymous.
package auth

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
	"shop/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL matches the one-week login session of the storefront.
const tokenTTL = 7 * 24 * time.Hour

// Claims carries the authenticated identity inside a JWT. The order
// subsystem treats UserID as opaque; Role exists only for the privileged
// gate on admin endpoints.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is a resolved, authenticated caller. The absence of an Identity
// (a nil pointer from Resolve) means the caller is anonymous, which is not
// an error.
type Identity struct {
	UserID kernel.UUID
	Role   user.Role
}

// IsAdmin reports whether the identity passes the privileged gate.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == user.RoleAdmin
}

// TokenService issues and verifies HS256-signed bearer tokens.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service with the given signing secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue creates a signed token for the given user.
func (s *TokenService) Issue(userID kernel.UUID, role user.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID.String(),
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Resolve maps an optional credential to an identity.
//
//   - Empty credential: returns (nil, nil) — the caller is anonymous.
//   - Malformed, forged, or expired credential: returns an UnauthorizedError.
//   - Valid credential: returns the embedded identity.
//
// Endpoint policy is the caller's business: order creation proceeds with a
// nil identity, list-my-orders rejects it.
func (s *TokenService) Resolve(credential string) (*Identity, error) {
	if credential == "" {
		return nil, nil
	}

	token, err := jwt.ParseWithClaims(credential, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errs.NewUnauthorizedErrorWithCause("token verification failed", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errs.NewUnauthorizedError("token claims are invalid")
	}

	userID, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return nil, errs.NewUnauthorizedErrorWithCause("token subject is invalid", err)
	}

	role := user.Role(claims.Role)
	if err = role.Validate(); err != nil {
		return nil, errs.NewUnauthorizedErrorWithCause("token role is invalid", err)
	}

	return &Identity{UserID: userID, Role: role}, nil
}
