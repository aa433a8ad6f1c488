package queries

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthenticateUserQueryHandler verifies login credentials against the user
// directory. An unknown email and a wrong password produce the same
// UnauthorizedError so the response never reveals which half failed.
type AuthenticateUserQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateUserQueryHandler creates a handler for login verification.
func NewAuthenticateUserQueryHandler(db *gorm.DB) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{db: db}
}

// Handle looks up the user by email and compares the password against the
// stored bcrypt hash.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context, query AuthenticateUserQuery,
) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	var id uuid.UUID
	var name, email, role, passwordHash string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			role,
			password_hash
		FROM users
		WHERE email = ?
	`, query.Email()).Row()

	err := row.Scan(&id, &name, &email, &role, &passwordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return AuthenticateUserQueryResponse{}, errs.NewUnauthorizedError("invalid email or password")
	}
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(query.Password())); err != nil {
		return AuthenticateUserQueryResponse{}, errs.NewUnauthorizedError("invalid email or password")
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	return AuthenticateUserQueryResponse{
		ID:    userID,
		Name:  name,
		Email: email,
		Role:  user.Role(role),
	}, nil
}
