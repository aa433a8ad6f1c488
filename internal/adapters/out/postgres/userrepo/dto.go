// Package userrepo provides data transfer objects and mapping functions for
// user persistence, including the directory lookups consumed by order
// ownership reconciliation.
package userrepo

import (
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting users.
// The email column carries a unique index so duplicate registrations fail
// at the storage layer regardless of race conditions in the handler.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Role         string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		Role:         aggregate.Role().String(),
		PasswordHash: aggregate.PasswordHash(),
	}
}

// toDomain converts a database row back into a user aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Email, user.Role(dto.Role), dto.PasswordHash)
}
