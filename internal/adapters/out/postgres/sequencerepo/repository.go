package sequencerepo

import (
	"context"

	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSequenceGenerator implements ports.SequenceGenerator using a single
// upsert statement, so increment-and-read is one indivisible operation at
// the storage layer. Two concurrent allocators can never observe the same
// value; the database serializes them on the counter row.
//
// The generator always runs on the root connection, never inside a caller's
// transaction: an allocated value stays consumed even when the caller's
// surrounding work fails, which is exactly the accepted burned-number
// semantics of order creation.
type GormSequenceGenerator struct {
	db *gorm.DB
}

// NewGormSequenceGenerator creates a sequence generator on the given
// database connection.
func NewGormSequenceGenerator(db *gorm.DB) *GormSequenceGenerator {
	return &GormSequenceGenerator{db: db}
}

// NextValue atomically increments the named counter and returns the new
// value. The counter starts from 0, so the first allocation returns 1.
func (g *GormSequenceGenerator) NextValue(ctx context.Context, name string) (int64, error) {
	var value int64
	err := g.db.WithContext(ctx).Raw(`
		INSERT INTO sequence_counters (name, value)
		VALUES (?, 1)
		ON CONFLICT (name)
		DO UPDATE SET value = sequence_counters.value + 1
		RETURNING value
	`, name).Scan(&value).Error
	if err != nil {
		return 0, errs.NewStorageUnavailableError("allocate sequence value", err)
	}

	return value, nil
}
