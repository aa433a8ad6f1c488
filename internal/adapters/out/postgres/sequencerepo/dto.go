// Package sequencerepo implements the named sequence counters that back
// order tracking numbers.
package sequencerepo

// CounterDTO stores the last issued value for a named monotonic counter.
// A counter row is created lazily on first allocation and lives forever.
type CounterDTO struct {
	Name  string `gorm:"primaryKey;size:64"`
	Value int64  `gorm:"not null"`
}

// TableName specifies the database table name for sequence counters.
func (CounterDTO) TableName() string {
	return "sequence_counters"
}
