package specification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by ID
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// ByIDs filters by a list of IDs
type ByIDs struct {
	IDs []uuid.UUID
}

func (s ByIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id IN ?", s.IDs)
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// Pagination
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}

// FilterBy Generic Filter
type FilterBy struct {
	Field string
	Value interface{}
}

func (s FilterBy) Apply(db *gorm.DB) *gorm.DB {
	query := fmt.Sprintf("%s = ?", s.Field)
	return db.Where(query, s.Value)
}

func Filter(field string, value interface{}) Specification {
	return FilterBy{Field: field, Value: value}
}

// ILike matches a field case-insensitively with surrounding wildcards.
type ILike struct {
	Field string
	Value string
}

func (s ILike) Apply(db *gorm.DB) *gorm.DB {
	query := fmt.Sprintf("%s ILIKE ?", s.Field)
	return db.Where(query, "%"+s.Value+"%")
}

// Between filters a column to a closed range.
type Between struct {
	Field string
	From  interface{}
	To    interface{}
}

func (s Between) Apply(db *gorm.DB) *gorm.DB {
	query := fmt.Sprintf("%s BETWEEN ? AND ?", s.Field)
	return db.Where(query, s.From, s.To)
}

// GreaterOrEqual filters a column to a lower bound.
type GreaterOrEqual struct {
	Field string
	Value interface{}
}

func (s GreaterOrEqual) Apply(db *gorm.DB) *gorm.DB {
	query := fmt.Sprintf("%s >= ?", s.Field)
	return db.Where(query, s.Value)
}

// LessOrEqual filters a column to an upper bound.
type LessOrEqual struct {
	Field string
	Value interface{}
}

func (s LessOrEqual) Apply(db *gorm.DB) *gorm.DB {
	query := fmt.Sprintf("%s <= ?", s.Field)
	return db.Where(query, s.Value)
}

// CreatedBetween restricts created_at to a window, used by statistics.
type CreatedBetween struct {
	From time.Time
	To   time.Time
}

func (s CreatedBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at BETWEEN ? AND ?", s.From, s.To)
}

// NotExpired keeps rows whose expires_at is still in the future.
type NotExpired struct {
	Now time.Time
}

func (s NotExpired) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expires_at > ?", s.Now)
}
