package service

import (
	"errors" // Error inspection
	"fmt"    // Error wrapping

	"gorm.io/gorm" // GORM ORM library
)

// ErrNotFound is returned when a record looked up by id, token or code does not exist.
var ErrNotFound = errors.New("entity not found")

// activeOnly is the soft-delete filter every list query applies.
const activeOnly = "is_delete = ?"

// Store is the CRUD pass-through shared by every entity service. GetByID never
// filters soft-deleted rows; the list helpers always do.
type Store[T any] struct {
	db *gorm.DB
}

// GetByID loads a single record, soft-deleted or not.
func (s Store[T]) GetByID(id uint) (*T, error) {
	var v T
	if err := s.db.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %T %d: %w", v, id, err)
	}
	return &v, nil
}

// Insert persists a new record and returns it with its generated id.
func (s Store[T]) Insert(v *T) (*T, error) {
	if err := s.db.Create(v).Error; err != nil { // Fills the primary key
		return nil, fmt.Errorf("insert %T: %w", v, err)
	}
	return v, nil
}

// Update overwrites every column of an existing record.
func (s Store[T]) Update(v *T) (*T, error) {
	if err := s.db.Save(v).Error; err != nil { // Writes all columns, zero values included
		return nil, fmt.Errorf("update %T: %w", v, err)
	}
	return v, nil
}

// listActive finds every record matching query that is not soft-deleted
func (s Store[T]) listActive(query string, args ...any) ([]T, error) {
	out := []T{} // Empty list rather than null
	if err := s.db.Where(query, args...).Where(activeOnly, false).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list %T: %w", out, err)
	}
	return out, nil
}

// countActive counts the records matching query that are not soft-deleted
func (s Store[T]) countActive(query string, args ...any) (int64, error) {
	var n int64
	if err := s.db.Model(new(T)).Where(query, args...).Where(activeOnly, false).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count %T: %w", new(T), err)
	}
	return n, nil
}

// findOne loads the first record matching query
func (s Store[T]) findOne(query string, args ...any) (*T, error) {
	var v T
	if err := s.db.Where(query, args...).First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %T: %w", v, err)
	}
	return &v, nil
}

// notFoundOr maps gorm's missing-record error to ErrNotFound and wraps anything else
func notFoundOr(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
