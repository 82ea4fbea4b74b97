// Package store persists the POS entities and owns the write-time rules
// that need the database: uniqueness, reference checks and cascades.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("already exists")
)

// FieldError ties a store error to the payload field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Page bounds a list query. A non-positive Limit returns every row.
type Page struct {
	Offset int
	Limit  int
}

func (p Page) apply(db *gorm.DB) *gorm.DB {
	if p.Limit <= 0 {
		return db
	}
	return db.Offset(p.Offset).Limit(p.Limit)
}

type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) db(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx)
}

// list counts the rows of model and loads one page of them into dst.
func (s *Store) list(ctx context.Context, model, dst interface{}, order string, page Page, preloads ...string) (int64, error) {
	var total int64
	if err := s.db(ctx).Model(model).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	q := s.db(ctx).Order(order)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if err := page.apply(q).Find(dst).Error; err != nil {
		return 0, fmt.Errorf("list: %w", err)
	}
	return total, nil
}

func (s *Store) get(ctx context.Context, dst interface{}, id uint, preloads ...string) error {
	q := s.db(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if err := q.First(dst, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get %d: %w", id, err)
	}
	return nil
}

// unique fails with a FieldError when another row already holds value.
func unique(tx *gorm.DB, model interface{}, column string, value interface{}, id uint) error {
	var n int64
	q := tx.Model(model).Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	if id != 0 {
		q = q.Where("id <> ?", id)
	}
	if err := q.Count(&n).Error; err != nil {
		return fmt.Errorf("check %s: %w", column, err)
	}
	if n > 0 {
		return &FieldError{Field: column, Err: ErrDuplicate}
	}
	return nil
}

// exists fails with a FieldError naming field when no row of model has id.
func exists(tx *gorm.DB, model interface{}, field string, id uint) error {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return fmt.Errorf("check %s: %w", field, err)
	}
	if n == 0 {
		return &FieldError{Field: field, Err: ErrNotFound}
	}
	return nil
}

// write inserts value when isNew, otherwise rewrites every column of the
// existing row and fails with ErrNotFound when it is gone.
// Associations are never written through the parent.
func write(tx *gorm.DB, value interface{}, isNew bool, uniqueField string) error {
	var err error
	if isNew {
		err = tx.Omit(clause.Associations).Create(value).Error
	} else {
		res := tx.Model(value).Select("*").Omit(clause.Associations).Updates(value)
		if err = res.Error; err == nil && res.RowsAffected == 0 {
			return ErrNotFound
		}
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) && uniqueField != "" {
			return &FieldError{Field: uniqueField, Err: ErrDuplicate}
		}
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// remove deletes the row id of model, failing with ErrNotFound when absent.
func remove(tx *gorm.DB, model interface{}, id uint) error {
	res := tx.Delete(model, id)
	if res.Error != nil {
		return fmt.Errorf("delete %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// countBy returns the number of rows of model per value of column,
// restricted to the given ids.
func (s *Store) countBy(ctx context.Context, model interface{}, column string, ids []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}
	var rows []struct {
		RefID uint
		N     int64
	}
	err := s.db(ctx).Model(model).
		Select(column+" AS ref_id, COUNT(*) AS n").
		Where(column+" IN ?", ids).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count by %s: %w", column, err)
	}
	for _, r := range rows {
		counts[r.RefID] = r.N
	}
	return counts, nil
}
