package store

import (
	"context"

	"restaurant-pos/internal/models"

	"gorm.io/gorm"
)

func (s *Store) ListDayBooks(ctx context.Context, page Page) ([]models.DayBook, int64, error) {
	var entries []models.DayBook
	total, err := s.list(ctx, &models.DayBook{}, &entries, "bill_date DESC, id DESC", page)
	return entries, total, err
}

func (s *Store) GetDayBook(ctx context.Context, id uint) (*models.DayBook, error) {
	var e models.DayBook
	if err := s.get(ctx, &e, id); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) SaveDayBook(ctx context.Context, e *models.DayBook) error {
	return s.db(ctx).Transaction(func(tx *gorm.DB) error {
		if err := unique(tx, &models.DayBook{}, "bill_no", e.BillNo, e.ID); err != nil {
			return err
		}
		return write(tx, e, e.ID == 0, "bill_no")
	})
}

func (s *Store) DeleteDayBook(ctx context.Context, id uint) error {
	return remove(s.db(ctx), &models.DayBook{}, id)
}
