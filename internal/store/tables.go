package store

import (
	"context"

	"restaurant-pos/internal/models"

	"gorm.io/gorm"
)

func (s *Store) ListTables(ctx context.Context, page Page) ([]models.UserTable, int64, error) {
	var tables []models.UserTable
	total, err := s.list(ctx, &models.UserTable{}, &tables, "table_no ASC, id ASC", page)
	return tables, total, err
}

func (s *Store) GetTable(ctx context.Context, id uint) (*models.UserTable, error) {
	var t models.UserTable
	if err := s.get(ctx, &t, id); err != nil {
		return nil, err
	}
	return &t, nil
}

// SaveTable inserts t when it has no ID, otherwise replaces the stored row.
func (s *Store) SaveTable(ctx context.Context, t *models.UserTable) error {
	return s.db(ctx).Transaction(func(tx *gorm.DB) error {
		if err := unique(tx, &models.UserTable{}, "username", t.Username, t.ID); err != nil {
			return err
		}
		return write(tx, t, t.ID == 0, "username")
	})
}

// DeleteTable removes the table and every order placed from it.
func (s *Store) DeleteTable(ctx context.Context, id uint) error {
	return s.db(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_table_id = ?", id).Delete(&models.FinalOrder{}).Error; err != nil {
			return err
		}
		return remove(tx, &models.UserTable{}, id)
	})
}

// OrderCounts returns the number of orders per table id.
func (s *Store) OrderCounts(ctx context.Context, tableIDs []uint) (map[uint]int64, error) {
	return s.countBy(ctx, &models.FinalOrder{}, "user_table_id", tableIDs)
}
