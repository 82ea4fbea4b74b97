package store

import (
	"context"

	"restaurant-pos/internal/models"

	"gorm.io/gorm"
)

func (s *Store) ListMenuItems(ctx context.Context, page Page) ([]models.MenuItem, int64, error) {
	var items []models.MenuItem
	total, err := s.list(ctx, &models.MenuItem{}, &items, "main_course_id ASC, name ASC, id ASC", page, "MainCourse")
	return items, total, err
}

func (s *Store) GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, error) {
	var m models.MenuItem
	if err := s.get(ctx, &m, id, "MainCourse"); err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveMenuItem writes m after checking that its course exists. The order
// totals that reference m are left as they are: a total reflects the price
// at the time the order was last written.
func (s *Store) SaveMenuItem(ctx context.Context, m *models.MenuItem) error {
	m.MainCourse = models.MainCourse{}
	return s.db(ctx).Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &models.MainCourse{}, "main_course_id", m.MainCourseID); err != nil {
			return err
		}
		return write(tx, m, m.ID == 0, "")
	})
}

// DeleteMenuItem removes the item and every order for it.
func (s *Store) DeleteMenuItem(ctx context.Context, id uint) error {
	return s.db(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_item_id = ?", id).Delete(&models.FinalOrder{}).Error; err != nil {
			return err
		}
		return remove(tx, &models.MenuItem{}, id)
	})
}
