package store

import (
	"context"

	"restaurant-pos/internal/models"

	"gorm.io/gorm"
)

func (s *Store) ListMainCourses(ctx context.Context, page Page) ([]models.MainCourse, int64, error) {
	var courses []models.MainCourse
	total, err := s.list(ctx, &models.MainCourse{}, &courses, "main_name ASC, id ASC", page)
	return courses, total, err
}

func (s *Store) GetMainCourse(ctx context.Context, id uint) (*models.MainCourse, error) {
	var m models.MainCourse
	if err := s.get(ctx, &m, id); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) SaveMainCourse(ctx context.Context, m *models.MainCourse) error {
	return s.db(ctx).Transaction(func(tx *gorm.DB) error {
		if err := unique(tx, &models.MainCourse{}, "main_name", m.MainName, m.ID); err != nil {
			return err
		}
		return write(tx, m, m.ID == 0, "main_name")
	})
}

// DeleteMainCourse removes the course, its menu items and their orders.
func (s *Store) DeleteMainCourse(ctx context.Context, id uint) error {
	return s.db(ctx).Transaction(func(tx *gorm.DB) error {
		items := tx.Model(&models.MenuItem{}).Select("id").Where("main_course_id = ?", id)
		if err := tx.Where("order_item_id IN (?)", items).Delete(&models.FinalOrder{}).Error; err != nil {
			return err
		}
		if err := tx.Where("main_course_id = ?", id).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		return remove(tx, &models.MainCourse{}, id)
	})
}

// ItemCounts returns the number of menu items per course id.
func (s *Store) ItemCounts(ctx context.Context, courseIDs []uint) (map[uint]int64, error) {
	return s.countBy(ctx, &models.MenuItem{}, "main_course_id", courseIDs)
}
