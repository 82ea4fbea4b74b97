package store

import (
	"context"

	"restaurant-pos/internal/models"

	"gorm.io/gorm"
)

var orderPreloads = []string{"UserTable", "OrderItem", "OrderItem.MainCourse"}

func (s *Store) ListFinalOrders(ctx context.Context, page Page) ([]models.FinalOrder, int64, error) {
	var orders []models.FinalOrder
	total, err := s.list(ctx, &models.FinalOrder{}, &orders, "order_date_time DESC, id DESC", page, orderPreloads...)
	return orders, total, err
}

// GetFinalOrder loads the order with its table and menu item.
func (s *Store) GetFinalOrder(ctx context.Context, id uint) (*models.FinalOrder, error) {
	var o models.FinalOrder
	if err := s.get(ctx, &o, id, orderPreloads...); err != nil {
		return nil, err
	}
	return &o, nil
}

// SaveFinalOrder checks both references and writes the order. The total is
// filled in by the model's save hook inside the same transaction.
func (s *Store) SaveFinalOrder(ctx context.Context, o *models.FinalOrder) error {
	// drop rows loaded for display so they cannot shadow the ids
	o.UserTable = models.UserTable{}
	o.OrderItem = models.MenuItem{}
	return s.db(ctx).Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &models.UserTable{}, "user_table_id", o.UserTableID); err != nil {
			return err
		}
		if err := exists(tx, &models.MenuItem{}, "order_item_id", o.OrderItemID); err != nil {
			return err
		}
		return write(tx, o, o.ID == 0, "")
	})
}

func (s *Store) DeleteFinalOrder(ctx context.Context, id uint) error {
	return remove(s.db(ctx), &models.FinalOrder{}, id)
}
