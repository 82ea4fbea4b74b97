package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FinalOrder is a quantity of one menu item ordered by one table.
// TotalAmount is derived in BeforeSave and never taken from input.
type FinalOrder struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserTableID   uint            `gorm:"index;not null" json:"user_table_id" validate:"required"`
	UserTable     UserTable       `gorm:"constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	OrderItemID   uint            `gorm:"index;not null" json:"order_item_id" validate:"required"`
	OrderItem     MenuItem        `gorm:"constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	Quantity      int             `gorm:"not null" json:"quantity" validate:"min=1"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount" validate:"-"`
	OrderDateTime time.Time       `gorm:"autoCreateTime;index" json:"order_date_time"`
	UpdatedAt     time.Time       `json:"-"`
}

// OrderTotal is quantity × price rounded to two places.
func OrderTotal(quantity int, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// BeforeSave runs inside the create/update transaction for every write of
// an order, so the total always reflects the referenced item's current price.
func (o *FinalOrder) BeforeSave(tx *gorm.DB) error {
	var item MenuItem
	err := tx.Session(&gorm.Session{NewDB: true}).
		Select("id", "price").
		First(&item, o.OrderItemID).Error
	if err != nil {
		return fmt.Errorf("resolve price of menu item %d: %w", o.OrderItemID, err)
	}
	o.TotalAmount = OrderTotal(o.Quantity, item.Price)
	return nil
}
