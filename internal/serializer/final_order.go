package serializer

import (
	"time"

	"restaurant-pos/internal/models"
	"restaurant-pos/internal/util"
)

// FinalOrderInput takes references by id. A total_amount in the payload has
// no field here and is dropped during decoding.
type FinalOrderInput struct {
	UserTableID *uint `json:"user_table_id"`
	OrderItemID *uint `json:"order_item_id"`
	Quantity    *int  `json:"quantity"`
}

func (in *FinalOrderInput) Apply(o *models.FinalOrder, mode Mode) util.FieldErrors {
	errs := util.FieldErrors{}
	set(errs, "user_table_id", in.UserTableID, &o.UserTableID, mode)
	set(errs, "order_item_id", in.OrderItemID, &o.OrderItemID, mode)
	setDefault(in.Quantity, &o.Quantity, 1, mode)
	return finish(errs, o)
}

type FinalOrderResp struct {
	ID            uint          `json:"id"`
	UserTable     UserTableResp `json:"user_table"`
	OrderItem     MenuItemResp  `json:"order_item"`
	Quantity      int           `json:"quantity"`
	TotalAmount   string        `json:"total_amount"`
	OrderDateTime time.Time     `json:"order_date_time"`
}

// FinalOrder expects the table, item and item course to be loaded.
func FinalOrder(o *models.FinalOrder, tableOrderCount int64) FinalOrderResp {
	return FinalOrderResp{
		ID:            o.ID,
		UserTable:     UserTable(&o.UserTable, tableOrderCount),
		OrderItem:     MenuItem(&o.OrderItem),
		Quantity:      o.Quantity,
		TotalAmount:   Money(o.TotalAmount),
		OrderDateTime: o.OrderDateTime,
	}
}
