package serializer

import (
	"restaurant-pos/internal/models"
	"restaurant-pos/internal/util"
)

type UserTableInput struct {
	Username *string `json:"username"`
	Name     *string `json:"name"`
	TableNo  *int    `json:"table_no"`
	Contact  *string `json:"contact"`
}

func (in *UserTableInput) Apply(t *models.UserTable, mode Mode) util.FieldErrors {
	errs := util.FieldErrors{}
	set(errs, "username", in.Username, &t.Username, mode)
	set(errs, "name", in.Name, &t.Name, mode)
	set(errs, "table_no", in.TableNo, &t.TableNo, mode)
	set(errs, "contact", in.Contact, &t.Contact, mode)
	return finish(errs, t)
}

type UserTableResp struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	TableNo    int    `json:"table_no"`
	Contact    string `json:"contact"`
	OrderCount int64  `json:"order_count"`
}

func UserTable(t *models.UserTable, orderCount int64) UserTableResp {
	return UserTableResp{
		ID:         t.ID,
		Username:   t.Username,
		Name:       t.Name,
		TableNo:    t.TableNo,
		Contact:    t.Contact,
		OrderCount: orderCount,
	}
}
