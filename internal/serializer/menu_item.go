package serializer

import (
	"restaurant-pos/internal/models"
	"restaurant-pos/internal/util"

	"github.com/shopspring/decimal"
)

// ExpensiveThreshold is the price above which an item is flagged expensive.
var ExpensiveThreshold = decimal.RequireFromString("50.00")

type MenuItemInput struct {
	MainCourseID *uint            `json:"main_course_id"`
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	ImageURL     *string          `json:"image_url"`
	Price        *decimal.Decimal `json:"price"`
}

func (in *MenuItemInput) Apply(m *models.MenuItem, mode Mode) util.FieldErrors {
	errs := util.FieldErrors{}
	set(errs, "main_course_id", in.MainCourseID, &m.MainCourseID, mode)
	set(errs, "name", in.Name, &m.Name, mode)
	set(errs, "description", in.Description, &m.Description, mode)
	set(errs, "image_url", in.ImageURL, &m.ImageURL, mode)
	set(errs, "price", in.Price, &m.Price, mode)
	return finish(errs, m)
}

type MenuItemResp struct {
	ID           uint   `json:"id"`
	MainCourseID uint   `json:"main_course_id"`
	MainCourse   string `json:"main_course"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	Price        string `json:"price"`
	IsExpensive  bool   `json:"is_expensive"`
}

func IsExpensive(price decimal.Decimal) bool {
	return price.GreaterThan(ExpensiveThreshold)
}

// MenuItem expects m.MainCourse to be loaded.
func MenuItem(m *models.MenuItem) MenuItemResp {
	return MenuItemResp{
		ID:           m.ID,
		MainCourseID: m.MainCourseID,
		MainCourse:   m.MainCourse.String(),
		Name:         m.Name,
		Description:  m.Description,
		ImageURL:     m.ImageURL,
		Price:        Money(m.Price),
		IsExpensive:  IsExpensive(m.Price),
	}
}
