package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem is a priced dish. It is removed together with its MainCourse.
type MenuItem struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	MainCourseID uint            `gorm:"index;not null" json:"main_course_id" validate:"required"`
	MainCourse   MainCourse      `gorm:"constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	Name         string          `gorm:"size:300;not null" json:"name" validate:"required,max=300"`
	Description  string          `gorm:"type:text;not null" json:"description" validate:"required"`
	ImageURL     string          `gorm:"size:200;not null" json:"image_url" validate:"required,max=200,http_url"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price" validate:"money,nonneg"`
	CreatedAt    time.Time       `json:"-"`
	UpdatedAt    time.Time       `json:"-"`
}
