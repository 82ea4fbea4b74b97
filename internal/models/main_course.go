package models

import "time"

// MainCourse groups menu items, e.g. "Appetizers".
type MainCourse struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MainName  string    `gorm:"size:200;uniqueIndex;not null" json:"main_name" validate:"required,max=200"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// String is the display form used when a menu item names its course.
func (m MainCourse) String() string {
	return m.MainName
}
