package models

import "time"

// UserTable is a seated table, identified by a unique username.
type UserTable struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:200;uniqueIndex;not null" json:"username" validate:"required,max=200,word"`
	Name      string    `gorm:"size:200;not null" json:"name" validate:"required,max=200"`
	TableNo   int       `gorm:"index;not null" json:"table_no" validate:"min=1,max=100"`
	Contact   string    `gorm:"size:15;not null" json:"contact" validate:"required,contact"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
