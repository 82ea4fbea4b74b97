package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pay options accepted for a day book entry.
const (
	PayOptionPersonal = "personal"
	PayOptionSalary   = "salary"
	PayOptionRent     = "rent"
	PayOptionOffice   = "office"
)

// PayOptions lists the valid pay options in display order.
var PayOptions = []string{PayOptionPersonal, PayOptionSalary, PayOptionRent, PayOptionOffice}

// DayBook is one cash transaction in the ledger.
// BillDate is set once on insert and never rewritten.
type DayBook struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"size:200;not null" json:"name" validate:"required,max=200"`
	Purpose   string          `gorm:"type:text;not null" json:"purpose" validate:"required"`
	BillNo    int64           `gorm:"uniqueIndex;not null" json:"bill_no" validate:"min=1"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount" validate:"money"`
	PayOption string          `gorm:"size:20;not null;default:personal" json:"pay_option" validate:"required,oneof=personal salary rent office"`
	BillDate  time.Time       `gorm:"autoCreateTime;index" json:"bill_date"`
	UpdatedAt time.Time       `json:"-"`
}
