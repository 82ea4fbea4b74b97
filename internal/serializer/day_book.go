package serializer

import (
	"time"

	"restaurant-pos/internal/models"
	"restaurant-pos/internal/util"

	"github.com/shopspring/decimal"
)

// BillDateLayout renders e.g. "December 06, 2024 02:30 PM".
const BillDateLayout = "January 02, 2006 03:04 PM"

type DayBookInput struct {
	Name      *string          `json:"name"`
	Purpose   *string          `json:"purpose"`
	BillNo    *int64           `json:"bill_no"`
	Amount    *decimal.Decimal `json:"amount"`
	PayOption *string          `json:"pay_option"`
}

func (in *DayBookInput) Apply(e *models.DayBook, mode Mode) util.FieldErrors {
	errs := util.FieldErrors{}
	set(errs, "name", in.Name, &e.Name, mode)
	set(errs, "purpose", in.Purpose, &e.Purpose, mode)
	set(errs, "bill_no", in.BillNo, &e.BillNo, mode)
	set(errs, "amount", in.Amount, &e.Amount, mode)
	setDefault(in.PayOption, &e.PayOption, models.PayOptionPersonal, mode)
	return finish(errs, e)
}

type DayBookResp struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Purpose       string    `json:"purpose"`
	BillNo        int64     `json:"bill_no"`
	Amount        string    `json:"amount"`
	PayOption     string    `json:"pay_option"`
	BillDate      time.Time `json:"bill_date"`
	FormattedDate string    `json:"formatted_date"`
}

// FormatBillDate renders t in UTC; the stored value is untouched.
func FormatBillDate(t time.Time) string {
	return t.UTC().Format(BillDateLayout)
}

func DayBook(e *models.DayBook) DayBookResp {
	return DayBookResp{
		ID:            e.ID,
		Name:          e.Name,
		Purpose:       e.Purpose,
		BillNo:        e.BillNo,
		Amount:        Money(e.Amount),
		PayOption:     e.PayOption,
		BillDate:      e.BillDate,
		FormattedDate: FormatBillDate(e.BillDate),
	}
}

// Money renders a decimal(10,2) value with exactly two places.
func Money(d decimal.Decimal) string {
	return d.StringFixed(util.MoneyDecimalPlaces)
}
