package util

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	// MoneyMaxDigits and MoneyDecimalPlaces describe a decimal(10,2) column.
	MoneyMaxDigits     = 10
	MoneyDecimalPlaces = 2

	MsgRequired = "This field is required."
)

// ASCII classes only: \w is [0-9A-Za-z_] and \d is [0-9].
var (
	wordRe    = regexp.MustCompile(`^\w+$`)
	contactRe = regexp.MustCompile(`^\d{10,15}$`)
)

// FieldErrors maps a JSON field name to its violation messages.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Merge copies messages for fields fe does not already report.
func (fe FieldErrors) Merge(other FieldErrors) {
	for field, msgs := range other {
		if _, ok := fe[field]; ok {
			continue
		}
		fe[field] = msgs
	}
}

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(fe[f], " "))
	}
	return strings.Join(parts, "; ")
}

// ValidateUsername checks a table username: word characters only.
func ValidateUsername(s string) error {
	if !wordRe.MatchString(s) {
		return fmt.Errorf("Username must be alphanumeric")
	}
	return nil
}

// ValidateContact checks a contact number of 10 to 15 digits.
func ValidateContact(s string) error {
	if !contactRe.MatchString(s) {
		return fmt.Errorf("Enter a valid contact number")
	}
	return nil
}

// ValidateMoney checks that d fits decimal(10,2).
func ValidateMoney(d decimal.Decimal) error {
	if !d.Equal(d.Round(MoneyDecimalPlaces)) {
		return fmt.Errorf("Ensure that there are no more than %d decimal places.", MoneyDecimalPlaces)
	}
	limit := decimal.New(1, MoneyMaxDigits-MoneyDecimalPlaces)
	if d.Abs().GreaterThanOrEqual(limit) {
		return fmt.Errorf("Ensure that there are no more than %d digits in total.", MoneyMaxDigits)
	}
	return nil
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator with the model rules registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()

		// report fields by their JSON name
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})

		// decimals are validated through their string form
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})

		_ = v.RegisterValidation("word", func(fl validator.FieldLevel) bool {
			return ValidateUsername(fl.Field().String()) == nil
		})
		_ = v.RegisterValidation("contact", func(fl validator.FieldLevel) bool {
			return ValidateContact(fl.Field().String()) == nil
		})
		_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
			d, err := decimal.NewFromString(fl.Field().String())
			return err == nil && ValidateMoney(d) == nil
		})
		_ = v.RegisterValidation("nonneg", func(fl validator.FieldLevel) bool {
			d, err := decimal.NewFromString(fl.Field().String())
			return err == nil && !d.IsNegative()
		})

		validate = v
	})
	return validate
}

// ValidateStruct runs the model rules on v and returns nil when it passes.
func ValidateStruct(v interface{}) FieldErrors {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"non_field_errors": {err.Error()}}
	}
	fe := FieldErrors{}
	for _, e := range verrs {
		fe.Add(e.Field(), message(e))
	}
	return fe
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return MsgRequired
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", e.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", e.Param())
	case "min":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", e.Param())
	case "nonneg":
		return "Ensure this value is greater than or equal to 0."
	case "word":
		return "Username must be alphanumeric"
	case "contact":
		return "Enter a valid contact number"
	case "http_url":
		return "Enter a valid URL."
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(e.Value()))
	case "money":
		return fmt.Sprintf("Ensure that there are no more than %d digits in total and %d decimal places.",
			MoneyMaxDigits, MoneyDecimalPlaces)
	}
	return fmt.Sprintf("Failed on the %q rule.", e.Tag())
}
