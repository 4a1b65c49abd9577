package validator

import (
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
)

const cardIDRegex = `^[A-Z]{4}\d{4}$`

const (
	CardIDTag = "card_id"
	MonthTag  = "wage_month"
	YearTag   = "wage_year"
)

var cardIDPattern = regexp.MustCompile(cardIDRegex)

// IsCardID reports whether token is exactly four uppercase ASCII letters
// followed by four digits.
func IsCardID(token string) bool {
	return cardIDPattern.MatchString(token)
}

// IsMonth reports whether token parses as a calendar month, 1 through 12.
// Fails closed on non-numeric input.
func IsMonth(token string) bool {
	m, err := strconv.Atoi(token)
	if err != nil {
		return false
	}
	return m >= 1 && m <= 12
}

// IsYear reports whether token parses as a year strictly between 1999 and 2051.
func IsYear(token string) bool {
	y, err := strconv.Atoi(token)
	if err != nil {
		return false
	}
	return y > 1999 && y < 2051
}

var valid = map[string]func(fl validator.FieldLevel) bool{
	CardIDTag: func(fl validator.FieldLevel) bool { return IsCardID(fl.Field().String()) },
	MonthTag:  func(fl validator.FieldLevel) bool { return IsMonth(fl.Field().String()) },
	YearTag:   func(fl validator.FieldLevel) bool { return IsYear(fl.Field().String()) },
}

// Register installs the token validators as custom tags on v.
func Register(v *validator.Validate) error {
	for key, fn := range valid {
		if err := v.RegisterValidation(key, fn); err != nil {
			return err
		}
	}
	return nil
}
