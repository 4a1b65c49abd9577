package parser

import (
	"errors"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNoMatch = errors.New("NO_MATCH")

// SMS holds the fields extracted from one bank notification line.
type SMS struct {
	CardID    string
	Timestamp time.Time
	Amount    decimal.Decimal
}

// Matches anywhere in the line: card token, one or more spaces, DD.MM.YY HH:MM,
// any non-digit run, the wage keyword, any non-digit run, then the first
// amount-like run of digits with an optional decimal part. Only wage credits
// match; transfers, purchases and balance lines must not.
var smsPattern = regexp.MustCompile(`([A-Z]{4}\d{4}) +(\d{2}\.\d{2}\.\d{2} \d{2}:\d{2})\D*зарплаты\D*(\d+\.*\d*)`)

const timestampLayout = "02.01.06 15:04"

// Parse extracts a wage-credit transaction from one line of SMS text.
// Any input that does not contain the full grammar yields ErrNoMatch; there is
// no partial result.
func Parse(text string) (SMS, error) {
	groups := smsPattern.FindStringSubmatch(text)
	if groups == nil {
		return SMS{}, ErrNoMatch
	}

	ts, err := time.ParseInLocation(timestampLayout, groups[2], time.Local)
	if err != nil {
		return SMS{}, ErrNoMatch
	}

	amount, err := decimal.NewFromString(trimTrailingDot(groups[3]))
	if err != nil {
		return SMS{}, ErrNoMatch
	}

	return SMS{CardID: groups[1], Timestamp: ts, Amount: amount}, nil
}

// The amount group permits a trailing bare dot ("12345."); decimal does not.
func trimTrailingDot(s string) string {
	if len(s) > 0 && s[len(s)-1] == '.' {
		return s[:len(s)-1]
	}
	return s
}
