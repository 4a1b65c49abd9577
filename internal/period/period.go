package period

import (
	"errors"
	"strconv"
	"time"

	"github.com/eugenezastrogin/sms-moneybot/internal/validator"
)

var ErrBadPeriodFormat = errors.New("BAD_PERIOD_FORMAT")

// Window is a half-open date range [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Resolution is the outcome of resolving period arguments. A yearly resolution
// carries twelve calendar-month windows plus the whole-year window; every other
// form yields a single window.
type Resolution struct {
	Yearly bool
	Window Window
	Months []Window
	Total  Window
}

// Resolver computes pay-period windows anchored to a cutoff day-of-month.
// With a cutoff of 25, salary credited on the 24th of March belongs to the
// February period [25 Feb, 25 Mar).
type Resolver struct {
	cutoff int
}

func NewResolver(cutoffDay int) *Resolver {
	return &Resolver{cutoff: cutoffDay}
}

// Resolve maps zero, one, or two free-form tokens to pay-period windows.
// Zero tokens select the period containing now; a month token selects that
// month in now's year; a year token selects the whole-year breakdown; a
// month-year pair selects that month in that year. Anything else is
// ErrBadPeriodFormat. A token valid as both month and year counts as a month.
func (r *Resolver) Resolve(now time.Time, args []string) (Resolution, error) {
	switch len(args) {
	case 0:
		return Resolution{Window: r.Current(now)}, nil

	case 1:
		if validator.IsMonth(args[0]) {
			m, _ := strconv.Atoi(args[0])
			return Resolution{Window: r.Month(m, now.Year())}, nil
		}
		if validator.IsYear(args[0]) {
			y, _ := strconv.Atoi(args[0])
			months, total := r.Year(y)
			return Resolution{Yearly: true, Months: months, Total: total}, nil
		}
		return Resolution{}, ErrBadPeriodFormat

	case 2:
		if !validator.IsMonth(args[0]) || !validator.IsYear(args[1]) {
			return Resolution{}, ErrBadPeriodFormat
		}
		m, _ := strconv.Atoi(args[0])
		y, _ := strconv.Atoi(args[1])
		return Resolution{Window: r.Month(m, y)}, nil

	default:
		return Resolution{}, ErrBadPeriodFormat
	}
}

// Current picks the pay period containing now: past the cutoff day the window
// runs from this month's cutoff to next month's; on or before it, the previous
// full period applies.
func (r *Resolver) Current(now time.Time) Window {
	month := int(now.Month())
	if now.Day() <= r.cutoff {
		month--
	}
	return r.monthWindow(now.Year(), month)
}

// Month resolves an explicit month request to [cutoff of month-1, cutoff of
// month). December is the exception and maps to [cutoff Dec, cutoff Jan of
// year+1).
func (r *Resolver) Month(month, year int) Window {
	if month == 12 {
		return r.monthWindow(year, 12)
	}
	return r.monthWindow(year, month-1)
}

// Year returns the twelve calendar-month windows of year plus the whole-year
// window [cutoff Jan, cutoff Jan of year+1).
func (r *Resolver) Year(year int) ([]Window, Window) {
	months := make([]Window, 0, 12)
	for m := 1; m <= 12; m++ {
		months = append(months, r.monthWindow(year, m))
	}
	total := Window{Start: r.cutoffDate(year, 1), End: r.cutoffDate(year+1, 1)}
	return months, total
}

// monthWindow is [cutoff of month, cutoff of month+1). time.Date normalizes
// out-of-range months, so month 0 is December of the previous year and month
// 13 is January of the next.
func (r *Resolver) monthWindow(year, month int) Window {
	return Window{Start: r.cutoffDate(year, month), End: r.cutoffDate(year, month+1)}
}

func (r *Resolver) cutoffDate(year, month int) time.Time {
	return time.Date(year, time.Month(month), r.cutoff, 0, 0, 0, 0, time.Local)
}
