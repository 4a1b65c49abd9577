package period_test

import (
	"testing"
	"time"

	"github.com/eugenezastrogin/sms-moneybot/internal/period"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestResolver_Current(t *testing.T) {
	r := period.NewResolver(25)

	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "before the cutoff the previous full period applies",
			now:       date(2017, time.June, 10),
			wantStart: date(2017, time.May, 25),
			wantEnd:   date(2017, time.June, 25),
		},
		{
			name:      "past the cutoff the current period applies",
			now:       date(2017, time.June, 30),
			wantStart: date(2017, time.June, 25),
			wantEnd:   date(2017, time.July, 25),
		},
		{
			name:      "on the cutoff day the previous period still applies",
			now:       date(2017, time.June, 25),
			wantStart: date(2017, time.May, 25),
			wantEnd:   date(2017, time.June, 25),
		},
		{
			name:      "december period crosses into the next year",
			now:       date(2016, time.December, 26),
			wantStart: date(2016, time.December, 25),
			wantEnd:   date(2017, time.January, 25),
		},
		{
			name:      "january before the cutoff reaches back into december",
			now:       date(2017, time.January, 10),
			wantStart: date(2016, time.December, 25),
			wantEnd:   date(2017, time.January, 25),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := r.Current(tt.now)

			assert.Equal(t, tt.wantStart, w.Start)
			assert.Equal(t, tt.wantEnd, w.End)
		})
	}
}

func TestResolver_Resolve(t *testing.T) {
	r := period.NewResolver(25)
	now := date(2017, time.June, 10)

	t.Run("zero tokens use now", func(t *testing.T) {
		res, err := r.Resolve(now, nil)

		assert.NoError(t, err)
		assert.False(t, res.Yearly)
		assert.Equal(t, date(2017, time.May, 25), res.Window.Start)
		assert.Equal(t, date(2017, time.June, 25), res.Window.End)
	})

	t.Run("one month token selects that month in the current year", func(t *testing.T) {
		res, err := r.Resolve(now, []string{"6"})

		assert.NoError(t, err)
		assert.Equal(t, date(2017, time.May, 25), res.Window.Start)
		assert.Equal(t, date(2017, time.June, 25), res.Window.End)
	})

	t.Run("january reaches back into the previous year", func(t *testing.T) {
		res, err := r.Resolve(now, []string{"1"})

		assert.NoError(t, err)
		assert.Equal(t, date(2016, time.December, 25), res.Window.Start)
		assert.Equal(t, date(2017, time.January, 25), res.Window.End)
	})

	t.Run("december rolls forward into the next year", func(t *testing.T) {
		res, err := r.Resolve(now, []string{"12"})

		assert.NoError(t, err)
		assert.Equal(t, date(2017, time.December, 25), res.Window.Start)
		assert.Equal(t, date(2018, time.January, 25), res.Window.End)
	})

	t.Run("month and year tokens select that exact period", func(t *testing.T) {
		res, err := r.Resolve(now, []string{"3", "2016"})

		assert.NoError(t, err)
		assert.Equal(t, date(2016, time.February, 25), res.Window.Start)
		assert.Equal(t, date(2016, time.March, 25), res.Window.End)
	})

	t.Run("year token yields twelve windows plus the whole year", func(t *testing.T) {
		res, err := r.Resolve(now, []string{"2017"})

		assert.NoError(t, err)
		assert.True(t, res.Yearly)
		assert.Len(t, res.Months, 12)

		assert.Equal(t, date(2017, time.January, 25), res.Months[0].Start)
		assert.Equal(t, date(2017, time.February, 25), res.Months[0].End)
		assert.Equal(t, date(2017, time.December, 25), res.Months[11].Start)
		assert.Equal(t, date(2018, time.January, 25), res.Months[11].End)

		assert.Equal(t, date(2017, time.January, 25), res.Total.Start)
		assert.Equal(t, date(2018, time.January, 25), res.Total.End)
	})

	t.Run("months chain without gaps", func(t *testing.T) {
		res, err := r.Resolve(now, []string{"2017"})

		assert.NoError(t, err)
		for i := 1; i < len(res.Months); i++ {
			assert.Equal(t, res.Months[i-1].End, res.Months[i].Start)
		}
	})

	t.Run("bad tokens yield BadPeriodFormat", func(t *testing.T) {
		bad := [][]string{
			{"foo"},
			{"13"},
			{"0"},
			{"1999"},
			{"6", "17"},
			{"abc", "2017"},
			{"1", "2", "3"},
		}

		for _, args := range bad {
			_, err := r.Resolve(now, args)
			assert.ErrorIs(t, err, period.ErrBadPeriodFormat, "args %v", args)
		}
	})
}
