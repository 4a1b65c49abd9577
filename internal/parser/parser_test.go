package parser_test

import (
	"testing"
	"time"

	"github.com/eugenezastrogin/sms-moneybot/internal/parser"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Run("parses a valid wage SMS", func(t *testing.T) {
		sms := "VISA1234 21.12.16 22:12 зачисление зарплаты 12345.57р Баланс: 16063.28р"

		got, err := parser.Parse(sms)

		assert.NoError(t, err)
		assert.Equal(t, "VISA1234", got.CardID)
		assert.Equal(t, time.Date(2016, 12, 21, 22, 12, 0, 0, time.Local), got.Timestamp)
		assert.True(t, got.Amount.Equal(decimal.RequireFromString("12345.57")),
			"amount = %s", got.Amount)
	})

	t.Run("amount decimals are optional", func(t *testing.T) {
		tests := []struct {
			name string
			text string
			want string
		}{
			{"integer amount", "MAST5678 01.02.17 09:30 зачисление зарплаты 12345р", "12345"},
			{"trailing bare dot", "MAST5678 01.02.17 09:30 зачисление зарплаты 12345.р", "12345"},
			{"fractional amount", "MAST5678 01.02.17 09:30 зачисление зарплаты 12345.5р", "12345.5"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := parser.Parse(tt.text)

				assert.NoError(t, err)
				assert.True(t, got.Amount.Equal(decimal.RequireFromString(tt.want)),
					"amount = %s, want %s", got.Amount, tt.want)
			})
		}
	})

	t.Run("grammar matches anywhere in the line", func(t *testing.T) {
		got, err := parser.Parse("prefix noise VISA1234 21.12.16 22:12 зачисление зарплаты 100 suffix")

		assert.NoError(t, err)
		assert.Equal(t, "VISA1234", got.CardID)
	})

	t.Run("returns NoMatch without the wage keyword", func(t *testing.T) {
		_, err := parser.Parse("VISA1234 21.12.16 22:12 покупка 500.00р Баланс: 100р")

		assert.ErrorIs(t, err, parser.ErrNoMatch)
	})

	t.Run("returns NoMatch on garbage", func(t *testing.T) {
		_, err := parser.Parse("dasfdsf")

		assert.ErrorIs(t, err, parser.ErrNoMatch)
	})

	t.Run("returns NoMatch without a card token", func(t *testing.T) {
		_, err := parser.Parse("21.12.16 22:12 зачисление зарплаты 12345.57р")

		assert.ErrorIs(t, err, parser.ErrNoMatch)
	})

	t.Run("returns NoMatch without a timestamp", func(t *testing.T) {
		_, err := parser.Parse("VISA1234 зачисление зарплаты 12345.57р")

		assert.ErrorIs(t, err, parser.ErrNoMatch)
	})
}
