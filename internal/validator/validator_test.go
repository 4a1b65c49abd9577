package validator_test

import (
	"testing"

	"github.com/eugenezastrogin/sms-moneybot/internal/validator"
	playground "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestIsCardID(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"VISA1234", true},
		{"MAST0001", true},
		{"visa1234", false},
		{"VISA123", false},
		{"VISA12345", false},
		{"VIS1234", false},
		{" VISA1234", false},
		{"VISA1234 ", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validator.IsCardID(tt.token), "token %q", tt.token)
	}
}

func TestIsMonth(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"1", true},
		{"6", true},
		{"12", true},
		{"0", false},
		{"13", false},
		{"31", false},
		{"-1", false},
		{"abc", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validator.IsMonth(tt.token), "token %q", tt.token)
	}
}

func TestIsYear(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"2000", true},
		{"2017", true},
		{"2050", true},
		{"1999", false},
		{"2051", false},
		{"17", false},
		{"xyz", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validator.IsYear(tt.token), "token %q", tt.token)
	}
}

func TestRegister(t *testing.T) {
	v := playground.New()

	assert.NoError(t, validator.Register(v))

	assert.NoError(t, v.Var("VISA1234", validator.CardIDTag))
	assert.Error(t, v.Var("nope", validator.CardIDTag))
	assert.NoError(t, v.Var("6", validator.MonthTag))
	assert.Error(t, v.Var("13", validator.MonthTag))
	assert.NoError(t, v.Var("2017", validator.YearTag))
	assert.Error(t, v.Var("1999", validator.YearTag))
}
