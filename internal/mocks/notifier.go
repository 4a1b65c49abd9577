package mocks

import (
	"context"

	"github.com/eugenezastrogin/sms-moneybot/internal/model"
	"github.com/stretchr/testify/mock"
)

type Notifier struct {
	mock.Mock
}

func (m *Notifier) NotifyTransaction(ctx context.Context, recipientID int64, from string, tx model.Transaction) error {
	args := m.Called(ctx, recipientID, from, tx)
	return args.Error(0)
}
