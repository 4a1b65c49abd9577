package mocks

import (
	"context"

	"github.com/eugenezastrogin/sms-moneybot/internal/service"
	"github.com/stretchr/testify/mock"
)

type TransactionService struct {
	mock.Mock
}

func (m *TransactionService) Submit(ctx context.Context, cmd service.SubmitTransactionCommand) (service.SubmitResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.SubmitResult), args.Error(1)
}

func (m *TransactionService) SubmitBatch(ctx context.Context, cmd service.SubmitBatchCommand) (service.BatchResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.BatchResult), args.Error(1)
}

func (m *TransactionService) ExportOwner(ctx context.Context, ownerID int64) ([]byte, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]byte), args.Error(1)
}
