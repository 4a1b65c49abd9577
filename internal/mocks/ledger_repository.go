package mocks

import (
	"context"
	"time"

	"github.com/eugenezastrogin/sms-moneybot/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type LedgerRepository struct {
	mock.Mock
}

func (m *LedgerRepository) Insert(ctx context.Context, tx *model.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *LedgerRepository) SumAmount(ctx context.Context, ownerID int64, start, end time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, start, end)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *LedgerRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *LedgerRepository) DumpAll(ctx context.Context) ([]model.Transaction, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *LedgerRepository) DumpOwner(ctx context.Context, ownerID int64) ([]model.Transaction, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *LedgerRepository) PurgeAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *LedgerRepository) PurgeOwner(ctx context.Context, ownerID int64) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

func (m *LedgerRepository) ResolveOwnerByName(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *LedgerRepository) ResolveNameByOwner(ctx context.Context, ownerID int64) (string, error) {
	args := m.Called(ctx, ownerID)
	return args.String(0), args.Error(1)
}
