package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type IgnoredCardRepository struct {
	mock.Mock
}

func (m *IgnoredCardRepository) Add(ctx context.Context, ownerID int64, cardID string) error {
	args := m.Called(ctx, ownerID, cardID)
	return args.Error(0)
}

func (m *IgnoredCardRepository) Remove(ctx context.Context, ownerID int64, cardID string) error {
	args := m.Called(ctx, ownerID, cardID)
	return args.Error(0)
}

func (m *IgnoredCardRepository) List(ctx context.Context, ownerID int64) ([]string, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *IgnoredCardRepository) Contains(ctx context.Context, ownerID int64, cardID string) (bool, error) {
	args := m.Called(ctx, ownerID, cardID)
	return args.Bool(0), args.Error(1)
}
