package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type NotifyRepository struct {
	mock.Mock
}

func (m *NotifyRepository) Add(ctx context.Context, ownerID, recipientID int64) error {
	args := m.Called(ctx, ownerID, recipientID)
	return args.Error(0)
}

func (m *NotifyRepository) Remove(ctx context.Context, ownerID, recipientID int64) error {
	args := m.Called(ctx, ownerID, recipientID)
	return args.Error(0)
}

func (m *NotifyRepository) List(ctx context.Context, ownerID int64) ([]int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]int64), args.Error(1)
}
