package mocks

import (
	"context"

	"github.com/eugenezastrogin/sms-moneybot/internal/service"
	"github.com/stretchr/testify/mock"
)

type WageService struct {
	mock.Mock
}

func (m *WageService) Query(ctx context.Context, cmd service.QueryWageCommand) (service.WageReport, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.WageReport), args.Error(1)
}

func (m *WageService) QueryByName(ctx context.Context, cmd service.QueryWageByNameCommand) (service.WageReport, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.WageReport), args.Error(1)
}
