package service

import (
	"context"
	"errors"

	"github.com/eugenezastrogin/sms-moneybot/internal/metrics"
	"github.com/eugenezastrogin/sms-moneybot/internal/period"
	"github.com/eugenezastrogin/sms-moneybot/internal/repository"
	"go.uber.org/zap"
)

type WageService interface {
	Query(ctx context.Context, cmd QueryWageCommand) (WageReport, error)
	QueryByName(ctx context.Context, cmd QueryWageByNameCommand) (WageReport, error)
}

type wage struct {
	ledger   repository.LedgerRepository
	resolver *period.Resolver
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewWageService(ledger repository.LedgerRepository, resolver *period.Resolver,
	m *metrics.Metrics, logger *zap.Logger) WageService {
	return &wage{ledger: ledger, resolver: resolver, metrics: m, logger: logger}
}

// Query resolves the period arguments and sums the owner's transactions.
// Bad arguments surface as period.ErrBadPeriodFormat; an empty window is a
// zero sum, not an error.
func (w *wage) Query(ctx context.Context, cmd QueryWageCommand) (WageReport, error) {
	res, err := w.resolver.Resolve(cmd.Now, cmd.Args)
	if err != nil {
		return WageReport{}, err
	}

	if !res.Yearly {
		w.metrics.RecordWageQuery("period")

		sum, err := w.ledger.SumAmount(ctx, cmd.OwnerID, res.Window.Start, res.Window.End)
		if err != nil {
			w.logger.Error("Failed to sum wage period",
				zap.Int64("ownerID", cmd.OwnerID),
				zap.Error(err))
			return WageReport{}, NewServiceError(ErrCodeDatabase, err)
		}

		return WageReport{Period: PeriodSum{Window: res.Window, Amount: sum}}, nil
	}

	w.metrics.RecordWageQuery("year")

	report := WageReport{Yearly: true, Months: make([]PeriodSum, 0, len(res.Months))}
	for _, win := range res.Months {
		sum, err := w.ledger.SumAmount(ctx, cmd.OwnerID, win.Start, win.End)
		if err != nil {
			w.logger.Error("Failed to sum wage month",
				zap.Int64("ownerID", cmd.OwnerID),
				zap.Error(err))
			return WageReport{}, NewServiceError(ErrCodeDatabase, err)
		}
		report.Months = append(report.Months, PeriodSum{Window: win, Amount: sum})
	}

	total, err := w.ledger.SumAmount(ctx, cmd.OwnerID, res.Total.Start, res.Total.End)
	if err != nil {
		w.logger.Error("Failed to sum wage year",
			zap.Int64("ownerID", cmd.OwnerID),
			zap.Error(err))
		return WageReport{}, NewServiceError(ErrCodeDatabase, err)
	}
	report.Total = PeriodSum{Window: res.Total, Amount: total}

	return report, nil
}

// QueryByName is the admin variant: the target owner is resolved from a
// display name via the best-effort history scan. Unknown names surface as
// repository.ErrOwnerNotFound.
func (w *wage) QueryByName(ctx context.Context, cmd QueryWageByNameCommand) (WageReport, error) {
	ownerID, err := w.ledger.ResolveOwnerByName(ctx, cmd.Name)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return WageReport{}, err
		}

		w.logger.Error("Failed to resolve owner by name",
			zap.String("name", cmd.Name),
			zap.Error(err))
		return WageReport{}, NewServiceError(ErrCodeDatabase, err)
	}

	return w.Query(ctx, QueryWageCommand{OwnerID: ownerID, Args: cmd.Args, Now: cmd.Now})
}
