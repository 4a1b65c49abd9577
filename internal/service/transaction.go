package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/eugenezastrogin/sms-moneybot/internal/metrics"
	"github.com/eugenezastrogin/sms-moneybot/internal/model"
	"github.com/eugenezastrogin/sms-moneybot/internal/parser"
	"github.com/eugenezastrogin/sms-moneybot/internal/period"
	"github.com/eugenezastrogin/sms-moneybot/internal/repository"
	"go.uber.org/zap"
)

// Notifier delivers accepted-transaction notifications to subscribed
// recipients. The bot layer implements it over the messaging transport.
type Notifier interface {
	NotifyTransaction(ctx context.Context, recipientID int64, from string, tx model.Transaction) error
}

type TransactionService interface {
	Submit(ctx context.Context, cmd SubmitTransactionCommand) (SubmitResult, error)
	SubmitBatch(ctx context.Context, cmd SubmitBatchCommand) (BatchResult, error)
	ExportOwner(ctx context.Context, ownerID int64) ([]byte, error)
}

type transaction struct {
	ledger   repository.LedgerRepository
	ignored  repository.IgnoredCardRepository
	notify   repository.NotifyRepository
	resolver *period.Resolver
	notifier Notifier
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewTransactionService(ledger repository.LedgerRepository, ignored repository.IgnoredCardRepository,
	notify repository.NotifyRepository, resolver *period.Resolver, notifier Notifier,
	m *metrics.Metrics, logger *zap.Logger) TransactionService {
	return &transaction{ledger: ledger, ignored: ignored, notify: notify,
		resolver: resolver, notifier: notifier, metrics: m, logger: logger}
}

// Submit runs one line through the admission state machine:
// parse -> rejected, or ignored-card check -> ignored, or insert + fan-out +
// running pay-period total. Ignored-card transactions are never persisted.
func (t *transaction) Submit(ctx context.Context, cmd SubmitTransactionCommand) (SubmitResult, error) {
	sms, err := parser.Parse(cmd.Text)
	if err != nil {
		if t.metrics != nil {
			t.metrics.ParseFailures.Inc()
		}
		return SubmitResult{Status: SubmitRejected}, nil
	}

	tx := model.Transaction{
		OwnerID:     cmd.OwnerID,
		DisplayName: cmd.DisplayName,
		CardID:      sms.CardID,
		Timestamp:   sms.Timestamp,
		Amount:      sms.Amount,
	}

	suppressed, err := t.ignored.Contains(ctx, cmd.OwnerID, sms.CardID)
	if err != nil {
		t.logger.Error("Failed to check ignored cards",
			zap.Int64("ownerID", cmd.OwnerID),
			zap.Error(err))
		return SubmitResult{}, NewServiceError(ErrCodeDatabase, err)
	}

	if suppressed {
		if t.metrics != nil {
			t.metrics.TransactionsIgnored.Inc()
		}
		return SubmitResult{Status: SubmitIgnored, Transaction: tx}, nil
	}

	if err := t.ledger.Insert(ctx, &tx); err != nil {
		t.logger.Error("Failed to insert transaction",
			zap.Int64("ownerID", cmd.OwnerID),
			zap.String("cardID", tx.CardID),
			zap.Error(err))
		return SubmitResult{}, NewServiceError(ErrCodeDatabase, err)
	}

	if t.metrics != nil {
		t.metrics.TransactionsAccepted.Inc()
	}

	t.fanOut(ctx, cmd, tx)

	// The transaction's own timestamp picks the window, so a backdated SMS
	// reports the total of the period it actually belongs to.
	window := t.resolver.Current(tx.Timestamp)
	total, err := t.ledger.SumAmount(ctx, cmd.OwnerID, window.Start, window.End)
	if err != nil {
		t.logger.Error("Failed to sum pay period",
			zap.Int64("ownerID", cmd.OwnerID),
			zap.Error(err))
		return SubmitResult{}, NewServiceError(ErrCodeDatabase, err)
	}

	return SubmitResult{Status: SubmitAccepted, Transaction: tx, PeriodTotal: total, Window: window}, nil
}

func (t *transaction) fanOut(ctx context.Context, cmd SubmitTransactionCommand, tx model.Transaction) {
	recipients, err := t.notify.List(ctx, cmd.OwnerID)
	if err != nil {
		t.logger.Error("Failed to list notify subscriptions, skipping fan-out",
			zap.Int64("ownerID", cmd.OwnerID),
			zap.Error(err))
		return
	}

	for _, recipientID := range recipients {
		if err := t.notifier.NotifyTransaction(ctx, recipientID, cmd.DisplayName, tx); err != nil {
			t.logger.Warn("Failed to notify recipient",
				zap.Int64("recipientID", recipientID),
				zap.Error(err))
			continue
		}
		if t.metrics != nil {
			t.metrics.NotificationsSent.Inc()
		}
	}
}

// SubmitBatch applies the per-line state machine to every CSV line. The SMS
// text is the last comma-separated field; earlier fields belong to whatever
// exported the file. Counters: every line bumps Total, accepted lines bump
// Accepted, ignored-card lines bump Ignored, parse failures bump Total only.
// Each accepted line commits independently; an aborted batch keeps them.
func (t *transaction) SubmitBatch(ctx context.Context, cmd SubmitBatchCommand) (BatchResult, error) {
	var result BatchResult

	scanner := bufio.NewScanner(cmd.Lines)
	for scanner.Scan() {
		result.Total++
		if t.metrics != nil {
			t.metrics.BatchLinesTotal.Inc()
		}

		line := scanner.Text()
		text := line[strings.LastIndex(line, ",")+1:]

		lineResult, err := t.Submit(ctx, SubmitTransactionCommand{
			OwnerID:     cmd.OwnerID,
			DisplayName: cmd.DisplayName,
			Text:        text,
		})
		if err != nil {
			return result, err
		}

		switch lineResult.Status {
		case SubmitAccepted:
			result.Accepted++
		case SubmitIgnored:
			result.Ignored++
		}
	}

	if err := scanner.Err(); err != nil {
		return result, err
	}

	return result, nil
}

// ExportOwner renders the owner's rows as a CSV document.
func (t *transaction) ExportOwner(ctx context.Context, ownerID int64) ([]byte, error) {
	txs, err := t.ledger.DumpOwner(ctx, ownerID)
	if err != nil {
		t.logger.Error("Failed to dump owner data",
			zap.Int64("ownerID", ownerID),
			zap.Error(err))
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"owner_id", "display_name", "card_id", "timestamp", "amount"}); err != nil {
		return nil, err
	}

	for _, tx := range txs {
		record := []string{
			strconv.FormatInt(tx.OwnerID, 10),
			tx.DisplayName,
			tx.CardID,
			tx.Timestamp.Format("2006-01-02 15:04"),
			tx.Amount.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
