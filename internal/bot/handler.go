package bot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/eugenezastrogin/sms-moneybot/internal/config"
	"github.com/eugenezastrogin/sms-moneybot/internal/period"
	"github.com/eugenezastrogin/sms-moneybot/internal/repository"
	"github.com/eugenezastrogin/sms-moneybot/internal/service"
	"github.com/eugenezastrogin/sms-moneybot/internal/validator"
	playground "github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Transport is the outbound half of the messaging collaborator.
type Transport interface {
	SendText(ownerID int64, text string) error
	SendFile(ownerID int64, filename string, data []byte) error
	PromptWithChoices(ownerID int64, prompt string, choices []Choice) error
}

type Choice struct {
	Label string
	Token string
}

const (
	msgGreeting       = "This bot parses and stores info about your monthly earnings!"
	msgSendSMS        = "Please, send SMS from the bank"
	msgUnableToParse  = "Unable to parse. Please, send valid SMS!"
	msgAdded          = "Transaction added successfully!"
	msgUnauthorized   = "You don't have access to this command."
	msgUnknownCommand = "Unknown command."
	msgUserNotFound   = "User not found."
	msgBadPeriod      = "Wrong period format. Use: /wage [month] [year]"
	msgGenericFailure = "Something went wrong, please try again later."
	msgCancelled      = "Cancelled."
)

// Handler routes inbound chat events to the services. All parsing and
// validation failures are converted to user-facing messages right here and
// never propagate.
type Handler struct {
	transport Transport
	txService service.TransactionService
	wage      service.WageService
	ledger    repository.LedgerRepository
	ignored   repository.IgnoredCardRepository
	notify    repository.NotifyRepository
	confirm   *ConfirmManager
	validate  *playground.Validate
	admins    map[int64]bool
	dbPath    string
	logger    *zap.Logger
}

func NewHandler(transport Transport, txService service.TransactionService, wage service.WageService,
	ledger repository.LedgerRepository, ignored repository.IgnoredCardRepository,
	notify repository.NotifyRepository, confirm *ConfirmManager,
	cfg *config.Config, logger *zap.Logger) (*Handler, error) {
	admins := make(map[int64]bool, len(cfg.Telegram.AdminIDs))
	for _, id := range cfg.Telegram.AdminIDs {
		admins[id] = true
	}

	validate := playground.New()
	if err := validator.Register(validate); err != nil {
		return nil, err
	}

	return &Handler{
		transport: transport,
		txService: txService,
		wage:      wage,
		ledger:    ledger,
		ignored:   ignored,
		notify:    notify,
		confirm:   confirm,
		validate:  validate,
		admins:    admins,
		dbPath:    cfg.Database.Path,
		logger:    logger,
	}, nil
}

// isAdmin is the capability check for admin-only operations. Refusals leak
// nothing about who the admins are.
func (h *Handler) isAdmin(ownerID int64) bool {
	return h.admins[ownerID]
}

func (h *Handler) OnStart(ownerID int64) {
	h.send(ownerID, msgGreeting)
	h.send(ownerID, msgSendSMS)
}

// OnText treats any non-command text as a bank SMS submission.
func (h *Handler) OnText(ctx context.Context, ownerID int64, senderName, text string) {
	result, err := h.txService.Submit(ctx, service.SubmitTransactionCommand{
		OwnerID:     ownerID,
		DisplayName: senderName,
		Text:        text,
	})
	if err != nil {
		h.send(ownerID, msgGenericFailure)
		return
	}

	switch result.Status {
	case service.SubmitRejected:
		h.send(ownerID, msgUnableToParse)

	case service.SubmitIgnored:
		h.send(ownerID, fmt.Sprintf("Card %s is on your ignore list, transaction was not saved.",
			result.Transaction.CardID))

	case service.SubmitAccepted:
		h.send(ownerID, msgAdded)
		h.send(ownerID, fmt.Sprintf("Your wage for %s is %s so far",
			formatWindow(result.Window), result.PeriodTotal.StringFixed(2)))
	}
}

// OnDocument ingests an uploaded CSV batch.
func (h *Handler) OnDocument(ctx context.Context, ownerID int64, senderName, filename string, data []byte) {
	if !strings.HasSuffix(filename, ".csv") {
		h.send(ownerID, "Only CSV is allowed!")
		return
	}

	h.send(ownerID, "CSV file found, commencing parsing")

	result, err := h.txService.SubmitBatch(ctx, service.SubmitBatchCommand{
		OwnerID:     ownerID,
		DisplayName: senderName,
		Lines:       bytes.NewReader(data),
	})
	if err != nil {
		h.send(ownerID, msgGenericFailure)
		return
	}

	h.send(ownerID, fmt.Sprintf("%d lines total, %d of them were parsed and added, %d ignored.",
		result.Total, result.Accepted, result.Ignored))
}

// OnWage answers /wage [month] [year] for the caller.
func (h *Handler) OnWage(ctx context.Context, ownerID int64, args []string) {
	report, err := h.wage.Query(ctx, service.QueryWageCommand{OwnerID: ownerID, Args: args, Now: time.Now()})
	h.sendWageReport(ownerID, report, err)
}

// OnWageFor answers /wagefor <name> [month] [year]; admin only.
func (h *Handler) OnWageFor(ctx context.Context, ownerID int64, args []string) {
	if !h.isAdmin(ownerID) {
		h.send(ownerID, msgUnauthorized)
		return
	}

	if len(args) == 0 {
		h.send(ownerID, "Usage: /wagefor <name> [month] [year]")
		return
	}

	report, err := h.wage.QueryByName(ctx, service.QueryWageByNameCommand{
		Name: args[0],
		Args: args[1:],
		Now:  time.Now(),
	})
	h.sendWageReport(ownerID, report, err)
}

func (h *Handler) sendWageReport(ownerID int64, report service.WageReport, err error) {
	if err != nil {
		switch {
		case errors.Is(err, period.ErrBadPeriodFormat):
			h.send(ownerID, msgBadPeriod)
		case errors.Is(err, repository.ErrOwnerNotFound):
			h.send(ownerID, msgUserNotFound)
		default:
			h.send(ownerID, msgGenericFailure)
		}
		return
	}

	if !report.Yearly {
		h.send(ownerID, fmt.Sprintf("Your wage for %s was %s",
			formatWindow(report.Period.Window), report.Period.Amount.StringFixed(2)))
		return
	}

	var sb strings.Builder
	for i, month := range report.Months {
		fmt.Fprintf(&sb, "%02d: %s\n", i+1, month.Amount.StringFixed(2))
	}
	fmt.Fprintf(&sb, "Year total: %s", report.Total.Amount.StringFixed(2))
	h.send(ownerID, sb.String())
}

// OnUserData sends the caller their own rows.
func (h *Handler) OnUserData(ctx context.Context, ownerID int64) {
	txs, err := h.ledger.DumpOwner(ctx, ownerID)
	if err != nil {
		h.send(ownerID, msgGenericFailure)
		return
	}

	if len(txs) == 0 {
		h.send(ownerID, "No records found.")
		return
	}

	var sb strings.Builder
	for _, tx := range txs {
		fmt.Fprintf(&sb, "%s %s %s\n", tx.CardID, tx.Timestamp.Format("02.01.06 15:04"),
			tx.Amount.StringFixed(2))
	}
	h.send(ownerID, sb.String())
}

func (h *Handler) OnUserInfo(ctx context.Context, ownerID int64) {
	count, err := h.ledger.CountByOwner(ctx, ownerID)
	if err != nil {
		h.send(ownerID, msgGenericFailure)
		return
	}

	h.send(ownerID, fmt.Sprintf("Your chat_id is %d, we have %d records concerning you", ownerID, count))
}

// OnExport sends the caller their rows as a CSV document.
func (h *Handler) OnExport(ctx context.Context, ownerID int64) {
	data, err := h.txService.ExportOwner(ctx, ownerID)
	if err != nil {
		h.send(ownerID, msgGenericFailure)
		return
	}

	if err := h.transport.SendFile(ownerID, "transactions.csv", data); err != nil {
		h.logger.Warn("Failed to send export", zap.Int64("ownerID", ownerID), zap.Error(err))
	}
}

// OnIgnore manages the caller's ignored-card list: add/remove/list.
func (h *Handler) OnIgnore(ctx context.Context, ownerID int64, args []string) {
	const usage = "Usage: /ignore add|remove <card>, /ignore list"

	if len(args) == 0 {
		h.send(ownerID, usage)
		return
	}

	switch args[0] {
	case "add", "remove":
		if len(args) != 2 || h.validate.Var(args[1], validator.CardIDTag) != nil {
			h.send(ownerID, usage)
			return
		}

		var err error
		if args[0] == "add" {
			err = h.ignored.Add(ctx, ownerID, args[1])
		} else {
			err = h.ignored.Remove(ctx, ownerID, args[1])
		}
		if err != nil {
			h.send(ownerID, msgGenericFailure)
			return
		}
		h.send(ownerID, "Done.")

	case "list":
		cards, err := h.ignored.List(ctx, ownerID)
		if err != nil {
			h.send(ownerID, msgGenericFailure)
			return
		}
		if len(cards) == 0 {
			h.send(ownerID, "Your ignore list is empty.")
			return
		}
		h.send(ownerID, strings.Join(cards, "\n"))

	default:
		h.send(ownerID, usage)
	}
}

// OnNotify manages the caller's fan-out list. Recipients are addressed by
// numeric id or by a display name resolved best-effort from history.
func (h *Handler) OnNotify(ctx context.Context, ownerID int64, args []string) {
	const usage = "Usage: /notify add|remove <id or name>, /notify list"

	if len(args) == 0 {
		h.send(ownerID, usage)
		return
	}

	switch args[0] {
	case "add", "remove":
		if len(args) != 2 {
			h.send(ownerID, usage)
			return
		}

		recipientID, err := h.resolveRecipient(ctx, args[1])
		if err != nil {
			if errors.Is(err, repository.ErrOwnerNotFound) {
				h.send(ownerID, msgUserNotFound)
				return
			}
			h.send(ownerID, msgGenericFailure)
			return
		}

		if args[0] == "add" {
			err = h.notify.Add(ctx, ownerID, recipientID)
		} else {
			err = h.notify.Remove(ctx, ownerID, recipientID)
		}
		if err != nil {
			h.send(ownerID, msgGenericFailure)
			return
		}
		h.send(ownerID, "Done.")

	case "list":
		recipients, err := h.notify.List(ctx, ownerID)
		if err != nil {
			h.send(ownerID, msgGenericFailure)
			return
		}
		if len(recipients) == 0 {
			h.send(ownerID, "Your notify list is empty.")
			return
		}

		var sb strings.Builder
		for _, id := range recipients {
			name, err := h.ledger.ResolveNameByOwner(ctx, id)
			if err != nil {
				fmt.Fprintf(&sb, "%d\n", id)
				continue
			}
			fmt.Fprintf(&sb, "%d (%s)\n", id, name)
		}
		h.send(ownerID, sb.String())

	default:
		h.send(ownerID, usage)
	}
}

func (h *Handler) resolveRecipient(ctx context.Context, token string) (int64, error) {
	if id, err := strconv.ParseInt(token, 10, 64); err == nil {
		return id, nil
	}
	return h.ledger.ResolveOwnerByName(ctx, token)
}

// OnDumpDB sends the whole store file; admin only.
func (h *Handler) OnDumpDB(ctx context.Context, ownerID int64) {
	if !h.isAdmin(ownerID) {
		h.send(ownerID, msgUnauthorized)
		return
	}

	data, err := os.ReadFile(h.dbPath)
	if err != nil {
		h.logger.Error("Failed to read database file", zap.Error(err))
		h.send(ownerID, msgGenericFailure)
		return
	}

	if err := h.transport.SendFile(ownerID, "data.db", data); err != nil {
		h.logger.Warn("Failed to send database dump", zap.Int64("ownerID", ownerID), zap.Error(err))
	}
}

// OnPurgeDB arms whole-store deletion; the destructive call itself only runs
// after the confirmation button round-trip. Admin only.
func (h *Handler) OnPurgeDB(ownerID int64) {
	if !h.isAdmin(ownerID) {
		h.send(ownerID, msgUnauthorized)
		return
	}

	h.confirm.Arm(ownerID, ActionPurgeAll)
	h.prompt(ownerID, "Are you sure you want to purge the entire database?", ActionPurgeAll)
}

// OnPurgeMy arms deletion of the caller's own records.
func (h *Handler) OnPurgeMy(ownerID int64) {
	h.confirm.Arm(ownerID, ActionPurgeOwn)
	h.prompt(ownerID, "Are you sure you want to delete all your records?", ActionPurgeOwn)
}

func (h *Handler) prompt(ownerID int64, text, token string) {
	choices := []Choice{
		{Label: "Yes, drop it!", Token: token},
		{Label: "No, wait!", Token: "CANCEL"},
	}
	if err := h.transport.PromptWithChoices(ownerID, text, choices); err != nil {
		h.logger.Warn("Failed to send confirmation prompt", zap.Int64("ownerID", ownerID), zap.Error(err))
	}
}

func (h *Handler) OnCancel(ownerID int64) {
	h.confirm.Cancel(ownerID)
	h.send(ownerID, msgCancelled)
}

// OnButton handles a confirmation button press. Stale or mismatched tokens
// cancel silently.
func (h *Handler) OnButton(ctx context.Context, ownerID int64, token string) {
	if token == "CANCEL" {
		h.confirm.Cancel(ownerID)
		h.send(ownerID, msgCancelled)
		return
	}

	if !h.confirm.Confirm(ownerID, token) {
		return
	}

	var err error
	switch token {
	case ActionPurgeAll:
		err = h.ledger.PurgeAll(ctx)
	case ActionPurgeOwn:
		err = h.ledger.PurgeOwner(ctx, ownerID)
	default:
		return
	}

	if err != nil {
		h.send(ownerID, msgGenericFailure)
		return
	}

	h.send(ownerID, "Purged.")
}

func (h *Handler) OnUnknown(ownerID int64) {
	h.send(ownerID, msgUnknownCommand)
}

func (h *Handler) send(ownerID int64, text string) {
	if err := h.transport.SendText(ownerID, text); err != nil {
		h.logger.Warn("Failed to send message", zap.Int64("ownerID", ownerID), zap.Error(err))
	}
}

func formatWindow(w period.Window) string {
	return fmt.Sprintf("[%s - %s)", w.Start.Format("02.01.2006"), w.End.Format("02.01.2006"))
}
