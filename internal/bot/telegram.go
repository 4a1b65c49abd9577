package bot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/eugenezastrogin/sms-moneybot/internal/config"
	"github.com/eugenezastrogin/sms-moneybot/internal/model"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Bot binds the handler to the Telegram long-poll loop. It is both the
// outbound Transport for the handler and the Notifier for the transaction
// service.
type Bot struct {
	api    *tgbotapi.BotAPI
	logger *zap.Logger
}

func NewBot(cfg *config.Config, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}

	logger.Info("Authorized on telegram", zap.String("username", api.Self.UserName))

	return &Bot{api: api, logger: logger}, nil
}

// Run consumes updates until ctx is cancelled. One update is handled at a
// time; long operations block the loop, which is the intended concurrency
// model.
func (b *Bot) Run(ctx context.Context, h *Handler) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.dispatch(ctx, update, h)
		}
	}
}

func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update, h *Handler) {
	if update.CallbackQuery != nil {
		cq := update.CallbackQuery
		if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
			b.logger.Warn("Failed to answer callback", zap.Error(err))
		}
		if cq.Message != nil {
			h.OnButton(ctx, cq.Message.Chat.ID, cq.Data)
		}
		return
	}

	msg := update.Message
	if msg == nil {
		return
	}

	ownerID := msg.Chat.ID
	name := senderName(msg)

	if msg.Document != nil {
		data, err := b.download(msg.Document.FileID)
		if err != nil {
			b.logger.Error("Failed to download document", zap.Error(err))
			if err := b.SendText(ownerID, msgGenericFailure); err != nil {
				b.logger.Warn("Failed to send message", zap.Error(err))
			}
			return
		}
		h.OnDocument(ctx, ownerID, name, msg.Document.FileName, data)
		return
	}

	if !msg.IsCommand() {
		if msg.Text != "" {
			h.OnText(ctx, ownerID, name, msg.Text)
		}
		return
	}

	args := strings.Fields(msg.CommandArguments())

	switch msg.Command() {
	case "start":
		h.OnStart(ownerID)
	case "wage":
		h.OnWage(ctx, ownerID, args)
	case "wagefor":
		h.OnWageFor(ctx, ownerID, args)
	case "userdata":
		h.OnUserData(ctx, ownerID)
	case "userinfo":
		h.OnUserInfo(ctx, ownerID)
	case "export":
		h.OnExport(ctx, ownerID)
	case "ignore":
		h.OnIgnore(ctx, ownerID, args)
	case "notify":
		h.OnNotify(ctx, ownerID, args)
	case "dumpdb":
		h.OnDumpDB(ctx, ownerID)
	case "purgedb":
		h.OnPurgeDB(ownerID)
	case "purgemy":
		h.OnPurgeMy(ownerID)
	case "cancel":
		h.OnCancel(ownerID)
	default:
		h.OnUnknown(ownerID)
	}
}

func senderName(msg *tgbotapi.Message) string {
	if msg.From == nil {
		return ""
	}
	if msg.From.UserName != "" {
		return msg.From.UserName
	}
	return msg.From.FirstName
}

func (b *Bot) download(fileID string) ([]byte, error) {
	url, err := b.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, err
	}

	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("file download failed: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

func (b *Bot) SendText(ownerID int64, text string) error {
	_, err := b.api.Send(tgbotapi.NewMessage(ownerID, text))
	return err
}

func (b *Bot) SendFile(ownerID int64, filename string, data []byte) error {
	doc := tgbotapi.NewDocument(ownerID, tgbotapi.FileBytes{Name: filename, Bytes: data})
	_, err := b.api.Send(doc)
	return err
}

func (b *Bot) PromptWithChoices(ownerID int64, prompt string, choices []Choice) error {
	buttons := make([][]tgbotapi.InlineKeyboardButton, 0, len(choices))
	for _, choice := range choices {
		buttons = append(buttons,
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(choice.Label, choice.Token)))
	}

	msg := tgbotapi.NewMessage(ownerID, prompt)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(buttons...)

	_, err := b.api.Send(msg)
	return err
}

// NotifyTransaction implements service.Notifier.
func (b *Bot) NotifyTransaction(ctx context.Context, recipientID int64, from string, tx model.Transaction) error {
	text := fmt.Sprintf("%s got a wage credit of %s (card %s, %s)",
		from, tx.Amount.StringFixed(2), tx.CardID, tx.Timestamp.Format("02.01.06 15:04"))
	return b.SendText(recipientID, text)
}
