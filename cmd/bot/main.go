package main

import (
	"context"

	"github.com/eugenezastrogin/sms-moneybot/internal/api"
	"github.com/eugenezastrogin/sms-moneybot/internal/bot"
	"github.com/eugenezastrogin/sms-moneybot/internal/config"
	"github.com/eugenezastrogin/sms-moneybot/internal/database"
	"github.com/eugenezastrogin/sms-moneybot/internal/metrics"
	"github.com/eugenezastrogin/sms-moneybot/internal/period"
	"github.com/eugenezastrogin/sms-moneybot/internal/repository"
	"github.com/eugenezastrogin/sms-moneybot/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			metrics.NewMetrics,

			repository.NewLedgerRepository,
			repository.NewIgnoredCardRepository,
			repository.NewNotifyRepository,

			NewPeriodResolver,
			bot.NewBot,
			NewNotifier,
			NewTransport,
			service.NewTransactionService,
			service.NewWageService,

			bot.NewConfirmManager,
			bot.NewHandler,

			fiber.New,
			api.NewHandler,
		),
		fx.Invoke(startOpsServer, runBot),
	).Run()
}

func NewPeriodResolver(cfg *config.Config) *period.Resolver {
	return period.NewResolver(cfg.Wage.CutoffDay)
}

func NewNotifier(b *bot.Bot) service.Notifier {
	return b
}

func NewTransport(b *bot.Bot) bot.Transport {
	return b
}

func runBot(b *bot.Bot, h *bot.Handler, logger *zap.Logger, lc fx.Lifecycle) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := b.Run(appCtx, h); err != nil {
					logger.Error("bot loop exited", zap.Error(err))
				}
			}()

			logger.Info("bot started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping bot")
			cancel()
			return nil
		},
	})
}

func startOpsServer(app *fiber.App, handler *api.Handler, cfg *config.Config, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
