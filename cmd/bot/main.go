package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env"
	"github.com/getsentry/sentry-go"
	tgbotapi "gopkg.in/telegram-bot-api.v4"

	"github.com/w32blaster/bot-current-weather/command"
	"github.com/w32blaster/bot-current-weather/structs"
	"github.com/w32blaster/bot-current-weather/weather"
)

func main() {

	// get ENV VAR
	var opts = structs.Opts{}
	if err := env.Parse(&opts); err != nil {
		exitOnConfigError(&structs.ConfigurationError{Err: err})
	}
	if err := opts.Validate(); err != nil {
		exitOnConfigError(err)
	}

	logger := newLogger(&opts)
	slog.SetDefault(logger)

	if err := setupSentry(&opts); err != nil {
		logger.Warn("sentry is disabled", "err", err)
	}
	defer sentry.Flush(2 * time.Second)

	bot, err := tgbotapi.NewBotAPI(opts.BotToken)
	if err != nil {
		logger.Error("bot doesn't work", "err", err)
		os.Exit(1)
	}
	bot.Debug = opts.IsDebug

	store, err := openSettingsStore(&opts)
	if err != nil {
		logger.Error("can't open the settings store", "backend", opts.StorageBackend, "err", err)
		os.Exit(1)
	}
	defer store.Close()

	dispatcher := command.NewDispatcher(command.Deps{
		Weather:  weather.NewClient(opts.WeatherAPIURL, opts.WeatherAPIKey, &http.Client{}),
		Settings: store,
		Sender:   command.NewTelegramSender(bot, opts.AnimationsDir, logger),
		Logger:   logger,
	})
	handle := newUpdateHandler(dispatcher, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("authorized", "account", bot.Self.UserName, "delivery", opts.DeliveryMode, "storage", opts.StorageBackend)

	if opts.DeliveryMode == structs.DeliveryWebhook {
		err = runWebhook(ctx, &opts, handle, logger)
	} else {
		err = runPolling(ctx, bot, handle)
	}
	if err != nil {
		logger.Error("delivery stopped", "err", err)
		os.Exit(1)
	}

	logger.Info("shutting down")
}

// runPolling handles the updates one by one, the next one waits until the previous is done
func runPolling(ctx context.Context, bot *tgbotapi.BotAPI, handle command.UpdateHandler) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates, err := bot.GetUpdatesChan(u)
	if err != nil {
		return err
	}
	defer bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-updates:
			handle(ctx, update)
		}
	}
}

func runWebhook(ctx context.Context, opts *structs.Opts, handle command.UpdateHandler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler:           command.NewWebhookRouter(opts.BotToken, handle, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		errs <- srv.ListenAndServe()
	}()
	logger.Info("listening for webhook", "addr", srv.Addr)

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func exitOnConfigError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err.Error())
	os.Exit(1)
}
