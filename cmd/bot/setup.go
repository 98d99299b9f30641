package main

import (
	"context"
	"log/slog"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
	tgbotapi "gopkg.in/telegram-bot-api.v4"

	"github.com/w32blaster/bot-current-weather/command"
	"github.com/w32blaster/bot-current-weather/storage"
	"github.com/w32blaster/bot-current-weather/structs"
)

const appName = "bot-current-weather"

func newLogger(opts *structs.Opts) *slog.Logger {
	level := parseLogLevel(opts.LogLevel)
	if opts.IsDebug {
		h := tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			AddSource:  true,
			TimeFormat: time.Kitchen,
		})
		return slog.New(h).With("app", appName)
	}

	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(h).With("app", appName)
}

// the value is already validated by Opts.Validate
func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupSentry without DSN the sentry client stays a no-op
func setupSentry(opts *structs.Opts) error {
	if opts.SentryDSN == "" {
		return nil
	}
	environment := "production"
	if opts.IsDebug {
		environment = "debug"
	}
	return sentry.Init(sentry.ClientOptions{
		Dsn:         opts.SentryDSN,
		Debug:       opts.IsDebug,
		Environment: environment,
	})
}

func openSettingsStore(opts *structs.Opts) (*storage.SettingsStore, error) {
	var (
		backend storage.Backend
		err     error
	)

	switch opts.StorageBackend {
	case structs.BackendValkey:
		backend, err = storage.DialValkey(opts.SettingsStore, opts.ValkeyKeyPrefix)
	default:
		backend, err = storage.OpenBolt(opts.SettingsStore)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "can't connect to %s", opts.SettingsStore)
	}

	return storage.NewSettingsStore(backend), nil
}

type dispatcher interface {
	Dispatch(ctx context.Context, ev structs.Event) error
}

// newUpdateHandler is the event-delivery boundary: every failure is logged and reported here,
// and the bot keeps accepting next updates
func newUpdateHandler(d dispatcher, logger *slog.Logger) command.UpdateHandler {
	return func(ctx context.Context, update tgbotapi.Update) {
		ev, ok := command.EventFromUpdate(update)
		if !ok {
			logger.Debug("update ignored", "update_id", update.UpdateID)
			return
		}

		defer func() {
			if r := recover(); r != nil {
				reportFailure(ev, errors.Errorf("panic: %v\n%s", r, debug.Stack()), logger)
			}
		}()

		if err := d.Dispatch(ctx, ev); err != nil {
			reportFailure(ev, err, logger)
		}
	}
}

func reportFailure(ev structs.Event, err error, logger *slog.Logger) {
	logger.Error("can't process the event",
		"event", ev.Kind.String(),
		"user_id", ev.UserID,
		"err", err,
	)

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetUser(sentry.User{
			ID: strconv.FormatInt(ev.UserID, 10),
		})
		scope.SetTag("action", ev.Kind.String())
		scope.SetExtra("chat-type", ev.ChatType)
		sentry.CaptureException(err)
	})
}
