package cmd

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	sfmt "github.com/samber/slog-formatter"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"go.uber.org/fx"

	"github.com/mrhaji1999/vandapay-sub001/config"
	"github.com/mrhaji1999/vandapay-sub001/infra/client/rest"
	"github.com/mrhaji1999/vandapay-sub001/internal/client/vandapay"
	"github.com/mrhaji1999/vandapay-sub001/internal/session"
)

func ProvideLogger(cfg *config.Config, lc fx.Lifecycle) (*slog.Logger, error) {
	logSettings := cfg.Log

	if !logSettings.Console && logSettings.File == "" {
		logSettings.Console = true
	}

	level := parseLevel(logSettings.Level)
	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handlers []slog.Handler

	if logSettings.Console {
		var h slog.Handler
		if logSettings.JSON {
			h = slog.NewJSONHandler(os.Stderr, opts)
		} else {
			h = console(os.Stderr, level)
		}
		handlers = append(handlers, h)
	}

	// File Handler
	if logSettings.File != "" {
		f, err := os.OpenFile(logSettings.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return f.Close()
			},
		})

		var h slog.Handler
		if logSettings.JSON {
			h = slog.NewJSONHandler(f, opts)
		} else {
			h = slog.NewTextHandler(f, opts)
		}
		handlers = append(handlers, h)
	}

	var finalHandler slog.Handler
	if len(handlers) == 0 {
		finalHandler = slog.NewTextHandler(os.Stderr, opts)
	} else if len(handlers) == 1 {
		finalHandler = handlers[0]
	} else {
		finalHandler = MultiHandler(handlers...)
	}

	logger := slog.New(finalHandler)
	slog.SetDefault(logger)

	return logger, nil
}

func parseLevel(input string) (level slog.Level) {
	err := level.UnmarshalText([]byte(input))
	if err != nil {
		// default: info
		level = slog.LevelInfo
	}
	return // level
}

func console(output *os.File, verbose slog.Level) slog.Handler {
	colorize, _ := strconv.ParseBool(
		os.Getenv("VANDAPAY_LOG_COLOR"),
	)
	if colorize {
		colorize = isatty.IsTerminal(
			output.Fd(),
		)
	}
	return sfmt.NewFormatterHandler(
		sfmt.ErrorFormatter("err"),
		sfmt.ErrorFormatter("error"),
	)(
		tint.NewHandler(output, &tint.Options{
			AddSource:  false,
			Level:      verbose.Level(),
			TimeFormat: "Jan 02 15:04:05.000", // time.StampMilli,
			NoColor:    !colorize,
		}),
	)
}

type multiHandler struct {
	handlers []slog.Handler
}

func MultiHandler(handlers ...slog.Handler) slog.Handler {
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, hh := range h.handlers {
		if hh.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, hh := range h.handlers {
		if hh.Enabled(ctx, r.Level) {
			_ = hh.Handle(ctx, r)
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, hh := range h.handlers {
		newHandlers[i] = hh.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, hh := range h.handlers {
		newHandlers[i] = hh.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

func ProvideSessionStore(cfg *config.Config, l *slog.Logger) (*session.Store, error) {
	return session.NewStore(l,
		session.WithFile(cfg.Session.ResolveFile()),
	)
}

func ProvideRestClient(cfg *config.Config, l *slog.Logger, store *session.Store) *rest.Client {
	return rest.NewClient(l,
		rest.WithBaseURL(cfg.API.ResolveBaseURL()),
		rest.WithTimeout(cfg.API.Timeout.Duration()),
		rest.WithUserAgent(UserAgent()),
		rest.WithCredentials(store),
		// 401/403 destroys the session ; token-matched, so a
		// stale rejection cannot log out a newer login, and
		// concurrent expiries collapse to one
		rest.WithSessionExpiredHook(func(token string) {
			if store.Expire(token) {
				l.Warn("session expired ; logged out")
			}
		}),
	)
}

func ProvideAPIClient(l *slog.Logger, transport *rest.Client, store *session.Store) *vandapay.Client {
	client := vandapay.NewClient(l, transport)
	store.Bind(client)
	return client
}
