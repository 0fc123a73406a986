// Package log provides the slog loggers used across vobject.
package log

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/lmittmann/tint"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/vobject/internal/constraints"
	"github.com/ghettovoice/vobject/internal/util"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(b []byte) slog.Value {
		return slog.StringValue(string(b))
	}),
)

// NewConsole creates a human-friendly logger writing to w.
func NewConsole(w io.Writer, lvl slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			AddSource:  true,
			Level:      lvl,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// NewDev creates a developer logger writing to w.
// It pretty prints nested groups and sorts attributes.
func NewDev(w io.Writer, lvl slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     lvl,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// NewTint creates a compact colorized logger writing to w.
func NewTint(w io.Writer, lvl slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			TimeFormat: time.Kitchen,
		}),
	))
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

var defLog atomic.Pointer[slog.Logger]

func init() {
	defLog.Store(Noop)
}

// Default returns the package level logger.
// It is [Noop] until replaced with [SetDefault].
func Default() *slog.Logger { return defLog.Load() }

// SetDefault replaces the package level logger.
// Nil resets it to [Noop].
func SetDefault(l *slog.Logger) {
	if l == nil {
		l = Noop
	}
	defLog.Store(l)
}

type stringValue[T constraints.Byteseq] struct {
	v     T
	limit int
}

func (v stringValue[T]) LogValue() slog.Value {
	if v.limit > 0 {
		return slog.StringValue(util.Ellipsis(string(v.v), v.limit))
	}
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string cut to limit runes.
// Zero limit disables cutting.
func StringValue[T constraints.Byteseq](v T, limit int) slog.LogValuer {
	return stringValue[T]{v, limit}
}
