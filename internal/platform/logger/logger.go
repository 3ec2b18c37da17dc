package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info", "":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// zeroLogger implementa Logger sobre zerolog.
type zeroLogger struct {
	zl zerolog.Logger
}

type Options struct {
	Level  Level
	Format Format
	App    string
}

func New(opts Options) Logger {
	var zl zerolog.Logger
	if opts.Format == FormatJSON {
		zl = zerolog.New(os.Stdout)
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	zl = zl.Level(toZerologLevel(opts.Level)).With().Timestamp().Logger()
	if strings.TrimSpace(opts.App) != "" {
		zl = zl.With().Str("app", strings.TrimSpace(opts.App)).Logger()
	}

	return &zeroLogger{zl: zl}
}

// NewFromEnv crea logger desde env:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - LOG_FORMAT=text|json (default text)
// - APP_NAME (opcional)
func NewFromEnv() Logger {
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    os.Getenv("APP_NAME"),
	})
}

// Nop descarta todo; para tests.
func Nop() Logger {
	return &zeroLogger{zl: zerolog.Nop()}
}

func toZerologLevel(l Level) zerolog.Level {
	switch l {
	case Debug:
		return zerolog.DebugLevel
	case Warn:
		return zerolog.WarnLevel
	case Error:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *zeroLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	ctx := l.zl.With()
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		ctx = ctx.Interface(k, v)
	}
	return &zeroLogger{zl: ctx.Logger()}
}

func (l *zeroLogger) Debug(msg string, fields map[string]any) { l.log(l.zl.Debug(), msg, fields) }
func (l *zeroLogger) Info(msg string, fields map[string]any)  { l.log(l.zl.Info(), msg, fields) }
func (l *zeroLogger) Warn(msg string, fields map[string]any)  { l.log(l.zl.Warn(), msg, fields) }
func (l *zeroLogger) Error(msg string, fields map[string]any) { l.log(l.zl.Error(), msg, fields) }

func (l *zeroLogger) log(ev *zerolog.Event, msg string, fields map[string]any) {
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}
