// Package logger wraps log/slog with context-carried settings: a subsystem name,
// extra key-values, a muted flag and an optional per-context base logger.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"

	"github.com/amp-labs/vval/contexts"
	"github.com/amp-labs/vval/envutil"
	"go.uber.org/atomic"
)

// Default subsystem, set by ConfigureLogging and read by every Get.
var subsystem = atomic.NewString("") //nolint:gochecknoglobals

// configMutex protects concurrent calls to ConfigureLoggingWithOptions.
// This is necessary because the function modifies global state (slog.SetDefault and log.Default).
var configMutex sync.Mutex //nolint:gochecknoglobals

type contextKey string

const (
	mutedKey     contextKey = "mute"
	subsystemKey contextKey = "subsystem"
	valuesKey    contextKey = "loggerValues"
	baseKey      contextKey = "baseLogger"
)

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// ConfigureLoggingWithOptions installs a text or JSON slog handler as the process default
// and redirects the legacy log package into it. Errors annotated with AnnotateError have
// their attributes expanded by the installed handler.
// This function is thread-safe but modifies global state, so concurrent calls
// will be serialized.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	handler = NewErrorHandler(handler)

	logger := slog.New(handler)
	slog.SetDefault(logger)

	// Third party packages may still use the old log package.
	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	subsystem.Store(opts.Subsystem)

	return logger
}

// Option is a functional option for configuring logging via ConfigureLogging.
type Option func(*Options)

// WithOutput overrides the output chosen from LOG_OUTPUT.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// ErrInvalidLogOutput is returned when an invalid log output destination is specified.
var ErrInvalidLogOutput = errors.New("invalid log output")

// ConfigureLogging configures logging from the environment:
//
//	LOG_JSON          bool, default false
//	LOG_LEVEL         debug|info|warn|error, default info
//	LEGACY_LOG_LEVEL  level for the log package, default info
//	LOG_OUTPUT        stdout|stderr, default stdout
//
// Malformed values fall back to the defaults (with a warning). Options run last.
func ConfigureLogging(ctx context.Context, app string, opts ...Option) *slog.Logger {
	ctx = contexts.EnsureContext(ctx)

	output := envutil.Map(envutil.String(ctx, "LOG_OUTPUT"), func(outName string) (io.Writer, error) {
		switch outName {
		case "stdout":
			return os.Stdout, nil
		case "stderr":
			return os.Stderr, nil
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidLogOutput, outName)
		}
	}).ValueOrElse(os.Stdout)

	options := Options{
		Subsystem:   app,
		JSON:        envutil.Bool(ctx, "LOG_JSON").ValueOrElse(false),
		MinLevel:    envutil.SlogLevel(ctx, "LOG_LEVEL").ValueOrElse(slog.LevelInfo),
		LegacyLevel: envutil.SlogLevel(ctx, "LEGACY_LOG_LEVEL").ValueOrElse(slog.LevelInfo),
		Output:      output,
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options)
}

// WithMuted adds a muted flag to the context. Loggers obtained from a muted context
// discard everything.
func WithMuted(ctx context.Context, muted bool) context.Context {
	return contexts.WithValue[contextKey, bool](ctx, mutedKey, muted)
}

func isMuted(ctx context.Context) bool {
	muted, _ := contexts.GetValue[contextKey, bool](ctx, mutedKey)

	return muted
}

// WithSubsystem overrides the default subsystem for loggers obtained from ctx.
func WithSubsystem(ctx context.Context, name string) context.Context {
	return contexts.WithValue[contextKey, string](ctx, subsystemKey, name)
}

// GetSubsystem returns the subsystem from the context, falling back to the one set
// by ConfigureLogging.
func GetSubsystem(ctx context.Context) string {
	if sub, ok := contexts.GetValue[contextKey, string](ctx, subsystemKey); ok {
		return sub
	}

	return subsystem.Load()
}

// WithLogger makes Get use l instead of slog.Default() for this context. Handy in tests
// to route output into the test log.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return contexts.WithValue[contextKey, *slog.Logger](ctx, baseKey, l)
}

// nullHandler discards all log output; it backs the muted logger.
type nullHandler struct{}

func (n *nullHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (n *nullHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (n *nullHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return n
}

func (n *nullHandler) WithGroup(_ string) slog.Handler {
	return n
}

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Get returns a logger for the first non-nil context given, with the subsystem and any
// values added through With already attached.
//
//nolint:contextcheck
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := contexts.EnsureContext(ctx...)

	if isMuted(realCtx) {
		return nullLogger
	}

	logger, ok := contexts.GetValue[contextKey, *slog.Logger](realCtx, baseKey)
	if !ok || logger == nil {
		logger = slog.Default()
	}

	if sub := GetSubsystem(realCtx); sub != "" {
		logger = logger.With("subsystem", sub)
	}

	if vals := getValues(realCtx); len(vals) > 0 {
		logger = logger.With(vals...)
	}

	return logger
}

// With returns a new context with the given key-values added.
// The values are added to the logger automatically.
func With(ctx context.Context, values ...any) context.Context {
	if len(values) == 0 && ctx != nil {
		return ctx
	}

	existing := getValues(ctx)
	vals := make([]any, 0, len(existing)+len(values))
	vals = append(vals, existing...)
	vals = append(vals, values...)

	return contexts.WithValue[contextKey, []any](ctx, valuesKey, vals)
}

func getValues(ctx context.Context) []any {
	vals, _ := contexts.GetValue[contextKey, []any](ctx, valuesKey)

	return vals
}
