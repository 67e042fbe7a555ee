// Package logger configures the application's structured logging.
//
// It builds the zerolog root logger and, when a New Relic license key
// is configured, wraps the log writer so entries are forwarded to New
// Relic with trace context attached.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/fennelworks/catalog-api/internal/config"
)

// LoggerService owns the New Relic application instance, if one is
// configured. A nil application means all instrumentation is disabled.
type LoggerService struct {
	nrApp *newrelic.Application
}

// GetApplication returns the New Relic application, or nil when APM is
// not configured.
func (s *LoggerService) GetApplication() *newrelic.Application {
	if s == nil {
		return nil
	}
	return s.nrApp
}

// Shutdown flushes buffered telemetry. Safe to call when APM is disabled.
func (s *LoggerService) Shutdown(timeout time.Duration) {
	if s != nil && s.nrApp != nil {
		s.nrApp.Shutdown(timeout)
	}
}

// New builds the root logger and the observability service from config.
//
// Format selection:
//   - "console": human-friendly output, used for local development
//   - anything else: JSON to stdout, optionally wrapped for New Relic
//     log forwarding
func New(cfg *config.Config) (*zerolog.Logger, *LoggerService, error) {
	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		return nil, nil, fmt.Errorf("parsing log level: %w", err)
	}

	service := &LoggerService{}

	if key := cfg.Observability.NewRelic.LicenseKey; key != "" {
		app, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.Observability.ServiceName),
			newrelic.ConfigLicense(key),
			newrelic.ConfigAppLogForwardingEnabled(cfg.Observability.NewRelic.AppLogForwardingEnabled),
			newrelic.ConfigDistributedTracerEnabled(cfg.Observability.NewRelic.DistributedTracingEnabled),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing new relic application: %w", err)
		}
		service.nrApp = app
	}

	var out io.Writer = os.Stdout
	switch {
	case cfg.Observability.Logging.Format == "console":
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	case service.nrApp != nil:
		w := zerologWriter.New(os.Stdout, service.nrApp)
		out = &w
	}

	log := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()

	return &log, service, nil
}

// WithTraceContext returns a child logger carrying the transaction's
// trace and span identifiers, so log lines correlate with traces.
func WithTraceContext(log zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return log
	}
	md := txn.GetTraceMetadata()
	return log.With().
		Str("trace.id", md.TraceID).
		Str("span.id", md.SpanID).
		Logger()
}

// NewPgxLogger returns a logger dedicated to SQL query tracing output.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps the application log level onto pgx's
// tracelog levels so SQL tracing verbosity follows the app's setting.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	default:
		return tracelog.LogLevelError
	}
}
