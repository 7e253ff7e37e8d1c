package bootstrap

import (
	"log"
	"strings"
	"time"

	"github.com/Conceptual-Machines/hirepulse-api/internal/config"
	"github.com/getsentry/sentry-go"
)

const (
	sentryFlushTimeout = 2 * time.Second
	redactedValue      = "[REDACTED]"
)

// InitSentry initializes Sentry when SENTRY_DSN is set.
// The returned func flushes buffered events and is always safe to call.
func InitSentry(cfg *config.Config, release string) func() {
	if cfg.SentryDSN == "" {
		log.Println("⚠️  Sentry not configured (SENTRY_DSN not set)")
		return func() {}
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          "hirepulse-api@" + release,
		EnableTracing:    true,
		TracesSampleRate: 1.0,
		Debug:            !cfg.IsProduction(),
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			if event.Request != nil {
				event.Request.Headers = filterSensitiveHeaders(event.Request.Headers)
				// Request bodies carry resume text
				event.Request.Data = ""
			}
			return event
		},
	}); err != nil {
		log.Printf("Failed to initialize Sentry: %v", err)
		return func() {}
	}

	log.Printf("✅ Sentry initialized (environment: %s, release: %s)", cfg.Environment, release)
	return func() { sentry.Flush(sentryFlushTimeout) }
}

func filterSensitiveHeaders(headers map[string]string) map[string]string {
	filtered := make(map[string]string, len(headers))
	sensitiveKeys := map[string]bool{
		"authorization":  true,
		"cookie":         true,
		"x-api-key":      true,
		"x-goog-api-key": true,
	}

	for k, v := range headers {
		if sensitiveKeys[strings.ToLower(k)] {
			filtered[k] = redactedValue
		} else {
			filtered[k] = v
		}
	}
	return filtered
}
