package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/cors"
	"github.com/shandysiswandi/formguard/internal/pkg/clock"
	"github.com/shandysiswandi/formguard/internal/pkg/config"
	"github.com/shandysiswandi/formguard/internal/pkg/goroutine"
	"github.com/shandysiswandi/formguard/internal/pkg/instrument"
	"github.com/shandysiswandi/formguard/internal/pkg/messaging"
	"github.com/shandysiswandi/formguard/internal/pkg/router"
	"github.com/shandysiswandi/formguard/internal/pkg/uid"
	"github.com/shandysiswandi/formguard/internal/pkg/validator"
)

func (a *App) initConfig() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "/config/config.yaml"
		if os.Getenv("LOCAL") == "true" {
			path = "./config/config.yaml"
		}
	}

	cfg, err := config.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	if tz := cfg.GetString("app.tz"); tz != "" {
		//nolint:errcheck,gosec // ignore error
		os.Setenv("TZ", tz)
	}

	a.config = cfg
}

func (a *App) initInstrument() {
	cfg := &instrument.Config{
		Enabled:          a.config.GetBool("instrument.enabled"),
		ServiceName:      a.config.GetString("instrument.service_name"),
		ServiceVersion:   a.config.GetString("instrument.service_version"),
		Environment:      a.config.GetString("instrument.env"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		LogLevel:         a.config.GetString("instrument.log_level"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
	}

	ins, err := instrument.New(a.ctx, cfg)
	if err != nil {
		slog.Error("failed to init instrumentation", "error", err)
		os.Exit(1)
	}

	a.ins = ins
	a.masker = cfg.Masker()
}

func (a *App) initLibraries() {
	a.clock = clock.New()
	a.uuid = uid.NewUUID()
	a.goroutine = goroutine.NewManager(a.config.GetInt("app.server.max_goroutine"))

	validator, err := validator.NewV10Validator()
	if err != nil {
		slog.Error("failed to init validation v10 validator", "error", err)
		os.Exit(1)
	}
	a.validator = validator
}

func (a *App) initMessaging() {
	driver := a.config.GetString("messaging.driver")
	client, err := messaging.NewFromDriver(driver, messaging.FactoryOptions{
		NATS: messaging.NATSConfig{
			URL:  a.config.GetString("messaging.nats.url"),
			Name: a.config.GetString("messaging.nats.name"),
			Options: []nats.Option{
				nats.MaxReconnects(a.config.GetInt("messaging.nats.max_reconnects")),
				nats.Timeout(secondsOr(a.config, "messaging.nats.timeout_seconds", nats.DefaultTimeout)),
				nats.ReconnectWait(secondsOr(a.config, "messaging.nats.reconnect_wait_seconds", nats.DefaultReconnectWait)),
				nats.PingInterval(secondsOr(a.config, "messaging.nats.ping_interval_seconds", nats.DefaultPingInterval)),
				nats.RetryOnFailedConnect(a.config.GetBool("messaging.nats.retry_on_failed_connect")),
			},
		},
		Retry: messaging.RetryConfig{
			Attempts: uint64(max(a.config.GetInt("messaging.retry.attempts"), 0)),
			Base:     time.Duration(a.config.GetInt("messaging.retry.base_millis")) * time.Millisecond,
			Cap:      time.Duration(a.config.GetInt("messaging.retry.cap_millis")) * time.Millisecond,
		},
	})
	if err != nil {
		slog.Error("failed to init messaging", "error", err, "driver", driver)
		os.Exit(1)
	}

	a.messaging = client
}

func (a *App) initHTTPServer() {
	a.router = router.NewRouter(router.Config{
		Config:     a.config,
		UUID:       a.uuid,
		Instrument: a.ins,
		Masker:     a.masker,
	})

	routerWithCORS := cors.New(cors.Options{
		AllowedOrigins:   a.config.GetArray("app.server.cors"),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{router.HeaderCorrelationID},
		AllowCredentials: true,
	}).Handler(a.router)

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("app.server.http.address"),
		Handler:           routerWithCORS,
		ReadTimeout:       a.config.GetSecond("app.server.http.read_timeout_seconds"),
		ReadHeaderTimeout: secondsOr(a.config, "app.server.http.read_header_timeout_seconds", 5*time.Second),
		WriteTimeout:      a.config.GetSecond("app.server.http.write_timeout_seconds"),
		IdleTimeout:       a.config.GetSecond("app.server.http.idle_timeout_seconds"),
	}
}

func (a *App) initClosers() {
	a.closers = []closer{
		{name: "Messaging", fn: func(context.Context) error { return a.messaging.Close() }},
		{name: "Instrument", fn: a.ins.Shutdown},
		{name: "Config", fn: func(context.Context) error { return a.config.Close() }},
	}
}

func secondsOr(cfg config.Config, key string, def time.Duration) time.Duration {
	if d := cfg.GetSecond(key); d > 0 {
		return d
	}
	return def
}
