package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/signupkit/handler"
	"github.com/dmitrymomot/signupkit/modules/signup"
	"github.com/dmitrymomot/signupkit/modules/signup/views"
	"github.com/dmitrymomot/signupkit/pkg/config"
	"github.com/dmitrymomot/signupkit/pkg/environment"
	"github.com/dmitrymomot/signupkit/pkg/httpserver"
	"github.com/dmitrymomot/signupkit/pkg/logger"
	"github.com/dmitrymomot/signupkit/pkg/metrics"
	"github.com/dmitrymomot/signupkit/pkg/ratelimiter"
	"github.com/dmitrymomot/signupkit/pkg/redis"
	"github.com/dmitrymomot/signupkit/pkg/requestid"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Config is the server configuration, loaded from the environment and an
// optional .env file.
type Config struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	AppName string `env:"APP_NAME" envDefault:"signupkit"`

	HTTP httpserver.Config

	// Submit limit per client address: SIGNUP_RATE_CAPACITY etc.
	Limits ratelimiter.Config `envPrefix:"SIGNUP_"`

	// Blur and clear requests per client address.
	FieldLimits FieldLimits

	// SIGNUP_REDIS_URL; empty keeps rate limit state in memory.
	Redis redis.Config `envPrefix:"SIGNUP_"`
}

// FieldLimits bounds the per-field validation endpoints, which fire on
// every blur and on typing into an invalid field.
type FieldLimits struct {
	Capacity       int           `env:"SIGNUP_FIELD_RATE_CAPACITY" envDefault:"120"`
	RefillRate     int           `env:"SIGNUP_FIELD_RATE_REFILL" envDefault:"2"`
	RefillInterval time.Duration `env:"SIGNUP_FIELD_RATE_INTERVAL" envDefault:"1s"`
}

func (l FieldLimits) bucketConfig() ratelimiter.Config {
	return ratelimiter.Config{
		Capacity:       l.Capacity,
		RefillRate:     l.RefillRate,
		RefillInterval: l.RefillInterval,
	}
}

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
		logger.WithAttr(slog.String("version", Version)),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	env := environment.Parse(cfg.Env)

	store, checks, cleanup, err := newLimiterStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	submitBucket, err := ratelimiter.NewBucket(store, cfg.Limits)
	if err != nil {
		return fmt.Errorf("submit limiter: %w", err)
	}
	fieldBucket, err := ratelimiter.NewBucket(store, cfg.FieldLimits.bucketConfig())
	if err != nil {
		return fmt.Errorf("field limiter: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(metricsNamespace, reg)

	svc, err := signup.NewService(
		views.Default(),
		handler.NewErrorHandler(log, views.ErrorHandlerConfig()),
		signup.WithLogger(log),
		signup.WithLimiter(submitBucket),
		signup.WithRecorder(m),
	)
	if err != nil {
		return err
	}

	router := newRouter(routerDeps{
		env:         env,
		log:         log,
		metrics:     m,
		gatherer:    reg,
		checks:      checks,
		fieldBucket: fieldBucket,
		signup:      svc.Handle(),
	})

	log.InfoContext(ctx, "starting signup server",
		slog.String("addr", cfg.HTTP.Addr),
		slog.Bool("redis", cfg.Redis.Enabled()),
	)

	server := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return server.Run(ctx, router)
}

// newLimiterStore picks Redis when SIGNUP_REDIS_URL is set and the
// in-memory store otherwise.
func newLimiterStore(ctx context.Context, cfg Config, log *slog.Logger) (ratelimiter.Store, map[string]httpserver.Check, func(), error) {
	if !cfg.Redis.Enabled() {
		store := ratelimiter.NewMemoryStore()
		return store, nil, store.Close, nil
	}

	client, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("rate limit store: %w", err)
	}
	log.InfoContext(ctx, "rate limit state kept in redis", logger.Component("ratelimiter"))

	checks := map[string]httpserver.Check{"redis": redis.Healthcheck(client)}
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Warn("closing redis client", logger.Error(err))
		}
	}
	return ratelimiter.NewRedisStore(client, cfg.AppName+":ratelimit"), checks, cleanup, nil
}
