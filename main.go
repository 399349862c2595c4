package main

import (
	"context"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/pharmadesk/pharmadesk/client/go-client/internal/api"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/config"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/dashboard"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/httpclient"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/notify"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/session"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/storage"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/web"
	"github.com/pharmadesk/pharmadesk/client/go-client/pkg/logger"
	"github.com/pharmadesk/pharmadesk/client/go-client/pkg/metrics"
)

func main() {
	// log level controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: backend=%s session_backend=%s", cfg.API.BaseURL, cfg.Session.Backend)

	ctx := context.Background()

	store := buildStore(ctx, cfg)

	notifier := notify.LogNotifier{}
	nav := session.NavigatorFunc(func() {
		// navigation intent; the web layer carries the redirect to the view
		logger.Info("navigation intent: /login")
	})

	mgr := session.NewManager(store, notifier, nav,
		session.WithTTL(cfg.Session.TTL),
		session.WithCheckInterval(cfg.Session.CheckInterval),
	)
	defer mgr.Close()

	client := httpclient.New(cfg.API.BaseURL,
		httpclient.WithTimeout(cfg.API.Timeout),
		httpclient.WithRateLimit(cfg.API.RateLimit, cfg.API.Burst),
		httpclient.WithTokenSource(mgr.Token),
		httpclient.WithAuthFailureHandler(func(ctx context.Context, msg string) {
			mgr.Invalidate(ctx, msg)
		}),
	)
	groups := api.New(client)
	mgr.BindAuth(groups.Auth)

	// restore must finish before the router answers its first guard decision
	mgr.Restore(ctx)
	logger.Infof("session state after restore: %s", mgr.Snapshot().State)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	dash := dashboard.NewService(groups.Reports, groups.Sales)
	srv := web.New(cfg, mgr, groups, dash)

	logger.Infof("starting pharmacy client on %s:%s", cfg.Web.Host, cfg.Web.Port)
	if err := srv.Run(); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}

// buildStore picks the persistence backend for the session record. Redis
// must answer a ping or we fall back to the file store rather than running
// with a store that can never read.
func buildStore(ctx context.Context, cfg *config.Config) storage.Store {
	switch cfg.Session.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warnf("redis unreachable (%s:%s), falling back to file store: %v", cfg.Redis.Host, cfg.Redis.Port, err)
			return storage.NewFileStore(cfg.Session.FilePath)
		}
		logger.Infof("using redis session store at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		return storage.NewRedisStore(client, cfg.Redis.Prefix, cfg.Session.TTL)
	case "memory":
		return storage.NewMemStore()
	default:
		return storage.NewFileStore(cfg.Session.FilePath)
	}
}
