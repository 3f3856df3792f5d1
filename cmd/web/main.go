package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-portal/config"
	"go-jobboard-portal/internal/delivery/http/web"
	"go-jobboard-portal/internal/resource"
	"go-jobboard-portal/internal/session"
	"go-jobboard-portal/internal/usecase"
	"go-jobboard-portal/pkg/logger"
	"go-jobboard-portal/pkg/metrics"
	redisPkg "go-jobboard-portal/pkg/redis"
	"go-jobboard-portal/pkg/security"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.Env, "jobboard-portal")
	secLog := security.InitSecurityLogger("jobboard-portal", cfg.Env)
	defer func() { _ = secLog.Sync() }()
	logger.Log.Info("Starting portal", "port", cfg.Port, "store_url", cfg.StoreURL, "session_driver", cfg.SessionDriver)

	ctx := context.Background()

	// 3. Setup Resource Client
	httpClient := &http.Client{}
	client := resource.NewClient(cfg.StoreURL, httpClient)

	// 4. Setup Sessions
	probes := map[string]usecase.Probe{"store": storeProbe(httpClient, cfg.StoreURL)}
	provider, redisClient, err := openSessions(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to set up sessions", "driver", cfg.SessionDriver, "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		probes["redis"] = func(ctx context.Context) error { return redisPkg.HealthCheck(ctx, redisClient) }
	}

	// 5. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(resource.NewUserRepository(client), usecase.AuthConfig{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
		TokenPrefix:   cfg.SessionTokenPrefix,
	}, validate)
	jobUC := usecase.NewJobUsecase(resource.NewJobRepository(client), usecase.JobDefaults{
		Company:  cfg.DefaultCompany,
		Location: cfg.DefaultLocation,
		Logo:     cfg.DefaultLogo,
	})
	applicationUC := usecase.NewApplicationUsecase(resource.NewApplicationRepository(client), validate)

	// 6. Setup Router
	router := web.NewRouter(web.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		HealthUC:      usecase.NewHealthUsecase(probes),
		Sessions:      session.NewManager(provider),
		SecurityLog:   secLog,
		Metrics:       metrics.NewHTTP("portal"),
		Config:        cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func openSessions(ctx context.Context, cfg *config.Config) (session.Provider, *redis.Client, error) {
	opts := session.Options{
		CookieName: cfg.SessionCookieName,
		TTL:        time.Duration(cfg.SessionTTLHours) * time.Hour,
		Secure:     cfg.CookieSecure,
	}

	switch cfg.SessionDriver {
	case "cookie":
		return session.NewCookieProvider(cfg.SessionSecret, opts), nil, nil

	case "redis":
		client, err := redisPkg.Connect(ctx, redisPkg.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			return nil, nil, err
		}
		logger.Log.Info("Redis session store connected")
		return session.NewServerProvider(session.NewRedisBackend(client, opts.TTL), opts), client, nil

	case "memory":
		logger.Log.Warn("Using in-memory sessions; everyone is logged out on restart")
		return session.NewServerProvider(session.NewMemoryBackend(opts.TTL), opts), nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown SESSION_DRIVER %q", cfg.SessionDriver)
	}
}

// storeProbe asks the record store's own health endpoint.
func storeProbe(client *http.Client, storeURL string) usecase.Probe {
	return func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, storeURL+"/health", nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("store health returned %d", resp.StatusCode)
		}
		return nil
	}
}
