package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	adapthttp "bankdemo/internal/adapter/http"
	"bankdemo/internal/adapter/memory"
	"bankdemo/internal/adapter/redisstore"
	"bankdemo/internal/app"
	"bankdemo/internal/config"
	"bankdemo/internal/domain"

	"github.com/redis/go-redis/v9"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(".")
	if err != nil {
		logger.Error("config load failed", "err", err)
		os.Exit(1)
	}

	db := memory.New()

	var sessions domain.SessionRepository
	switch cfg.SessionBackend {
	case "redis":
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error("invalid redis url", "err", err)
			os.Exit(1)
		}
		sessions = redisstore.NewSessionRepo(redis.NewClient(opts))
	default:
		sessions = db.NewSessionRepo()
	}

	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour

	authSvc := app.NewAuthService(db, sessions, sessionTTL)
	bankSvc := app.NewBankService(sessions)
	eligibilitySvc := app.NewEligibilityService(app.NewUniformScores())

	h := adapthttp.New(authSvc, bankSvc, eligibilitySvc, sessionTTL, cfg.Origins()).Handler()

	logger.Info("listening", "addr", cfg.Addr, "session_backend", cfg.SessionBackend)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
