package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ianglenncurilan/web-quickwork/internal/api"
	"github.com/ianglenncurilan/web-quickwork/internal/core/domain"
	"github.com/ianglenncurilan/web-quickwork/internal/core/ports"
	"github.com/ianglenncurilan/web-quickwork/internal/core/store"
	"github.com/ianglenncurilan/web-quickwork/internal/infrastructure/config"
	redisdb "github.com/ianglenncurilan/web-quickwork/internal/infrastructure/db/redis"
	"github.com/ianglenncurilan/web-quickwork/internal/infrastructure/supabase"
	"github.com/ianglenncurilan/web-quickwork/pkg/logger"
)

func main() {
	// A .env file is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := supabase.New(supabase.Config{
		URL:     cfg.Supabase.URL,
		AnonKey: cfg.Supabase.AnonKey,
		Timeout: cfg.Store.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build backend client")
	}

	// Redis only persists the session across restarts; the board runs
	// without it.
	var sessionCache ports.SessionCache
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, session persistence disabled")
	} else {
		defer rdb.Close()
		sessionCache = redisdb.NewSessionCache(rdb)
	}

	// Stores are built once here and injected; nothing else constructs one.
	timeout := cfg.Store.Timeout
	sessions := store.NewSession(client.Auth, sessionCache, log, timeout)
	jobs := store.NewJobPosts(supabase.NewTable[domain.JobPost](client, "job_posts"), log, timeout)
	applications := store.NewApplications(supabase.NewTable[domain.Application](client, "applications"), log, timeout)
	ratings := store.NewRatings(supabase.NewTable[domain.Rating](client, "ratings"), log, timeout)

	sessions.Initialize(ctx)
	if sessions.IsAuthenticated() {
		log.Info().Str("user_id", sessions.UserID()).Msg("restored persisted session")
	}

	e := api.NewRouter(api.Deps{
		Sessions:     sessions,
		JobPosts:     jobs,
		Applications: applications,
		Ratings:      ratings,
		Redis:        rdb,
		JWTSecret:    cfg.Supabase.JWTSecret,
		Log:          log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
