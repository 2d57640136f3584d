package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"mirror-store/internal/auth"
	"mirror-store/internal/cache"
	"mirror-store/internal/config"
	"mirror-store/internal/events"
	"mirror-store/internal/gateway"
	httpx "mirror-store/internal/http"
	"mirror-store/internal/http/handlers"
	"mirror-store/internal/logger"
	"mirror-store/internal/repo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New("mirror-store", cfg.Common.LogLevel)

	ctxDB, cancelDB := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelDB()

	db, err := pgxpool.New(ctxDB, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("pg connect failed")
	}
	defer db.Close()

	rds := cache.New(cfg.Redis.Addr)
	defer rds.Close()
	if err := rds.Ping(ctxDB); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, catalog reads fall through to pg")
	}

	bus, err := events.Connect(cfg.Rabbit.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("rabbit connect failed")
	}
	defer bus.Close()

	tokens := auth.NewTokenService(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	usersRepo := &repo.UsersPG{DB: db}
	ordersRepo := &repo.OrdersPG{DB: db}
	itemsRepo := &repo.ItemsCached{
		PG:    &repo.ItemsPG{DB: db},
		Redis: rds,
		TTL:   cfg.Redis.ItemsTTL,
	}

	router := httpx.NewRouter(&httpx.Deps{
		Tokens:   tokens,
		Users:    &handlers.UsersHandler{Store: usersRepo, Tokens: tokens, Log: log},
		Items:    &handlers.ItemsHandler{Store: itemsRepo, Log: log},
		Orders:   &handlers.OrdersHandler{Store: ordersRepo, Log: log},
		Reviews:  &handlers.ReviewsHandler{Store: &repo.ReviewsPG{DB: db}, Log: log},
		Profiles: &handlers.ProfilesHandler{Store: &repo.ProfilesPG{DB: db}, Log: log},
		Intents: &handlers.PaymentIntentHandler{
			Gateway: gateway.NewStripe(cfg.Stripe.SecretKey),
			Log:     log,
		},
		Confirm: &handlers.ConfirmPaymentHandler{
			Payments: &repo.PaymentsPG{DB: db},
			Orders:   ordersRepo,
			Events:   bus,
			Log:      log,
		},
		Log: log,
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutdown...")
	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
}
