package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/tvmauto/partsbot/internal/api"
	"github.com/tvmauto/partsbot/internal/bot"
	"github.com/tvmauto/partsbot/internal/config"
	"github.com/tvmauto/partsbot/internal/dialog"
	"github.com/tvmauto/partsbot/internal/infra/db"
	httpx "github.com/tvmauto/partsbot/internal/infra/http"
	"github.com/tvmauto/partsbot/internal/infra/logger"
	"github.com/tvmauto/partsbot/internal/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/subosito/gotenv"
)

func runMigrations(dsn string, log *slog.Logger) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	_ = gotenv.Load()

	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	if err := runMigrations(cfg.Postgres.DSN, log); err != nil {
		log.Error("migrations failed", "err", err)
		return
	}
	log.Info("migrations applied")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()
	log.Info("db connected")

	tz, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error("bad timezone", "tz", cfg.App.Timezone, "err", err)
		return
	}

	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled)
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	client := api.New(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSec)*time.Second, log)
	sessions := session.NewStore(client, session.NewPgRepo(pool), log)
	states := dialog.NewRepo(pool)

	botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Error("telegram init failed", "err", err)
		return
	}
	log.Info("telegram connected", "bot", botAPI.Self.UserName)

	b := bot.New(botAPI, log, client, sessions, states,
		cfg.Sales.GSTRate, time.Duration(cfg.Search.DebounceMS)*time.Millisecond, tz)

	go func() {
		if err := b.Run(ctx, 30); err != nil && ctx.Err() == nil {
			log.Error("bot stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
