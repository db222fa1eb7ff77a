package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fileid-inspector/internal/file"
	"fileid-inspector/internal/mtproto"
	"fileid-inspector/internal/pkg/config"
	"fileid-inspector/internal/reconciler"
	"fileid-inspector/internal/registry"
	"fileid-inspector/internal/telegram"

	_ "github.com/jackc/pgx/stdlib"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("pgx", cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.PingContext(ctx); err != nil {
		log.Fatal(err)
	}

	registryRepo := registry.NewDefaultRepo(db)
	if err := registryRepo.Migrate(ctx); err != nil {
		log.Fatal(err)
	}
	registryService := registry.NewDefaultService(registryRepo)

	var downloader file.Downloader
	var mtprotoClient *mtproto.Client
	if cfg.MTProto.Enabled() {
		mtprotoClient, err = mtproto.NewClient(ctx, &cfg.MTProto, cfg.TelegramCfg.Token)
		if err != nil {
			log.Fatal(err)
		}
		downloader = mtprotoClient
	}

	fileService := file.NewDefaultService(&cfg.FileService)

	bot, err := telegram.NewBot(registryService, fileService, downloader, cfg)
	if err != nil {
		log.Fatal(err)
	}
	bot.Start(ctx)

	reconcilerService := reconciler.NewDefaultService(&cfg.FileService)
	reconcilerService.Start(ctx)

	<-ctx.Done()
	slog.Info("Shutting down...")
	ctx, shutdown := context.WithTimeout(context.Background(), time.Second*15)
	defer shutdown()

	if err := reconcilerService.Stop(ctx); err != nil {
		slog.Error("Failed to stop reconciler", "error", err)
	}
	fileService.Wait()

	if mtprotoClient != nil {
		if err := mtprotoClient.Close(); err != nil {
			slog.Error("Failed to close MTProto client", "error", err)
		}
	}

	if err := db.Close(); err != nil {
		log.Fatal(err)
	}
}
