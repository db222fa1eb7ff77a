package telegram

import (
	"context"
	"log/slog"
	"time"

	"fileid-inspector/internal/file"
	"fileid-inspector/internal/pkg"
	"fileid-inspector/internal/pkg/config"
	"fileid-inspector/internal/registry"
	"fileid-inspector/internal/telegram/internal/media"

	"github.com/go-faster/errors"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const (
	recentLimit    = 10
	collectorDelay = time.Second * 2
)

type Bot struct {
	registryService registry.Service
	fileService     file.Service
	downloader      file.Downloader
	api             *bot.Bot
	collector       *media.Collector
	archiveMedia    bool
}

// NewBot creates the Bot API front end. A nil downloader falls back to the
// Bot API file endpoint.
func NewBot(registryService registry.Service, fileService file.Service, downloader file.Downloader, cfg *config.Config) (*Bot, error) {
	b := &Bot{
		registryService: registryService,
		fileService:     fileService,
		collector:       media.NewCollector(collectorDelay),
		archiveMedia:    cfg.FileService.ArchiveMedia,
	}

	api, err := bot.New(cfg.TelegramCfg.Token, bot.WithDefaultHandler(b.handleMediaMessage))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create bot instance")
	}
	b.api = api

	if downloader == nil {
		downloader = file.NewTelegramDownloader(api, pkg.HTTPClient)
	}
	b.downloader = downloader

	return b, nil
}

func (b *Bot) Start(ctx context.Context) {
	b.api.RegisterHandler(bot.HandlerTypeMessageText, "start", bot.MatchTypeCommandStartOnly, b.handleHelpCmd)
	b.api.RegisterHandler(bot.HandlerTypeMessageText, "help", bot.MatchTypeCommandStartOnly, b.handleHelpCmd)
	b.api.RegisterHandler(bot.HandlerTypeMessageText, "decode", bot.MatchTypeCommandStartOnly, b.handleDecodeCmd)
	b.api.RegisterHandler(bot.HandlerTypeMessageText, "unique", bot.MatchTypeCommandStartOnly, b.handleUniqueCmd)
	b.api.RegisterHandler(bot.HandlerTypeMessageText, "recent", bot.MatchTypeCommandStartOnly, b.handleRecentCmd)

	slog.Info("Started Telegram Bot")
	go b.api.Start(ctx)
}

func (b *Bot) SendMessage(ctx context.Context, params *bot.SendMessageParams) int {
	if params.ParseMode == "" {
		params.ParseMode = models.ParseModeHTML
	}
	msg, err := b.api.SendMessage(ctx, params)
	if err != nil {
		slog.Error("Error sending message", "error", err, "chatID", params.ChatID)
		return 0
	}
	return msg.ID
}

func (b *Bot) EditMessageText(ctx context.Context, params *bot.EditMessageTextParams) {
	if params.ParseMode == "" {
		params.ParseMode = models.ParseModeHTML
	}
	if _, err := b.api.EditMessageText(ctx, params); err != nil {
		slog.Error("Error editing message", "error", err, "chatID", params.ChatID)
	}
}
