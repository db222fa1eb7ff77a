package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fileid-inspector/internal/file"
	"fileid-inspector/internal/pkg/model"
	"fileid-inspector/internal/telegram/internal/media"
	"fileid-inspector/internal/telegram/internal/presentation"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func (b *Bot) handleMediaMessage(ctx context.Context, api *bot.Bot, update *models.Update) {
	if update.Message == nil || !media.HasMedia(update.Message) {
		return
	}

	b.collector.ProcessMessage(update.Message, func(window *media.Window) {
		// The update context is gone by the time the window flushes.
		ctx := context.Background()
		records, failed := b.registerFiles(ctx, window.Media)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: window.ChatID,
			Text:   presentation.MediaReportMsg(records, failed),
		})

		if b.archiveMedia {
			b.archive(ctx, window.ChatID, window.Media)
		}
	})
}

func (b *Bot) registerFiles(ctx context.Context, files []model.File) ([]model.Record, map[string]string) {
	records := make([]model.Record, 0, len(files))
	failed := make(map[string]string)
	for _, f := range files {
		record, err := b.registryService.Register(ctx, f)
		if err != nil {
			failed[f.Name] = err.Error()
			continue
		}
		records = append(records, *record)
	}
	return records, failed
}

func (b *Bot) archive(ctx context.Context, chatID int64, files []model.File) {
	folder := file.FolderName(fmt.Sprint(chatID), time.Now().UTC().Format("2006-01-02 150405"))
	requests := make([]file.RequestFile, len(files))
	for i, f := range files {
		requests[i] = file.RequestFile{Name: f.Name, FileID: f.FileID}
	}

	msgID := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   presentation.StartingDownloadMsg(len(requests)),
	})

	errs := make(map[string]string)
	for res := range b.fileService.DownloadAndSave(ctx, folder, requests, b.downloader) {
		if res.Err != nil {
			slog.Error("Failed to archive file", "error", res.Err, "name", res.Result.Name, "chatID", chatID)
			errs[res.Result.Name] = res.Err.Error()
		}
		if msgID != 0 {
			b.EditMessageText(ctx, &bot.EditMessageTextParams{
				ChatID:    chatID,
				MessageID: msgID,
				Text:      presentation.DownloadProgressMsg(res.Result.Name, res.Index, res.Total),
			})
		}
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   presentation.DownloadResultMsg(folder, errs),
	})
}
