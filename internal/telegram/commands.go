package telegram

import (
	"context"
	"strings"

	"fileid-inspector/internal/inspect"
	"fileid-inspector/internal/telegram/internal/presentation"
	"fileid-inspector/pkg/fileid"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func (b *Bot) handleHelpCmd(ctx context.Context, api *bot.Bot, update *models.Update) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   presentation.HelpMsg(),
	})
}

func (b *Bot) handleDecodeCmd(ctx context.Context, api *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	arg, ok := commandArgument(update.Message.Text)
	if !ok {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   presentation.UsageMsg("decode", "file_id"),
		})
		return
	}

	text, err := decodeFileIDReport(arg)
	if err != nil {
		text = presentation.DecodeErrorMsg(err)
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
}

func (b *Bot) handleUniqueCmd(ctx context.Context, api *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID
	arg, ok := commandArgument(update.Message.Text)
	if !ok {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   presentation.UsageMsg("unique", "file_unique_id"),
		})
		return
	}

	text, err := decodeUniqueIDReport(arg)
	if err != nil {
		text = presentation.DecodeErrorMsg(err)
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
}

func (b *Bot) handleRecentCmd(ctx context.Context, api *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	records, err := b.registryService.Recent(ctx, recentLimit)
	if err != nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   presentation.GenericErrorMsg(),
		})
		return
	}

	if len(records) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   presentation.EmptyRecentMsg(),
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   presentation.RecentMsg(records),
	})
}

// commandArgument returns the first argument after the command word.
func commandArgument(text string) (string, bool) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return "", false
	}
	return fields[1], true
}

func decodeFileIDReport(fileID string) (string, error) {
	info, err := fileid.DecodeFileID(fileID)
	if err != nil {
		return "", err
	}
	out, err := inspect.Render(inspect.NewFileReport(info), inspect.FormatYAML)
	if err != nil {
		return "", err
	}
	return presentation.FileReportMsg(out), nil
}

func decodeUniqueIDReport(uniqueID string) (string, error) {
	info, err := fileid.DecodeUniqueID(uniqueID)
	if err != nil {
		return "", err
	}
	out, err := inspect.Render(inspect.NewUniqueReport(info), inspect.FormatYAML)
	if err != nil {
		return "", err
	}
	return presentation.UniqueReportMsg(out), nil
}
