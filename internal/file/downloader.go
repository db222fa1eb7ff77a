package file

import (
	"context"
	"io"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-telegram/bot"
)

// botAPIFileLimit is the largest file getFile will serve.
const botAPIFileLimit = 20 * 1024 * 1024

type Downloader interface {
	DownloadFile(ctx context.Context, fileID string, dst io.Writer) error
}

// TelegramDownloader fetches files through the Bot API file endpoint.
type TelegramDownloader struct {
	api    *bot.Bot
	client *http.Client
}

func NewTelegramDownloader(api *bot.Bot, client *http.Client) Downloader {
	return &TelegramDownloader{api: api, client: client}
}

func (d *TelegramDownloader) DownloadFile(ctx context.Context, fileID string, dst io.Writer) error {
	file, err := d.api.GetFile(ctx, &bot.GetFileParams{
		FileID: fileID,
	})
	if err != nil {
		return err
	}
	if file.FileSize > botAPIFileLimit {
		return ErrFileTooLarge
	}

	link := d.api.FileDownloadLink(file)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("bad status: %s", resp.Status)
	}

	_, err = io.Copy(dst, resp.Body)
	return err
}
