package mtproto

import (
	"context"
	"io"
	"log/slog"
	"time"

	"fileid-inspector/internal/pkg/config"
	"fileid-inspector/pkg/fileid"

	"github.com/go-faster/errors"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/downloader"
	"github.com/gotd/td/tg"
)

const defaultPartSize = 512 * 1024

type Client struct {
	api        *tg.Client
	downloader *downloader.Downloader
	cancel     context.CancelFunc
	done       chan struct{}
	ready      chan struct{}
}

func NewClient(ctx context.Context, cfg *config.MTProtoCfg, token string) (*Client, error) {
	client := &Client{
		done:  make(chan struct{}),
		ready: make(chan struct{}),
	}

	clientCtx, cancel := context.WithCancel(ctx)
	client.cancel = cancel

	partSize := cfg.PartSize
	if partSize <= 0 {
		partSize = defaultPartSize
	}

	mtprotoClient := telegram.NewClient(cfg.AppID, cfg.AppHash, telegram.Options{})

	go func() {
		defer close(client.done)

		err := mtprotoClient.Run(clientCtx, func(ctx context.Context) error {
			if _, err := mtprotoClient.Auth().Bot(ctx, token); err != nil {
				return errors.Wrap(err, "auth failed")
			}

			client.api = tg.NewClient(mtprotoClient)
			client.downloader = downloader.NewDownloader().WithPartSize(partSize)

			close(client.ready)

			<-ctx.Done()
			return ctx.Err()
		})

		if err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("MTProto client stopped with error", "error", err)
		}
	}()

	select {
	case <-client.ready:
		slog.Info("Started MTProto client")
		return client, nil
	case <-client.done:
		client.cancel()
		return nil, errors.New("mtproto client stopped before authorization")
	case <-time.After(30 * time.Second):
		client.cancel()
		return nil, errors.New("client initialization timeout")
	case <-ctx.Done():
		client.cancel()
		return nil, ctx.Err()
	}
}

// DownloadFile streams the file behind a Bot API file_id into dst.
func (c *Client) DownloadFile(ctx context.Context, fileID string, dst io.Writer) error {
	info, err := fileid.DecodeFileID(fileID)
	if err != nil {
		return errors.Wrap(err, "decode file id")
	}

	location, err := InputFileLocation(info)
	if err != nil {
		return err
	}

	if _, err := c.downloader.Download(c.api, location).Stream(ctx, dst); err != nil {
		return errors.Wrapf(err, "download from dc %d", info.DCID)
	}
	return nil
}

func (c *Client) Close() error {
	c.cancel()
	<-c.done
	return nil
}
