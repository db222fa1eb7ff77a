package reconciler

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fileid-inspector/internal/pkg/config"

	"github.com/go-faster/errors"
)

const defaultInterval = time.Hour

type Service interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Prune(ctx context.Context) ([]string, error)
}

// DefaultService removes archive folders that are older than the configured
// retention.
type DefaultService struct {
	cfg      *config.FileServiceCfg
	interval time.Duration
	now      func() time.Time
	wg       *sync.WaitGroup
}

func NewDefaultService(cfg *config.FileServiceCfg) Service {
	return &DefaultService{
		cfg:      cfg,
		interval: defaultInterval,
		now:      time.Now,
		wg:       &sync.WaitGroup{},
	}
}

func (d *DefaultService) Start(ctx context.Context) {
	if d.cfg.Retention <= 0 {
		slog.Info("Archive retention disabled")
		return
	}
	d.startReconciliationLoop(ctx)
	slog.Info("Started reconciler service", "retention", d.cfg.Retention)
}

func (d *DefaultService) Stop(ctx context.Context) error {
	stop := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(stop)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-stop:
		return nil
	}
}

func (d *DefaultService) startReconciliationLoop(ctx context.Context) {
	ticker := time.NewTicker(d.interval)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := d.Prune(ctx); err != nil {
					slog.Error("Failed to prune archive", "error", err)
				}
			}
		}
	}()
}

// Prune deletes every top-level archive folder whose modification time is
// older than the retention and returns the removed folder names.
func (d *DefaultService) Prune(ctx context.Context) ([]string, error) {
	if d.cfg.Retention <= 0 {
		return nil, nil
	}

	entries, err := os.ReadDir(d.cfg.DirPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read archive dir")
	}

	cutoff := d.now().Add(-d.cfg.Retention)
	var removed []string
	for _, entry := range entries {
		if ctx.Err() != nil {
			return removed, ctx.Err()
		}
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			slog.Error("Failed to stat archive folder", "error", err, "name", entry.Name())
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(d.cfg.DirPath, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			slog.Error("Failed to remove archive folder", "error", err, "path", path)
			continue
		}
		removed = append(removed, entry.Name())
	}

	if len(removed) > 0 {
		slog.Info("Pruned archive folders", "count", len(removed))
	}
	return removed, nil
}
