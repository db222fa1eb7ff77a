package file

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"fileid-inspector/internal/pkg/config"

	"go.uber.org/atomic"
)

type Service interface {
	DownloadAndSave(ctx context.Context, folderPath string, files []RequestFile, downloader Downloader) chan DownloadResult
	Wait()
}

type DefaultService struct {
	cfg *config.FileServiceCfg
	wg  sync.WaitGroup
}

func NewDefaultService(cfg *config.FileServiceCfg) Service {
	return &DefaultService{
		cfg: cfg,
	}
}

// DownloadAndSave downloads files into folderPath concurrently. The returned
// channel yields one result per file and is closed when all of them are done.
func (d *DefaultService) DownloadAndSave(ctx context.Context, folderPath string, files []RequestFile, downloader Downloader) chan DownloadResult {
	wg := sync.WaitGroup{}
	counter := atomic.NewInt32(0)
	result := make(chan DownloadResult, len(files))
	sem := make(chan struct{}, max(d.cfg.Workers, 1))

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for _, file := range files {
			sem <- struct{}{}
			wg.Add(1)
			go func(f RequestFile) {
				defer func() {
					<-sem
					wg.Done()
				}()
				result <- d.processFile(ctx, folderPath, f, len(files), counter, downloader)
			}(file)
		}
		wg.Wait()
		close(result)
	}()

	return result
}

func (d *DefaultService) processFile(ctx context.Context, folderPath string, file RequestFile, total int, counter *atomic.Int32, downloader Downloader) DownloadResult {
	filePath := filepath.Join(d.cfg.DirPath, folderPath, FileName(file.Name))
	res := DownloadResult{
		Result: &ResponseFile{Name: file.Name, Path: filePath, FileID: file.FileID},
		Index:  int(counter.Inc()),
		Total:  total,
	}

	dst, err := prepareFilepath(filePath)
	if err != nil {
		res.Err = &ErrPrepareFilepath{Err: err}
		return res
	}

	err = downloader.DownloadFile(ctx, file.FileID, dst)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if err := os.Remove(filePath); err != nil {
			slog.Error("Failed to remove partial file", "error", err, "path", filePath)
		}
		res.Err = &ErrDownloadFailed{Err: err}
		return res
	}

	checksum, err := calculateChecksum(filePath)
	if err != nil {
		res.Err = ErrCalculateChecksum
		return res
	}
	res.Result.Checksum = checksum
	return res
}

// Wait blocks until every running DownloadAndSave batch has finished.
func (d *DefaultService) Wait() {
	d.wg.Wait()
}
