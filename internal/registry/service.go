package registry

import (
	"context"
	"log/slog"
	"time"

	"fileid-inspector/internal/pkg/model"
	"fileid-inspector/pkg/fileid"

	"github.com/go-faster/errors"
)

type Service interface {
	Register(ctx context.Context, file model.File) (*model.Record, error)
	Get(ctx context.Context, fileUniqueID string) (*model.Record, error)
	Recent(ctx context.Context, limit uint64) ([]model.Record, error)
}

type DefaultService struct {
	repo Repo
	now  func() time.Time
}

func NewDefaultService(repo Repo) Service {
	return &DefaultService{
		repo: repo,
		now:  time.Now,
	}
}

// Register decodes both identifiers of file and stores the result.
func (d *DefaultService) Register(ctx context.Context, file model.File) (*model.Record, error) {
	info, _, err := fileid.Decode(file.FileID, file.FileUniqueID)
	if err != nil {
		slog.Error("Failed to decode file identifiers", "error", err, "fileUniqueID", file.FileUniqueID)
		return nil, errors.Wrap(err, "decode")
	}

	dbFile := DBFile{
		FileUniqueID:     file.FileUniqueID,
		FileID:           file.FileID,
		Kind:             file.Kind,
		FileType:         info.Type.String(),
		DCID:             info.DCID,
		ID:               info.ID,
		AccessHash:       info.AccessHash,
		HasFileReference: info.HasFileReference(),
		SeenAt:           d.now().UTC(),
	}

	if err := d.repo.SaveFile(ctx, dbFile); err != nil {
		slog.Error("Failed to save file", "error", err, "fileUniqueID", file.FileUniqueID)
		return nil, err
	}

	record := toRecord(dbFile)
	return &record, nil
}

func (d *DefaultService) Get(ctx context.Context, fileUniqueID string) (*model.Record, error) {
	dbFile, err := d.repo.GetFile(ctx, fileUniqueID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Error("Error retrieving file", "error", err, "fileUniqueID", fileUniqueID)
		}
		return nil, err
	}
	record := toRecord(*dbFile)
	return &record, nil
}

func (d *DefaultService) Recent(ctx context.Context, limit uint64) ([]model.Record, error) {
	dbFiles, err := d.repo.GetRecentFiles(ctx, limit)
	if err != nil {
		slog.Error("Error retrieving recent files", "error", err)
		return nil, err
	}

	records := make([]model.Record, len(dbFiles))
	for i, file := range dbFiles {
		records[i] = toRecord(file)
	}
	return records, nil
}

func toRecord(file DBFile) model.Record {
	return model.Record{
		FileUniqueID:     file.FileUniqueID,
		FileID:           file.FileID,
		Kind:             file.Kind,
		Type:             file.FileType,
		DCID:             file.DCID,
		ID:               file.ID,
		AccessHash:       file.AccessHash,
		HasFileReference: file.HasFileReference,
		SeenAt:           file.SeenAt,
	}
}
