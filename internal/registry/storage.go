package registry

import (
	"context"
	"database/sql"
	"fmt"

	"fileid-inspector/pkg"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-faster/errors"
)

var ErrNotFound = errors.New("file is not registered")

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repo interface {
	Migrate(ctx context.Context) error
	SaveFile(ctx context.Context, file DBFile) error
	GetFile(ctx context.Context, fileUniqueID string) (*DBFile, error)
	GetRecentFiles(ctx context.Context, limit uint64) ([]DBFile, error)
}

type DefaultRepo struct {
	db *sql.DB
}

func NewDefaultRepo(db *sql.DB) Repo {
	return &DefaultRepo{db: db}
}

// Schema creates the registry table when it is missing.
const Schema = `create table if not exists inspected_files (
	file_unique_id text primary key,
	file_id text not null,
	kind text not null,
	file_type text not null,
	dc_id integer not null,
	id bigint not null,
	access_hash bigint not null,
	has_file_reference boolean not null,
	seen_at timestamptz not null
)`

func (d *DefaultRepo) Migrate(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, Schema); err != nil {
		return &pkg.ErrDBProcedure{
			Cause: "failed to create schema",
			Err:   err,
		}
	}
	return nil
}

func (d *DefaultRepo) SaveFile(ctx context.Context, file DBFile) error {
	query, args, err := saveFileQuery(file).ToSql()
	if err != nil {
		return &pkg.ErrDBProcedure{Cause: "failed to build query", Err: err}
	}
	if _, err := d.db.ExecContext(ctx, query, args...); err != nil {
		return &pkg.ErrDBProcedure{
			Cause: "failed to save file",
			Info:  fmt.Sprintf("query: %s", query),
			Err:   err,
		}
	}
	return nil
}

func (d *DefaultRepo) GetFile(ctx context.Context, fileUniqueID string) (*DBFile, error) {
	var file DBFile
	err := getFileQuery(fileUniqueID).RunWith(d.db).QueryRowContext(ctx).Scan(file.pointers()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &pkg.ErrDBProcedure{
			Cause: "failed to select file",
			Info:  fmt.Sprintf("fileUniqueID: %s", fileUniqueID),
			Err:   err,
		}
	}
	return &file, nil
}

func (d *DefaultRepo) GetRecentFiles(ctx context.Context, limit uint64) ([]DBFile, error) {
	rows, err := recentFilesQuery(limit).RunWith(d.db).QueryContext(ctx)
	if err != nil {
		return nil, &pkg.ErrDBProcedure{Cause: "failed to select recent files", Err: err}
	}
	defer rows.Close()

	var files []DBFile
	for rows.Next() {
		var file DBFile
		if err := rows.Scan(file.pointers()...); err != nil {
			return nil, &pkg.ErrDBProcedure{Cause: "failed to scan file", Err: err}
		}
		files = append(files, file)
	}
	if err := rows.Err(); err != nil {
		return nil, &pkg.ErrDBProcedure{Cause: "failed to iterate files", Err: err}
	}
	return files, nil
}

func saveFileQuery(file DBFile) sq.InsertBuilder {
	return psql.Insert(filesTable).
		Columns(fileColumns...).
		Values(file.values()...).
		Suffix(`on conflict (file_unique_id) do update set
			file_id = excluded.file_id,
			kind = excluded.kind,
			has_file_reference = excluded.has_file_reference,
			seen_at = excluded.seen_at`)
}

func getFileQuery(fileUniqueID string) sq.SelectBuilder {
	return psql.Select(fileColumns...).
		From(filesTable).
		Where(sq.Eq{"file_unique_id": fileUniqueID})
}

func recentFilesQuery(limit uint64) sq.SelectBuilder {
	return psql.Select(fileColumns...).
		From(filesTable).
		OrderBy("seen_at desc").
		Limit(limit)
}
