package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFileQuery(t *testing.T) {
	seenAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	file := DBFile{
		FileUniqueID:     "AgAD5AMAAtoruFU",
		FileID:           "CAACAgUAAxkBAAIC82L4hsBPQiPQjtkuqmPUHUedC8zqAALkAwAC2iu4VUBhx3SHETeyHgQ",
		Kind:             "sticker",
		FileType:         "sticker",
		DCID:             5,
		ID:               6176735104241501156,
		AccessHash:       -5604991937761812160,
		HasFileReference: true,
		SeenAt:           seenAt,
	}

	query, args, err := saveFileQuery(file).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO inspected_files")
	assert.Contains(t, query, "$9")
	assert.NotContains(t, query, "?")
	assert.Contains(t, query, "on conflict (file_unique_id) do update")
	assert.Equal(t, file.values(), args)
}

func TestGetFileQuery(t *testing.T) {
	query, args, err := getFileQuery("AgAD5AMAAtoruFU").ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "FROM inspected_files")
	assert.Contains(t, query, "WHERE file_unique_id = $1")
	assert.Equal(t, []any{"AgAD5AMAAtoruFU"}, args)
}

func TestRecentFilesQuery(t *testing.T) {
	query, args, err := recentFilesQuery(10).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "ORDER BY seen_at desc")
	assert.Contains(t, query, "LIMIT 10")
	assert.Empty(t, args)
}

func TestDBFile_ColumnsMatchFields(t *testing.T) {
	var file DBFile
	assert.Len(t, file.values(), len(fileColumns))
	assert.Len(t, file.pointers(), len(fileColumns))
}
