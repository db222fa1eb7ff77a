package inspect

import (
	"encoding/json"
	"testing"

	"fileid-inspector/pkg/fileid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewFileReport_ChatPhoto(t *testing.T) {
	f, err := fileid.DecodeFileID("AQADBQADZq8xG6uF-FQAEAIAAyGEcyoBAANi-pbYnH388wAEIAQ")
	require.NoError(t, err)

	report := NewFileReport(f)
	assert.Equal(t, "chat_photo", report.Type)
	assert.Equal(t, int32(5), report.DCID)
	assert.Equal(t, "6122790663352332134", report.ID)
	require.NotNil(t, report.Photo)
	assert.Equal(t, "chat_photo_small", report.Photo.Source)
	assert.Equal(t, "5007180833", report.Photo.ChatID)
	assert.Equal(t, "-865678915759834526", report.Photo.ChatAccessHash)
	assert.Empty(t, report.FileReference)
}

func TestNewFileReport_FileReference(t *testing.T) {
	report := NewFileReport(fileid.FileID{Type: fileid.TypeDocument, FileReference: []byte{0x01, 0xab}})
	assert.Equal(t, "01ab", report.FileReference)
	assert.Nil(t, report.Photo)
}

func TestNewUniqueReport(t *testing.T) {
	tests := []struct {
		name   string
		unique fileid.UniqueFileID
		check  func(t *testing.T, r UniqueReport)
	}{
		{
			name:   "web",
			unique: fileid.UniqueFileID{Type: fileid.UniqueWeb, URL: "https://example.com"},
			check: func(t *testing.T, r UniqueReport) {
				assert.Equal(t, "web", r.Type)
				assert.Equal(t, "https://example.com", r.URL)
				assert.Nil(t, r.LocalID)
			},
		},
		{
			name:   "photo",
			unique: fileid.UniqueFileID{Type: fileid.UniquePhoto, VolumeID: -5, LocalID: 0},
			check: func(t *testing.T, r UniqueReport) {
				assert.Equal(t, "-5", r.VolumeID)
				require.NotNil(t, r.LocalID)
				assert.Equal(t, int32(0), *r.LocalID)
			},
		},
		{
			name:   "document",
			unique: fileid.UniqueFileID{Type: fileid.UniqueDocument, ID: 77},
			check: func(t *testing.T, r UniqueReport) {
				assert.Equal(t, "77", r.ID)
				assert.Empty(t, r.VolumeID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, NewUniqueReport(tt.unique))
		})
	}
}

func TestRender(t *testing.T) {
	report := NewFileReport(fileid.FileID{Version: 4, SubVersion: 32, DCID: 2, Type: fileid.TypeVideo, ID: -1})

	out, err := Render(report, FormatJSON)
	require.NoError(t, err)
	var fromJSON FileReport
	require.NoError(t, json.Unmarshal(out, &fromJSON))
	assert.Equal(t, report, fromJSON)

	out, err = Render(report, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "type: video")
	var fromYAML FileReport
	require.NoError(t, yaml.Unmarshal(out, &fromYAML))
	assert.Equal(t, report, fromYAML)

	_, err = Render(report, "toml")
	assert.Error(t, err)
}
