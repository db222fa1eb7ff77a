package media

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDate = 1700000000 // 2023-11-14 UTC

func TestHasMedia(t *testing.T) {
	assert.False(t, HasMedia(nil))
	assert.False(t, HasMedia(&models.Message{Text: "hello"}))
	assert.True(t, HasMedia(&models.Message{Sticker: &models.Sticker{FileID: "x"}}))
	assert.True(t, HasMedia(&models.Message{Photo: []models.PhotoSize{{FileID: "x"}}}))
}

func TestExtractMedia_PhotoTakesLargest(t *testing.T) {
	msg := &models.Message{
		ID:   7,
		Date: testDate,
		Photo: []models.PhotoSize{
			{FileID: "small", FileUniqueID: "u-small", FileSize: 10},
			{FileID: "big", FileUniqueID: "u-big", FileSize: 1000},
		},
	}

	files := ExtractMedia(msg)
	require.Len(t, files, 1)
	assert.Equal(t, "photo_2023-11-14_7.jpg", files[0].Name)
	assert.Equal(t, KindPhoto, files[0].Kind)
	assert.Equal(t, "big", files[0].FileID)
	assert.Equal(t, "u-big", files[0].FileUniqueID)
	assert.EqualValues(t, 1000, files[0].Size)
}

func TestExtractMedia_Names(t *testing.T) {
	tests := []struct {
		name     string
		msg      *models.Message
		wantName string
		wantKind string
	}{
		{
			name:     "document keeps its name",
			msg:      &models.Message{ID: 1, Date: testDate, Document: &models.Document{FileID: "d", FileName: "model.stl"}},
			wantName: "model.stl",
			wantKind: KindDocument,
		},
		{
			name:     "document without name uses mime",
			msg:      &models.Message{ID: 2, Date: testDate, Document: &models.Document{FileID: "d", MimeType: "application/pdf"}},
			wantName: "document_2023-11-14_2.pdf",
			wantKind: KindDocument,
		},
		{
			name:     "voice",
			msg:      &models.Message{ID: 3, Date: testDate, Voice: &models.Voice{FileID: "v", MimeType: "audio/ogg"}},
			wantName: "voice_2023-11-14_3.ogg",
			wantKind: KindVoice,
		},
		{
			name:     "animated sticker",
			msg:      &models.Message{ID: 4, Date: testDate, Sticker: &models.Sticker{FileID: "s", IsAnimated: true}},
			wantName: "sticker_2023-11-14_4.tgs",
			wantKind: KindSticker,
		},
		{
			name:     "video note",
			msg:      &models.Message{ID: 5, Date: testDate, VideoNote: &models.VideoNote{FileID: "n"}},
			wantName: "video_note_2023-11-14_5.mp4",
			wantKind: KindVideoNote,
		},
		{
			name:     "unknown mime",
			msg:      &models.Message{ID: 6, Date: testDate, Audio: &models.Audio{FileID: "a", MimeType: "weird"}},
			wantName: "audio_2023-11-14_6.bin",
			wantKind: KindAudio,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := ExtractMedia(tt.msg)
			require.Len(t, files, 1)
			assert.Equal(t, tt.wantName, files[0].Name)
			assert.Equal(t, tt.wantKind, files[0].Kind)
		})
	}
}

func TestExtractMedia_AnimationNotDuplicated(t *testing.T) {
	msg := &models.Message{
		ID:        8,
		Date:      testDate,
		Document:  &models.Document{FileID: "same", FileName: "a.mp4"},
		Animation: &models.Animation{FileID: "same", FileName: "a.mp4"},
	}
	files := ExtractMedia(msg)
	require.Len(t, files, 1)
	assert.Equal(t, KindDocument, files[0].Kind)
}
