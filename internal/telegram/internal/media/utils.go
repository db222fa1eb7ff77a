package media

import (
	"fmt"
	"strings"
	"time"

	"fileid-inspector/internal/pkg/model"

	"github.com/go-telegram/bot/models"
)

const (
	KindAudio     = "audio"
	KindPhoto     = "photo"
	KindDocument  = "document"
	KindVideo     = "video"
	KindVideoNote = "video_note"
	KindVoice     = "voice"
	KindSticker   = "sticker"
	KindAnimation = "animation"
)

func HasMedia(message *models.Message) bool {
	if message == nil {
		return false
	}
	return message.Audio != nil ||
		len(message.Photo) > 0 ||
		message.Document != nil ||
		message.Video != nil ||
		message.VideoNote != nil ||
		message.Voice != nil ||
		message.Sticker != nil ||
		message.Animation != nil
}

// ExtractMedia returns every attachment of the message. For photos only the
// largest size is taken.
func ExtractMedia(message *models.Message) []model.File {
	var result []model.File
	dateStr := time.Unix(int64(message.Date), 0).UTC().Format("2006-01-02")

	if message.Audio != nil {
		fileName := message.Audio.FileName
		if strings.TrimSpace(fileName) == "" {
			ext := getExtFromMIME(message.Audio.MimeType)
			fileName = fmt.Sprintf("audio_%s_%d%s", dateStr, message.ID, ext)
		}
		result = append(result, model.File{
			Name:         fileName,
			Kind:         KindAudio,
			Size:         uint64(message.Audio.FileSize),
			FileID:       message.Audio.FileID,
			FileUniqueID: message.Audio.FileUniqueID,
		})
	}

	if len(message.Photo) > 0 {
		photo := message.Photo[len(message.Photo)-1]
		result = append(result, model.File{
			Name:         fmt.Sprintf("photo_%s_%d.jpg", dateStr, message.ID),
			Kind:         KindPhoto,
			Size:         uint64(photo.FileSize),
			FileID:       photo.FileID,
			FileUniqueID: photo.FileUniqueID,
		})
	}

	if message.Document != nil {
		fileName := message.Document.FileName
		if strings.TrimSpace(fileName) == "" {
			ext := getExtFromMIME(message.Document.MimeType)
			fileName = fmt.Sprintf("document_%s_%d%s", dateStr, message.ID, ext)
		}
		result = append(result, model.File{
			Name:         fileName,
			Kind:         KindDocument,
			Size:         uint64(message.Document.FileSize),
			FileID:       message.Document.FileID,
			FileUniqueID: message.Document.FileUniqueID,
		})
	}

	if message.Video != nil {
		fileName := message.Video.FileName
		if strings.TrimSpace(fileName) == "" {
			ext := getExtFromMIME(message.Video.MimeType)
			fileName = fmt.Sprintf("video_%s_%d%s", dateStr, message.ID, ext)
		}
		result = append(result, model.File{
			Name:         fileName,
			Kind:         KindVideo,
			Size:         uint64(message.Video.FileSize),
			FileID:       message.Video.FileID,
			FileUniqueID: message.Video.FileUniqueID,
		})
	}

	if message.VideoNote != nil {
		result = append(result, model.File{
			Name:         fmt.Sprintf("video_note_%s_%d.mp4", dateStr, message.ID),
			Kind:         KindVideoNote,
			Size:         uint64(message.VideoNote.FileSize),
			FileID:       message.VideoNote.FileID,
			FileUniqueID: message.VideoNote.FileUniqueID,
		})
	}

	if message.Voice != nil {
		ext := getExtFromMIME(message.Voice.MimeType)
		result = append(result, model.File{
			Name:         fmt.Sprintf("voice_%s_%d%s", dateStr, message.ID, ext),
			Kind:         KindVoice,
			Size:         uint64(message.Voice.FileSize),
			FileID:       message.Voice.FileID,
			FileUniqueID: message.Voice.FileUniqueID,
		})
	}

	if message.Sticker != nil {
		ext := ".webp"
		switch {
		case message.Sticker.IsAnimated:
			ext = ".tgs"
		case message.Sticker.IsVideo:
			ext = ".webm"
		}
		result = append(result, model.File{
			Name:         fmt.Sprintf("sticker_%s_%d%s", dateStr, message.ID, ext),
			Kind:         KindSticker,
			Size:         uint64(message.Sticker.FileSize),
			FileID:       message.Sticker.FileID,
			FileUniqueID: message.Sticker.FileUniqueID,
		})
	}

	// Bot API duplicates animations into Document for older clients.
	if message.Animation != nil && message.Document == nil {
		fileName := message.Animation.FileName
		if strings.TrimSpace(fileName) == "" {
			ext := getExtFromMIME(message.Animation.MimeType)
			fileName = fmt.Sprintf("animation_%s_%d%s", dateStr, message.ID, ext)
		}
		result = append(result, model.File{
			Name:         fileName,
			Kind:         KindAnimation,
			Size:         uint64(message.Animation.FileSize),
			FileID:       message.Animation.FileID,
			FileUniqueID: message.Animation.FileUniqueID,
		})
	}

	return result
}

func getExtFromMIME(mimeType string) string {
	mimeMap := map[string]string{
		"audio/mpeg":      ".mp3",
		"audio/ogg":       ".ogg",
		"audio/mp4":       ".m4a",
		"video/mp4":       ".mp4",
		"video/quicktime": ".mov",
		"video/x-msvideo": ".avi",
		"video/webm":      ".webm",
		"application/pdf": ".pdf",
		"image/jpeg":      ".jpg",
		"image/png":       ".png",
		"image/gif":       ".gif",
		"image/webp":      ".webp",
	}

	if ext, ok := mimeMap[mimeType]; ok {
		return ext
	}

	parts := strings.Split(mimeType, "/")
	if len(parts) == 2 && parts[1] != "" {
		return "." + parts[1]
	}

	return ".bin"
}
