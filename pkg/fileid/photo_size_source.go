package fileid

import "strconv"

type SourceType int32

const (
	SourceLegacy SourceType = iota
	SourceThumbnail
	SourceChatPhotoSmall
	SourceChatPhotoBig
	SourceStickerSetThumbnail
)

func (t SourceType) String() string {
	switch t {
	case SourceLegacy:
		return "legacy"
	case SourceThumbnail:
		return "thumbnail"
	case SourceChatPhotoSmall:
		return "chat_photo_small"
	case SourceChatPhotoBig:
		return "chat_photo_big"
	case SourceStickerSetThumbnail:
		return "sticker_set_thumbnail"
	default:
		return "source(" + strconv.Itoa(int(t)) + ")"
	}
}

// PhotoSizeSource describes where a photo-category record got its image from.
// The set of implementations is closed.
type PhotoSizeSource interface {
	Type() SourceType
	photoSizeSource()
}

type PhotoSizeSourceLegacy struct {
	Secret int64
}

func (PhotoSizeSourceLegacy) Type() SourceType { return SourceLegacy }
func (PhotoSizeSourceLegacy) photoSizeSource() {}

type PhotoSizeSourceThumbnail struct {
	// FileType is the category of the file the thumbnail belongs to.
	FileType FileType
	// ThumbnailSize is the single-letter size code ("s", "m", "x", ...).
	ThumbnailSize string
}

func (PhotoSizeSourceThumbnail) Type() SourceType { return SourceThumbnail }
func (PhotoSizeSourceThumbnail) photoSizeSource() {}

type ChatPhoto struct {
	ChatID         int64
	ChatAccessHash int64
}

type PhotoSizeSourceChatPhotoSmall struct {
	ChatPhoto
}

func (PhotoSizeSourceChatPhotoSmall) Type() SourceType { return SourceChatPhotoSmall }
func (PhotoSizeSourceChatPhotoSmall) photoSizeSource() {}

type PhotoSizeSourceChatPhotoBig struct {
	ChatPhoto
}

func (PhotoSizeSourceChatPhotoBig) Type() SourceType { return SourceChatPhotoBig }
func (PhotoSizeSourceChatPhotoBig) photoSizeSource() {}

type PhotoSizeSourceStickerSetThumbnail struct {
	StickerSetID         int64
	StickerSetAccessHash int64
}

func (PhotoSizeSourceStickerSetThumbnail) Type() SourceType { return SourceStickerSetThumbnail }
func (PhotoSizeSourceStickerSetThumbnail) photoSizeSource() {}
