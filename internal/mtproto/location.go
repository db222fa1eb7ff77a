package mtproto

import (
	"fileid-inspector/pkg/fileid"

	"github.com/go-faster/errors"
	"github.com/gotd/td/tg"
)

var (
	ErrWebLocation      = errors.New("web location files are not served by upload.getFile")
	ErrMissingPhotoInfo = errors.New("photo file id has no photo info")
)

// Bot API dialog ids of channels and supergroups are -(1e12 + channel id).
const channelDialogOffset = 1_000_000_000_000

// InputFileLocation converts a decoded file_id into the location accepted by upload.getFile.
func InputFileLocation(f fileid.FileID) (tg.InputFileLocationClass, error) {
	if f.HasWebLocation() {
		return nil, ErrWebLocation
	}

	switch f.Type {
	case fileid.TypeEncrypted:
		return &tg.InputEncryptedFileLocation{ID: f.ID, AccessHash: f.AccessHash}, nil
	case fileid.TypeSecure, fileid.TypeSecureRaw:
		return &tg.InputSecureFileLocation{ID: f.ID, AccessHash: f.AccessHash}, nil
	}

	if !f.Type.IsPhoto() {
		return &tg.InputDocumentFileLocation{
			ID:            f.ID,
			AccessHash:    f.AccessHash,
			FileReference: f.FileReference,
		}, nil
	}

	if f.Photo == nil || f.Photo.Source == nil {
		return nil, ErrMissingPhotoInfo
	}

	switch source := f.Photo.Source.(type) {
	case fileid.PhotoSizeSourceLegacy:
		return &tg.InputPhotoLegacyFileLocation{
			ID:            f.ID,
			AccessHash:    f.AccessHash,
			FileReference: f.FileReference,
			VolumeID:      f.Photo.VolumeID,
			LocalID:       int(f.Photo.LocalID),
			Secret:        source.Secret,
		}, nil
	case fileid.PhotoSizeSourceThumbnail:
		if source.FileType == fileid.TypePhoto {
			return &tg.InputPhotoFileLocation{
				ID:            f.ID,
				AccessHash:    f.AccessHash,
				FileReference: f.FileReference,
				ThumbSize:     source.ThumbnailSize,
			}, nil
		}
		return &tg.InputDocumentFileLocation{
			ID:            f.ID,
			AccessHash:    f.AccessHash,
			FileReference: f.FileReference,
			ThumbSize:     source.ThumbnailSize,
		}, nil
	case fileid.PhotoSizeSourceChatPhotoSmall:
		return &tg.InputPeerPhotoFileLocation{
			Peer:    dialogPeer(source.ChatPhoto),
			PhotoID: f.ID,
		}, nil
	case fileid.PhotoSizeSourceChatPhotoBig:
		return &tg.InputPeerPhotoFileLocation{
			Big:     true,
			Peer:    dialogPeer(source.ChatPhoto),
			PhotoID: f.ID,
		}, nil
	case fileid.PhotoSizeSourceStickerSetThumbnail:
		return &tg.InputStickerSetThumb{
			Stickerset: &tg.InputStickerSetID{
				ID:         source.StickerSetID,
				AccessHash: source.StickerSetAccessHash,
			},
			ThumbVersion: int(f.Photo.LocalID),
		}, nil
	default:
		return nil, errors.Wrapf(fileid.ErrUnknownThumbnailSource, "location for %T", source)
	}
}

// dialogPeer maps a Bot API dialog id onto the matching input peer.
func dialogPeer(chat fileid.ChatPhoto) tg.InputPeerClass {
	switch {
	case chat.ChatID > 0:
		return &tg.InputPeerUser{UserID: chat.ChatID, AccessHash: chat.ChatAccessHash}
	case chat.ChatID <= -channelDialogOffset:
		return &tg.InputPeerChannel{ChannelID: -chat.ChatID - channelDialogOffset, AccessHash: chat.ChatAccessHash}
	default:
		return &tg.InputPeerChat{ChatID: -chat.ChatID}
	}
}
