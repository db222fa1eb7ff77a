package fileid

import (
	"unicode/utf8"

	"github.com/go-faster/errors"
)

// recordOverhead bounds everything in a file_id record except URL and file reference.
const recordOverhead = 96

// EncodeFileID serializes f into a file_id string.
func EncodeFileID(f FileID) (string, error) {
	if !f.Type.Valid() {
		return "", errors.Wrapf(ErrUnknownFileType, "encode type %d", f.Type)
	}

	w := NewWriter(recordOverhead + len(f.URL) + len(f.FileReference))
	typeID := int32(f.Type)
	if f.HasWebLocation() {
		typeID |= webLocationFlag
	}
	if f.HasFileReference() {
		typeID |= fileReferenceFlag
	}
	w.PutInt32(typeID)
	w.PutInt32(f.DCID)

	if f.HasWebLocation() {
		w.PutString(f.URL)
		w.PutLong(f.ID)
		w.PutLong(f.AccessHash)
		return finishFileID(w, f), nil
	}

	if f.HasFileReference() {
		w.PutBytes(f.FileReference)
	}
	w.PutLong(f.ID)
	w.PutLong(f.AccessHash)

	if f.Type.IsPhoto() {
		if err := writePhotoInfo(w, f); err != nil {
			return "", err
		}
	}

	return finishFileID(w, f), nil
}

func writePhotoInfo(w *Writer, f FileID) error {
	if f.Photo == nil {
		return errors.Wrapf(ErrInvalidEncodingState, "%s file id without photo info", f.Type)
	}
	if f.Photo.Source == nil {
		return errors.Wrapf(ErrInvalidEncodingState, "%s file id without photo size source", f.Type)
	}
	source := f.Photo.Source

	w.PutLong(f.Photo.VolumeID)
	if f.Version >= PersistentVersion {
		w.PutInt32(int32(source.Type()))
	} else if source.Type() != SourceLegacy {
		return errors.Wrapf(ErrInvalidEncodingState, "version %d cannot carry %s source", f.Version, source.Type())
	}

	switch s := source.(type) {
	case PhotoSizeSourceLegacy:
		w.PutLong(s.Secret)
	case PhotoSizeSourceThumbnail:
		size, n := utf8.DecodeRuneInString(s.ThumbnailSize)
		if n == 0 || n != len(s.ThumbnailSize) || size == utf8.RuneError {
			return errors.Wrapf(ErrInvalidEncodingState, "thumbnail size %q", s.ThumbnailSize)
		}
		w.PutInt32(int32(s.FileType))
		w.PutInt32(size)
	case PhotoSizeSourceChatPhotoSmall:
		w.PutLong(s.ChatID)
		w.PutLong(s.ChatAccessHash)
	case PhotoSizeSourceChatPhotoBig:
		w.PutLong(s.ChatID)
		w.PutLong(s.ChatAccessHash)
	case PhotoSizeSourceStickerSetThumbnail:
		w.PutLong(s.StickerSetID)
		w.PutLong(s.StickerSetAccessHash)
	default:
		return errors.Wrapf(ErrUnknownThumbnailSource, "encode source %T", source)
	}
	w.PutInt32(f.Photo.LocalID)
	return nil
}

// finishFileID compresses the record and appends the uncompressed version trailer.
func finishFileID(w *Writer, f FileID) string {
	data := rleEncode(w.Bytes())
	if f.Version >= PersistentVersion {
		data = append(data, f.SubVersion, f.Version)
	} else {
		data = append(data, f.Version)
	}
	return base64Encode(data)
}

// EncodeUniqueID serializes u into a file_unique_id string.
func EncodeUniqueID(u UniqueFileID) (string, error) {
	w := NewWriter(16 + len(u.URL))
	switch u.Type {
	case UniqueWeb:
		if u.URL == "" {
			return "", errors.Wrap(ErrInvalidEncodingState, "web unique id without url")
		}
		w.PutInt32(int32(u.Type))
		w.PutString(u.URL)
	case UniquePhoto:
		w.PutInt32(int32(u.Type))
		w.PutLong(u.VolumeID)
		w.PutInt32(u.LocalID)
	case UniqueDocument:
		w.PutInt32(int32(u.Type))
		w.PutLong(u.ID)
	default:
		return "", errors.Wrapf(ErrUnknownUniqueIDVariant, "encode %s", u.Type)
	}
	return base64Encode(rleEncode(w.Bytes())), nil
}

// Encode produces both identifiers of one file.
func Encode(f FileID, u UniqueFileID) (Pair, error) {
	fileID, err := EncodeFileID(f)
	if err != nil {
		return Pair{}, errors.Wrap(err, "file id")
	}
	uniqueID, err := EncodeUniqueID(u)
	if err != nil {
		return Pair{}, errors.Wrap(err, "file unique id")
	}
	return Pair{FileID: fileID, FileUniqueID: uniqueID}, nil
}
