package fileid

import "github.com/go-faster/errors"

// DecodeFileID parses a file_id string.
func DecodeFileID(fileID string) (FileID, error) {
	data, err := base64Decode(fileID)
	if err != nil {
		return FileID{}, err
	}
	if len(data) == 0 {
		return FileID{}, errors.Wrap(ErrMalformedInput, "empty file id")
	}

	result := FileID{Version: data[len(data)-1]}
	data = data[:len(data)-1]
	if result.Version >= PersistentVersion {
		if len(data) == 0 {
			return FileID{}, errors.Wrap(ErrMalformedInput, "missing sub version")
		}
		result.SubVersion = data[len(data)-1]
		data = data[:len(data)-1]
	}

	record, err := rleDecode(data)
	if err != nil {
		return FileID{}, err
	}
	r := NewReader(record)

	typeID, err := r.Int32()
	if err != nil {
		return FileID{}, errors.Wrap(err, "type")
	}
	hasWebLocation := typeID&webLocationFlag != 0
	hasFileReference := typeID&fileReferenceFlag != 0
	typeID &^= webLocationFlag | fileReferenceFlag
	result.Type = FileType(typeID)
	if !result.Type.Valid() {
		return FileID{}, errors.Wrapf(ErrUnknownFileType, "decode type %d", typeID)
	}

	if result.DCID, err = r.Int32(); err != nil {
		return FileID{}, errors.Wrap(err, "dc id")
	}

	if hasWebLocation {
		if result.URL, err = r.Text(); err != nil {
			return FileID{}, errors.Wrap(err, "url")
		}
		if result.ID, err = r.Long(); err != nil {
			return FileID{}, errors.Wrap(err, "id")
		}
		if result.AccessHash, err = r.Long(); err != nil {
			return FileID{}, errors.Wrap(err, "access hash")
		}
		return result, nil
	}

	if hasFileReference {
		if result.FileReference, err = r.Bytes(); err != nil {
			return FileID{}, errors.Wrap(err, "file reference")
		}
	}
	if result.ID, err = r.Long(); err != nil {
		return FileID{}, errors.Wrap(err, "id")
	}
	if result.AccessHash, err = r.Long(); err != nil {
		return FileID{}, errors.Wrap(err, "access hash")
	}

	if result.Type.IsPhoto() {
		if result.Photo, err = readPhotoInfo(r, result.Version); err != nil {
			return FileID{}, err
		}
	}

	return result, nil
}

func readPhotoInfo(r *Reader, version uint8) (*PhotoInfo, error) {
	photoInfo := &PhotoInfo{}

	var err error
	if photoInfo.VolumeID, err = r.Long(); err != nil {
		return nil, errors.Wrap(err, "volume id")
	}

	sourceType := SourceLegacy
	if version >= PersistentVersion {
		v, err := r.Int32()
		if err != nil {
			return nil, errors.Wrap(err, "photo size source")
		}
		sourceType = SourceType(v)
	}

	switch sourceType {
	case SourceLegacy:
		secret, err := r.Long()
		if err != nil {
			return nil, errors.Wrap(err, "secret")
		}
		photoInfo.Source = PhotoSizeSourceLegacy{Secret: secret}
	case SourceThumbnail:
		fileType, err := r.Int32()
		if err != nil {
			return nil, errors.Wrap(err, "thumbnail file type")
		}
		size, err := r.Int32()
		if err != nil {
			return nil, errors.Wrap(err, "thumbnail size")
		}
		photoInfo.Source = PhotoSizeSourceThumbnail{
			FileType:      FileType(fileType),
			ThumbnailSize: string(rune(size)),
		}
	case SourceChatPhotoSmall, SourceChatPhotoBig:
		chatID, err := r.Long()
		if err != nil {
			return nil, errors.Wrap(err, "chat id")
		}
		chatAccessHash, err := r.Long()
		if err != nil {
			return nil, errors.Wrap(err, "chat access hash")
		}
		chat := ChatPhoto{ChatID: chatID, ChatAccessHash: chatAccessHash}
		if sourceType == SourceChatPhotoSmall {
			photoInfo.Source = PhotoSizeSourceChatPhotoSmall{ChatPhoto: chat}
		} else {
			photoInfo.Source = PhotoSizeSourceChatPhotoBig{ChatPhoto: chat}
		}
	case SourceStickerSetThumbnail:
		id, err := r.Long()
		if err != nil {
			return nil, errors.Wrap(err, "sticker set id")
		}
		accessHash, err := r.Long()
		if err != nil {
			return nil, errors.Wrap(err, "sticker set access hash")
		}
		photoInfo.Source = PhotoSizeSourceStickerSetThumbnail{
			StickerSetID:         id,
			StickerSetAccessHash: accessHash,
		}
	default:
		return nil, errors.Wrapf(ErrUnknownThumbnailSource, "decode source %d", int32(sourceType))
	}

	if photoInfo.LocalID, err = r.Int32(); err != nil {
		return nil, errors.Wrap(err, "local id")
	}
	return photoInfo, nil
}

// DecodeUniqueID parses a file_unique_id string.
func DecodeUniqueID(uniqueID string) (UniqueFileID, error) {
	data, err := base64Decode(uniqueID)
	if err != nil {
		return UniqueFileID{}, err
	}
	record, err := rleDecode(data)
	if err != nil {
		return UniqueFileID{}, err
	}
	r := NewReader(record)

	typeID, err := r.Int32()
	if err != nil {
		return UniqueFileID{}, errors.Wrap(err, "type")
	}
	result := UniqueFileID{Type: UniqueType(typeID)}

	switch result.Type {
	case UniqueWeb:
		if result.URL, err = r.Text(); err != nil {
			return UniqueFileID{}, errors.Wrap(err, "url")
		}
	case UniquePhoto:
		if result.VolumeID, err = r.Long(); err != nil {
			return UniqueFileID{}, errors.Wrap(err, "volume id")
		}
		if result.LocalID, err = r.Int32(); err != nil {
			return UniqueFileID{}, errors.Wrap(err, "local id")
		}
	case UniqueDocument:
		if result.ID, err = r.Long(); err != nil {
			return UniqueFileID{}, errors.Wrap(err, "id")
		}
	default:
		return UniqueFileID{}, errors.Wrapf(ErrUnknownUniqueIDVariant, "decode %s", result.Type)
	}
	return result, nil
}

// Decode parses both identifiers of one file.
func Decode(fileID, uniqueID string) (FileID, UniqueFileID, error) {
	f, err := DecodeFileID(fileID)
	if err != nil {
		return FileID{}, UniqueFileID{}, errors.Wrap(err, "file id")
	}
	u, err := DecodeUniqueID(uniqueID)
	if err != nil {
		return FileID{}, UniqueFileID{}, errors.Wrap(err, "file unique id")
	}
	return f, u, nil
}
