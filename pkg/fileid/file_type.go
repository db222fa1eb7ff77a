package fileid

import "strconv"

// Flag bits carried by the category integer on the wire only.
const (
	webLocationFlag   = int32(1 << 24)
	fileReferenceFlag = int32(1 << 25)
)

type FileType int32

const (
	TypeThumbnail FileType = iota
	TypeChatPhoto
	TypePhoto
	TypeVoice
	TypeVideo
	TypeDocument
	TypeEncrypted
	TypeTemp
	TypeSticker
	TypeAudio
	TypeAnimation
	TypeEncryptedThumbnail
	TypeWallpaper
	TypeVideoNote
	TypeSecureRaw
	TypeSecure
	TypeBackground
	TypeDocumentAsFile
	typeSize
)

var fileTypeNames = [...]string{
	TypeThumbnail:          "thumbnail",
	TypeChatPhoto:          "chat_photo",
	TypePhoto:              "photo",
	TypeVoice:              "voice",
	TypeVideo:              "video",
	TypeDocument:           "document",
	TypeEncrypted:          "encrypted",
	TypeTemp:               "temp",
	TypeSticker:            "sticker",
	TypeAudio:              "audio",
	TypeAnimation:          "animation",
	TypeEncryptedThumbnail: "encrypted_thumbnail",
	TypeWallpaper:          "wallpaper",
	TypeVideoNote:          "video_note",
	TypeSecureRaw:          "secure_raw",
	TypeSecure:             "secure",
	TypeBackground:         "background",
	TypeDocumentAsFile:     "document_as_file",
}

// Valid reports whether t is one of the known categories.
func (t FileType) Valid() bool {
	return t >= TypeThumbnail && t < typeSize
}

// IsPhoto reports whether records of this category carry photo location fields.
func (t FileType) IsPhoto() bool {
	switch t {
	case TypeThumbnail, TypeChatPhoto, TypePhoto, TypeEncryptedThumbnail, TypeWallpaper:
		return true
	default:
		return false
	}
}

func (t FileType) String() string {
	if !t.Valid() {
		return "file_type(" + strconv.Itoa(int(t)) + ")"
	}
	return fileTypeNames[t]
}

// ParseFileType is the inverse of FileType.String for known categories.
func ParseFileType(s string) (FileType, bool) {
	for i, name := range fileTypeNames {
		if name == s {
			return FileType(i), true
		}
	}
	return 0, false
}

type UniqueType int32

const (
	UniqueWeb UniqueType = iota
	UniquePhoto
	UniqueDocument
	UniqueSecure
	UniqueEncrypted
	UniqueTemp
)

func (t UniqueType) String() string {
	switch t {
	case UniqueWeb:
		return "web"
	case UniquePhoto:
		return "photo"
	case UniqueDocument:
		return "document"
	case UniqueSecure:
		return "secure"
	case UniqueEncrypted:
		return "encrypted"
	case UniqueTemp:
		return "temp"
	default:
		return "unique_type(" + strconv.Itoa(int(t)) + ")"
	}
}
