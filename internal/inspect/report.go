package inspect

import (
	"encoding/hex"
	"encoding/json"
	"strconv"

	"fileid-inspector/pkg/fileid"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FileReport is a printable view of a decoded file_id. 64-bit values are
// rendered as decimal strings so that JSON consumers do not lose precision.
type FileReport struct {
	Version       uint8        `yaml:"version" json:"version"`
	SubVersion    uint8        `yaml:"sub_version" json:"sub_version"`
	DCID          int32        `yaml:"dc_id" json:"dc_id"`
	Type          string       `yaml:"type" json:"type"`
	ID            string       `yaml:"id" json:"id"`
	AccessHash    string       `yaml:"access_hash" json:"access_hash"`
	FileReference string       `yaml:"file_reference,omitempty" json:"file_reference,omitempty"`
	URL           string       `yaml:"url,omitempty" json:"url,omitempty"`
	Photo         *PhotoReport `yaml:"photo,omitempty" json:"photo,omitempty"`
}

type PhotoReport struct {
	VolumeID             string `yaml:"volume_id" json:"volume_id"`
	LocalID              int32  `yaml:"local_id" json:"local_id"`
	Source               string `yaml:"source" json:"source"`
	Secret               string `yaml:"secret,omitempty" json:"secret,omitempty"`
	ThumbnailFileType    string `yaml:"thumbnail_file_type,omitempty" json:"thumbnail_file_type,omitempty"`
	ThumbnailSize        string `yaml:"thumbnail_size,omitempty" json:"thumbnail_size,omitempty"`
	ChatID               string `yaml:"chat_id,omitempty" json:"chat_id,omitempty"`
	ChatAccessHash       string `yaml:"chat_access_hash,omitempty" json:"chat_access_hash,omitempty"`
	StickerSetID         string `yaml:"sticker_set_id,omitempty" json:"sticker_set_id,omitempty"`
	StickerSetAccessHash string `yaml:"sticker_set_access_hash,omitempty" json:"sticker_set_access_hash,omitempty"`
}

type UniqueReport struct {
	Type     string `yaml:"type" json:"type"`
	URL      string `yaml:"url,omitempty" json:"url,omitempty"`
	VolumeID string `yaml:"volume_id,omitempty" json:"volume_id,omitempty"`
	LocalID  *int32 `yaml:"local_id,omitempty" json:"local_id,omitempty"`
	ID       string `yaml:"id,omitempty" json:"id,omitempty"`
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func NewFileReport(f fileid.FileID) FileReport {
	report := FileReport{
		Version:    f.Version,
		SubVersion: f.SubVersion,
		DCID:       f.DCID,
		Type:       f.Type.String(),
		ID:         itoa(f.ID),
		AccessHash: itoa(f.AccessHash),
		URL:        f.URL,
	}
	if f.HasFileReference() {
		report.FileReference = hex.EncodeToString(f.FileReference)
	}
	if f.Photo != nil {
		report.Photo = newPhotoReport(f.Photo)
	}
	return report
}

func newPhotoReport(p *fileid.PhotoInfo) *PhotoReport {
	report := &PhotoReport{
		VolumeID: itoa(p.VolumeID),
		LocalID:  p.LocalID,
	}
	if p.Source == nil {
		return report
	}
	report.Source = p.Source.Type().String()

	switch s := p.Source.(type) {
	case fileid.PhotoSizeSourceLegacy:
		report.Secret = itoa(s.Secret)
	case fileid.PhotoSizeSourceThumbnail:
		report.ThumbnailFileType = s.FileType.String()
		report.ThumbnailSize = s.ThumbnailSize
	case fileid.PhotoSizeSourceChatPhotoSmall:
		report.ChatID = itoa(s.ChatID)
		report.ChatAccessHash = itoa(s.ChatAccessHash)
	case fileid.PhotoSizeSourceChatPhotoBig:
		report.ChatID = itoa(s.ChatID)
		report.ChatAccessHash = itoa(s.ChatAccessHash)
	case fileid.PhotoSizeSourceStickerSetThumbnail:
		report.StickerSetID = itoa(s.StickerSetID)
		report.StickerSetAccessHash = itoa(s.StickerSetAccessHash)
	}
	return report
}

func NewUniqueReport(u fileid.UniqueFileID) UniqueReport {
	report := UniqueReport{Type: u.Type.String()}
	switch u.Type {
	case fileid.UniqueWeb:
		report.URL = u.URL
	case fileid.UniquePhoto:
		localID := u.LocalID
		report.VolumeID = itoa(u.VolumeID)
		report.LocalID = &localID
	case fileid.UniqueDocument:
		report.ID = itoa(u.ID)
	}
	return report
}

// Render serializes a report in the requested format.
func Render(v any, format Format) ([]byte, error) {
	switch format {
	case FormatYAML, "":
		out, err := yaml.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(err, "marshal yaml")
		}
		return out, nil
	case FormatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "marshal json")
		}
		return append(out, '\n'), nil
	default:
		return nil, errors.Errorf("unknown format %q", format)
	}
}
