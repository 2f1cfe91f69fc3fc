package media

import (
	"strings"
	"time"
)

// Image is the metadata record for an uploaded asset. The binary itself is
// served by the media host; File holds the path below MEDIA_BASE_URL.
type Image struct {
	ID     string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title  string `gorm:"not null" json:"title"`
	File   string `gorm:"not null" json:"file"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// URL resolves the public URL of the asset against the given media base.
// Absolute file paths pass through untouched.
func (img *Image) URL(mediaBase string) string {
	if strings.HasPrefix(img.File, "http://") || strings.HasPrefix(img.File, "https://") {
		return img.File
	}
	return strings.TrimRight(mediaBase, "/") + "/" + strings.TrimLeft(img.File, "/")
}
