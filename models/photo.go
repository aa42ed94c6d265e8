package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

const (
	DefaultCategory = "personal"
	DefaultTag      = "uploaded"
)

// Photo is the stored metadata row for one uploaded image. The numeric ID is
// internal; clients address photos by the generated Filename.
type Photo struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	Filename     string    `gorm:"uniqueIndex" json:"filename"`
	OriginalName string    `json:"originalName"`
	Caption      string    `json:"caption"`
	Category     string    `json:"category"`
	Tags         string    `json:"tags"` // Serialized JSON array, kept as raw text in SQLite
	UploadDate   time.Time `gorm:"autoCreateTime" json:"uploadDate"`
}

// PhotoView is the client-facing shape, with defaults applied and tags
// deserialized.
type PhotoView struct {
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	Caption    string    `json:"caption"`
	Category   string    `json:"category"`
	Tags       []string  `json:"tags"`
	UploadDate time.Time `json:"uploadDate"`
}

// View maps a row to the client shape. urlPrefix is the static mount the blob
// is served under.
func (p Photo) View(urlPrefix string) PhotoView {
	caption := p.Caption
	if caption == "" {
		caption = p.OriginalName
	}
	category := p.Category
	if category == "" {
		category = DefaultCategory
	}
	return PhotoView{
		Filename:   p.Filename,
		URL:        urlPrefix + p.Filename,
		Caption:    caption,
		Category:   category,
		Tags:       DecodeTags(p.Tags),
		UploadDate: p.UploadDate,
	}
}

// DecodeTags turns the stored tags column back into a string slice. Empty
// columns get the default tag; raw text that is not a JSON string array is
// kept as a single tag so reads never fail on legacy rows.
func DecodeTags(raw string) []string {
	if raw == "" {
		return []string{DefaultTag}
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return []string{raw}
	}
	return tags
}

// EncodeTags serializes tags for storage.
func EncodeTags(tags []string) string {
	b, _ := json.Marshal(tags)
	return string(b)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Photo{})
}
