package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecodeTags(t *testing.T) {
	assert.Equal(t, []string{"uploaded"}, DecodeTags(""))
	assert.Equal(t, []string{"a", "b"}, DecodeTags(`["a","b"]`))

	// Raw text already in the column stays readable as a single tag
	assert.Equal(t, []string{"holiday"}, DecodeTags("holiday"))
	assert.Equal(t, []string{"[1,2]"}, DecodeTags("[1,2]"))
}

func TestEncodeTags(t *testing.T) {
	assert.Equal(t, `["a","b"]`, EncodeTags([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, DecodeTags(EncodeTags([]string{"a", "b"})))
}

func TestViewAppliesDefaults(t *testing.T) {
	p := Photo{
		Filename:     "1700000000000000000.png",
		OriginalName: "dog.png",
		UploadDate:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	v := p.View("/uploads/")

	assert.Equal(t, "/uploads/1700000000000000000.png", v.URL)
	assert.Equal(t, "dog.png", v.Caption)
	assert.Equal(t, "personal", v.Category)
	assert.Equal(t, []string{"uploaded"}, v.Tags)
	assert.Equal(t, p.UploadDate, v.UploadDate)
}

func TestViewKeepsExplicitValues(t *testing.T) {
	p := Photo{
		Filename:     "1700000000000000001.jpg",
		OriginalName: "IMG_0001.jpg",
		Caption:      "Sunset",
		Category:     "nature",
		Tags:         `["golden","hour"]`,
	}
	v := p.View("/uploads/")

	assert.Equal(t, "Sunset", v.Caption)
	assert.Equal(t, "nature", v.Category)
	assert.Equal(t, []string{"golden", "hour"}, v.Tags)
}
