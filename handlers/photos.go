package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"regexp"
	"time"

	"photo_gallery/db"
	"photo_gallery/models"
	"photo_gallery/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MaxUploadSize bounds a single upload to 5 MiB.
const MaxUploadSize = 5 << 20

var allowedExt = regexp.MustCompile(`\.(jpg|jpeg|png|gif)$`)

// generateFilename builds the storage key: a time-derived token plus the
// upload's original extension. The timestamp is the external identifier for
// the photo from here on.
func generateFilename(originalName string) string {
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
}

// ListPhotos returns every photo, most recent upload first.
func ListPhotos(c *gin.Context) {
	var photos []models.Photo
	if result := db.DB.Order("upload_date desc, id desc").Find(&photos); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	views := make([]models.PhotoView, 0, len(photos))
	for _, p := range photos {
		views = append(views, p.View(storage.URLPrefix))
	}
	c.JSON(http.StatusOK, views)
}

// UploadPhoto validates and stores a multipart upload, then inserts its
// metadata row. Validation failures reject the request before any bytes hit
// disk or the database.
func UploadPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	if !allowedExt.MatchString(fileHeader.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image files are allowed!"})
		return
	}
	if fileHeader.Size > MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	filename := generateFilename(fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, storage.PathFor(filename)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	caption := c.PostForm("caption")
	if caption == "" {
		caption = fileHeader.Filename
	}
	category := c.PostForm("category")
	if category == "" {
		category = models.DefaultCategory
	}
	tags := c.PostForm("tags")
	if tags == "" {
		tags = models.EncodeTags([]string{models.DefaultTag})
	}

	photo := models.Photo{
		Filename:     filename,
		OriginalName: fileHeader.Filename,
		Caption:      caption,
		Category:     category,
		Tags:         tags,
	}
	if result := db.DB.Create(&photo); result.Error != nil {
		// The blob stays behind; create is not transactional across disk and DB.
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, photo.View(storage.URLPrefix))
}

type updatePhotoInput struct {
	Caption  string          `json:"caption"`
	Category string          `json:"category"`
	Tags     json.RawMessage `json:"tags"`
}

// tagsColumn normalizes the update body's tags field to the serialized text
// stored in the column. A JSON string is stored as its contents; an array
// literal is stored verbatim.
func tagsColumn(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// UpdatePhoto overwrites caption, category and tags for a filename. Omitted
// fields are written empty, not left unchanged, so callers resend the full
// metadata set. A filename matching no row still reports success.
func UpdatePhoto(c *gin.Context) {
	filename := c.Param("filename")

	var input updatePhotoInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	result := db.DB.Model(&models.Photo{}).Where("filename = ?", filename).Updates(map[string]interface{}{
		"caption":  input.Caption,
		"category": input.Category,
		"tags":     tagsColumn(input.Tags),
	})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Photo updated successfully"})
}

// DeletePhoto removes the row and, best effort, the blob. The blob unlink is
// attempted first and its failure is only logged; the row delete decides the
// response.
func DeletePhoto(c *gin.Context) {
	filename := c.Param("filename")

	var photo models.Photo
	if result := db.DB.First(&photo, "filename = ?", filename); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	storage.Remove(photo.Filename)

	if result := db.DB.Delete(&photo); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted successfully"})
}
