package main

import (
	"embed"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"photo_gallery/db"
	"photo_gallery/handlers"
	"photo_gallery/models"
	"photo_gallery/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:embed frontend/*
var frontendEmbed embed.FS

func main() {
	// Initialize key components
	db.Init()
	storage.Init()

	// Run Migrations
	if err := models.Migrate(db.DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	r := gin.Default()

	// CORS Setup
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// API Routes
	api := r.Group("/api")
	{
		api.GET("/photos", handlers.ListPhotos)
		api.POST("/photos", handlers.UploadPhoto)
		api.PUT("/photos/:filename", handlers.UpdatePhoto)
		api.DELETE("/photos/:filename", handlers.DeletePhoto)
	}

	// Uploaded blobs, read-only
	r.Static("/uploads", storage.Dir)

	// Serve Embedded Frontend
	fsys, err := fs.Sub(frontendEmbed, "frontend")
	if err != nil {
		log.Fatal("Failed to load frontend:", err)
	}

	r.StaticFileFS("/style.css", "style.css", http.FS(fsys))
	r.StaticFileFS("/app.js", "app.js", http.FS(fsys))

	r.GET("/", func(c *gin.Context) {
		c.Header("Content-Type", "text/html")
		content, err := fs.ReadFile(fsys, "index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to read index: "+err.Error())
			return
		}
		c.String(http.StatusOK, string(content))
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "1234"
	}

	log.Println("Server starting on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
