package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/globalreach-edu/consultancy-api/internal/config"
	"github.com/globalreach-edu/consultancy-api/internal/db"
	"github.com/globalreach-edu/consultancy-api/internal/media"
	"github.com/globalreach-edu/consultancy-api/internal/middleware"
	"github.com/globalreach-edu/consultancy-api/internal/routes"
)

func main() {
	cfg := config.Load()

	database := db.NewDB(cfg)

	storage, err := buildStorage(cfg)
	if err != nil {
		log.Fatalf("storage init: %v", err)
	}

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.StorageDriver == "local" {
		r.Static("/uploads", cfg.UploadDir)
	}

	routes.RegisterRoutes(r, database, cfg, storage)

	log.Printf("listening on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func buildStorage(cfg *config.Config) (media.Storage, error) {
	if cfg.StorageDriver == "s3" {
		return media.NewS3Storage(media.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Endpoint:  cfg.S3Endpoint,
		}), nil
	}
	return media.NewLocalStorage(cfg.UploadDir)
}
