package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jpp0ca/PlaylistUploader-API/internal/adapters"
	handler "github.com/jpp0ca/PlaylistUploader-API/internal/adapters/http"
	"github.com/jpp0ca/PlaylistUploader-API/internal/adapters/session"
	"github.com/jpp0ca/PlaylistUploader-API/internal/adapters/store"
	"github.com/jpp0ca/PlaylistUploader-API/internal/app"
	"github.com/jpp0ca/PlaylistUploader-API/internal/config"
	"github.com/jpp0ca/PlaylistUploader-API/internal/logging"
	"github.com/jpp0ca/PlaylistUploader-API/internal/m3u"
	"github.com/jpp0ca/PlaylistUploader-API/internal/ports"

	_ "github.com/jpp0ca/PlaylistUploader-API/docs"
)

// @title			PlaylistUploader API
// @version		1.0
// @description	API for uploading M3U playlists, saving them by file name and activating them as the session's channel set.

// @contact.name	PlaylistUploader API Support
// @license.name	MIT

// @host		localhost:8080
// @BasePath	/
func main() {
	cfg := config.Load()
	logging.SetLevel(logging.ParseLevel(cfg.LogLevel))

	ctx := context.Background()

	// Playlist storage
	var playlistStore ports.PlaylistStore
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		playlistStore = store.NewMemoryStore()
	default:
		sqliteStore, err := store.OpenSQLite(ctx, cfg.DatabasePath)
		if err != nil {
			logging.Fatal("Failed to open playlist store: %v", err)
		}
		defer sqliteStore.Close()
		playlistStore = sqliteStore
	}

	// Supported upload formats
	parser := m3u.NewParser()
	formats := adapters.NewFormatRegistry()
	formats.Register(".m3u", parser)
	formats.Register(".m3u8", parser)

	// Session state
	channels := session.NewChannelStore()
	navigator := session.NewNavigator()

	// Create application service
	ingestion := app.NewService(formats, playlistStore, channels, navigator, app.Options{
		NavigationRoute:    cfg.NavigationRoute,
		NavigateOnce:       cfg.NavigateOnce,
		StrictSingleUpload: cfg.StrictSingleUpload,
	})

	// Setup HTTP server
	r := gin.Default()
	r.MaxMultipartMemory = cfg.MaxUploadBytes
	h := handler.NewHandler(ingestion, formats, navigator, cfg.MaxUploadBytes)
	h.RegisterRoutes(r)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := ":" + cfg.Port
	log.Printf("Starting PlaylistUploader API on %s", addr)
	log.Printf("Store: %s", cfg.StoreDriver)
	log.Printf("Accepted formats: %v", formats.Available())
	log.Printf("Swagger UI: http://localhost%s/swagger/index.html", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
