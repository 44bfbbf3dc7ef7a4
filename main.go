package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/biharidelicacies/marketplace-api/auth"
	"github.com/biharidelicacies/marketplace-api/config"
	orderControllers "github.com/biharidelicacies/marketplace-api/controllers/order"
	"github.com/biharidelicacies/marketplace-api/logger"
	"github.com/biharidelicacies/marketplace-api/middleware"
	"github.com/biharidelicacies/marketplace-api/routes"
	"github.com/biharidelicacies/marketplace-api/session"
	"github.com/biharidelicacies/marketplace-api/store"
	"github.com/biharidelicacies/marketplace-api/upload"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer zlog.Sync()

	zlog.Info("✅ Starting application...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Record store: MongoDB when reachable, flat files otherwise
	records, err := store.Open(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatalf("❌ Failed to open record store: %v", err)
	}
	zlog.Infof("🗄️ Record store backend: %s", records.Backend())

	if cfg.SeedDemoData {
		if err := store.Seed(ctx, records, zlog); err != nil {
			zlog.Errorf("❌ Seeding demo data failed: %v", err)
		}
	}

	codec, err := session.NewCodec(cfg.SessionSecret)
	if err != nil {
		zlog.Fatalf("❌ %v", err)
	}
	if cfg.SessionSecret == "" {
		zlog.Warn("SESSION_SECRET not set, sessions will not survive a restart")
	}

	if err := os.MkdirAll(cfg.UploadDir, os.ModePerm); err != nil {
		zlog.Fatalf("❌ Failed to create upload folder: %v", err)
	}
	hub := orderControllers.NewHub(zlog)

	deps := routes.Deps{
		Config:  cfg,
		Log:     zlog,
		Store:   records,
		Gateway: auth.NewGateway(records, session.NewRegistry(), zlog),
		Codec:   codec,
		Sink:    upload.NewSink(cfg.UploadDir),
		Hub:     hub,
	}

	// Gin setup
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(zlog))
	r.MaxMultipartMemory = cfg.MaxUploadMB << 20

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.APIKeyHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static(upload.DefaultURLPrefix, cfg.UploadDir)

	routes.SetupRoutes(r, deps)

	if cfg.UploadBackupDir != "" {
		go upload.BackupSchedule{
			Src:       cfg.UploadDir,
			Dest:      cfg.UploadBackupDir,
			Retention: cfg.UploadBackupRetention,
			Hour:      cfg.UploadBackupHour,
			Log:       zlog,
		}.Run(ctx)
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		zlog.Infof("🚀 Server running on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	zlog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Errorf("❌ Server shutdown: %v", err)
	}
	if err := records.Close(shutdownCtx); err != nil {
		zlog.Errorf("❌ Closing record store: %v", err)
	}
}
