package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "video-streamer/docs"

	"video-streamer/internal/delivery/http/handlers"
	"video-streamer/internal/delivery/http/routers"
	"video-streamer/internal/infrastructure/processor"
	"video-streamer/internal/infrastructure/queue"
	infra_repo "video-streamer/internal/infrastructure/repositories"
	"video-streamer/internal/infrastructure/storage"
	"video-streamer/internal/pkg/config"
	"video-streamer/internal/usecases"
	consts "video-streamer/pkg/constants"
	"video-streamer/pkg/errors/i18n"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
)

func main() {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	if err := i18n.Load(cfg.Server.Locale); err != nil {
		log.Printf("i18n yüklenemedi (%s), hata kodları mesaj olarak dönecek: %v", cfg.Server.Locale, err)
	}

	// Redis opsiyonel: sadece metadata probe cache için kullanılıyor
	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		})
	}

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Media.MaxFileSize),
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Repositories & Services
	localStorage := storage.NewLocalStorage(cfg.Media.VideosDir)
	segmentRepo := infra_repo.NewSegmentRepository(cfg.Media.SegmentsDir, cfg.Media.SegmentSeconds)
	ffmpegProc := processor.NewFFmpegProcessor()

	thumbPool := queue.NewThumbnailWorkerPool(2, ffmpegProc, cfg.Media.ThumbsDir)

	videoService := usecases.NewVideoService(localStorage, segmentRepo, ffmpegProc, rdb, cfg.Media.SegmentSeconds)
	uploadService := usecases.NewUploadService(localStorage, thumbPool)

	videoHandler := handlers.NewVideoHandler(videoService, cfg.Media.ThumbsDir)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	// Routes
	routers.SetupUploadRoutes(app, uploadHandler)
	routers.SetupVideoRoutes(app, videoHandler)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": consts.StatusOK})
	})

	// Yarım kalmış segmentasyon çıktıları için periyodik temizlik
	cleanupUC := usecases.NewCleanupService(cfg.Media.SegmentsDir)
	cr := cron.New(cron.WithSeconds())
	cr.AddFunc("0 */5 * * * *", func() {
		if err := cleanupUC.CleanupStaleWorkDirs(24 * time.Hour); err != nil {
			log.Printf("Error cleaning up stale work dirs: %v", err)
		}
	})
	cr.Start() // cron job'u başlatır

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server başlatılamadı: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Print("Shutdown sinyali alındı, server kapatılıyor...")

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		log.Fatalf("Server düzgün kapatılamadı: %v", err)
	}

	cr.Stop()
	thumbPool.Shutdown()
	if rdb != nil {
		rdb.Close()
	}
	log.Println("Server düzgün bir şekilde kapatıldı")
}
