// @title Glowlog API
// @description API for the personal health journal "Glowlog"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/limbo/glowlog/internal/advisor"
	"github.com/limbo/glowlog/internal/api"
	"github.com/limbo/glowlog/internal/imagestore"
	"github.com/limbo/glowlog/internal/repository"
	"github.com/limbo/glowlog/internal/service"
	"github.com/limbo/glowlog/pkg/cleanup"
	"github.com/limbo/glowlog/pkg/config"
)

func init() {
	service.InitValidator()
}

func setUpLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}

func newStorage(cfg *config.Config) repository.DocumentStorageI {
	switch driver := strings.ToLower(cfg.GetStringOr("STORAGE_DRIVER", "sqlite")); driver {
	case "sqlite":
		repo, err := repository.NewSQLiteDocumentsRepo(cfg.GetStringOr("SQLITE_PATH", "./data/journal.db"))
		if err != nil {
			log.Fatal("sqlite storage error: " + err.Error())
		}
		return repo
	case "postgres":
		dbCfg := repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
		}
		if err := repository.MigratePostgres(&dbCfg, cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")); err != nil {
			log.Fatal(err.Error())
		}
		return repository.NewDocumentsRepo(&dbCfg)
	case "redis":
		return repository.NewRedisDocumentsRepo(&repository.RedisCfg{
			Address:  cfg.GetString("REDIS_ADDRESS"),
			Password: cfg.GetString("REDIS_PASSWORD"),
			DB:       cfg.GetInt("REDIS_DB", 0),
		})
	default:
		log.Fatal("unknown storage driver: " + driver)
	}
	return nil
}

func newImageStore(cfg *config.Config) service.ImageStoreI {
	switch store := strings.ToLower(cfg.GetStringOr("IMAGE_STORE", "inline")); store {
	case "inline":
		return imagestore.NewInlineStore()
	case "s3":
		return imagestore.NewS3Store(&imagestore.S3Cfg{
			Region:    cfg.GetString("S3_REGION"),
			Bucket:    cfg.GetString("S3_BUCKET"),
			PublicURL: cfg.GetString("S3_PUBLIC_URL"),
		})
	default:
		log.Fatal("unknown image store: " + store)
	}
	return nil
}

func main() {
	cfg := config.New()
	setUpLogger(cfg.GetStringOr("LOG_LEVEL", "info"))
	defer cleanup.CleanUp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := service.NewDocumentStore(newStorage(cfg), cfg.GetString("STORAGE_KEY"))
	journalService := service.NewJournalService(store, newImageStore(cfg))
	if err := journalService.Init(ctx); err != nil {
		slog.Error("loading journal failed", slog.String("error", err.Error()))
		return
	}

	suggestionService := service.NewSuggestionService(journalService, advisor.New(&advisor.Config{
		APIKey:     cfg.GetString("AI_API_KEY"),
		BaseURL:    cfg.GetString("AI_BASE_URL"),
		Model:      cfg.GetString("AI_MODEL"),
		MaxRetries: 2,
	}))

	serv := api.New(&api.ServicesList{
		JournalService:    journalService,
		SuggestionService: suggestionService,
	})
	if err := serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", "127.0.0.1:8080")); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}
