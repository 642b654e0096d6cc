// Package app assembles the database, object store and services shared by
// the commands.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"churchcms/internal/cleanup"
	"churchcms/internal/config"
	"churchcms/internal/database"
	"churchcms/internal/domain/activity"
	"churchcms/internal/domain/article"
	"churchcms/internal/domain/audiomessage"
	"churchcms/internal/domain/author"
	"churchcms/internal/domain/category"
	"churchcms/internal/domain/coordinator"
	"churchcms/internal/domain/memory"
	"churchcms/internal/domain/message"
	"churchcms/internal/domain/pastor"
	"churchcms/internal/domain/pastorcorner"
	"churchcms/internal/media"
	"churchcms/internal/pkg/logger"
	"churchcms/internal/server"
	"churchcms/internal/storage"
)

// Models lists every table the API owns, in migration order.
func Models() []interface{} {
	return []interface{}{
		&author.Author{},
		&article.Article{},
		&activity.Activity{},
		&memory.Memory{},
		&coordinator.Coordinator{},
		&message.Message{},
		&pastor.Pastor{},
		&pastorcorner.Post{},
		&category.Category{},
		&audiomessage.AudioMessage{},
		&cleanup.PendingBlobDeletion{},
	}
}

type Services struct {
	Authors       *author.Service
	Articles      *article.Service
	Activities    *activity.Service
	Memories      *memory.Service
	Coordinators  *coordinator.Service
	Messages      *message.Service
	Pastors       *pastor.Service
	PastorCorner  *pastorcorner.Service
	Categories    *category.Service
	AudioMessages *audiomessage.Service
}

type App struct {
	Config   *config.Config
	Log      *logger.Logger
	DB       *gorm.DB
	Store    storage.ObjectStore
	Local    *storage.LocalStore
	Outbox   *cleanup.Outbox
	Media    *media.Manager
	Services Services

	closers []func() error
}

// New connects and migrates the database, opens the configured object store
// and builds the services.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	a := &App{Config: cfg, Log: log, DB: db}
	a.closers = append(a.closers, func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})

	if err := database.Migrate(db, Models()...); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	if err := a.openStore(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}

	a.Outbox = cleanup.NewOutbox(db)
	a.Media = media.NewManager(a.Store, a.Outbox, log)
	a.Services = newServices(db, a.Media)
	return a, nil
}

func newServices(db *gorm.DB, m *media.Manager) Services {
	authors := author.NewService(db)
	activities := activity.NewService(db)
	coordinators := coordinator.NewService(db, m)
	pastors := pastor.NewService(db)
	categories := category.NewService(db, audiomessage.NewUsage(db))
	return Services{
		Authors:       authors,
		Articles:      article.NewService(db, authors, m),
		Activities:    activities,
		Memories:      memory.NewService(db, activities, m),
		Coordinators:  coordinators,
		Messages:      message.NewService(db, coordinators),
		Pastors:       pastors,
		PastorCorner:  pastorcorner.NewService(db, pastors),
		Categories:    categories,
		AudioMessages: audiomessage.NewService(db, categories, m),
	}
}

func (a *App) openStore(ctx context.Context) error {
	switch a.Config.StorageDriver {
	case config.StorageDriverGCS:
		gcs, err := storage.NewGCSStore(ctx, a.Log, storage.GCSConfig{
			Bucket:          a.Config.GCSBucket,
			CDNBaseURL:      a.Config.CDNBaseURL,
			EmulatorHost:    a.Config.EmulatorHost,
			CredentialsJSON: a.Config.CredentialsJSON,
		})
		if err != nil {
			return fmt.Errorf("open gcs store: %w", err)
		}
		a.Store = gcs
		a.closers = append(a.closers, gcs.Close)
	case config.StorageDriverLocal:
		local, err := storage.NewLocalStore(a.Config.LocalUploadDir, a.Config.LocalStaticPath, a.Config.PublicBaseURL)
		if err != nil {
			return fmt.Errorf("open local store: %w", err)
		}
		a.Store, a.Local = local, local
	case config.StorageDriverMemory:
		a.Store = storage.NewMemoryStore("memory")
	default:
		return fmt.Errorf("unknown storage driver %q", a.Config.StorageDriver)
	}
	a.Log.Info("object store ready", "driver", a.Config.StorageDriver)
	return nil
}

// Handlers returns every resource handler in mount order.
func (a *App) Handlers() []server.Registrar {
	s := a.Services
	return []server.Registrar{
		author.NewHandler(s.Authors),
		article.NewHandler(s.Articles),
		activity.NewHandler(s.Activities),
		memory.NewHandler(s.Memories),
		coordinator.NewHandler(s.Coordinators),
		message.NewHandler(s.Messages),
		pastor.NewHandler(s.Pastors),
		pastorcorner.NewHandler(s.PastorCorner),
		category.NewHandler(s.Categories),
		audiomessage.NewHandler(s.AudioMessages),
	}
}

func (a *App) Router() http.Handler {
	return server.NewRouter(server.Options{
		Log:         a.Log,
		DB:          a.DB,
		Outbox:      a.Outbox,
		CORSOrigins: a.Config.CORSAllowedOrigin,
		Local:       a.Local,
		Release:     a.Config.IsProduction(),
	}, a.Handlers()...)
}

func (a *App) CleanupWorker() *cleanup.Worker {
	return cleanup.NewWorker(a.Outbox, a.Store, a.Log, a.Config.CleanupInterval, a.Config.CleanupMaxAttempts)
}

// Close releases the store and database in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
