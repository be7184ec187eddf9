package app

import (
	"fmt"

	"miniblog/internal/config"
	"miniblog/internal/database"
	handlers "miniblog/internal/handler"
	"miniblog/internal/i18n"
	"miniblog/internal/repository"
	"miniblog/internal/service"
	"miniblog/internal/session"
	"miniblog/internal/storage"
)

// App собирает зависимости приложения. Ошибки возвращаются наверх:
// завершить процесс может только main.
func App(cfg *config.Config) (*database.DB, *handlers.Handlers, error) {
	if cfg.SessionSecret == "" {
		return nil, nil, fmt.Errorf("SESSION_SECRET не установлен в .env файле")
	}

	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}

	// upload storage backend
	var store storage.Storage
	switch cfg.StorageBackend {
	case "minio":
		store, err = storage.NewMinIOStorage(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("не удалось инициализировать MinIO: %w", err)
		}
	default:
		store = storage.NewDiskStorage(cfg.UploadDir)
	}

	// translation catalogs, loaded once
	translator, err := i18n.Load(cfg.LangDir, cfg.Languages, cfg.DefaultLang)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось загрузить переводы: %w", err)
	}

	renderer, err := handlers.NewRenderer(cfg.TemplatesDir, translator)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось загрузить шаблоны: %w", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg, store)
	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)

	handler := handlers.NewHandlers(services, sessions, renderer, db, cfg)

	return db, handler, nil
}
