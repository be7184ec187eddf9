package handlers

import (
	"github.com/go-playground/validator/v10"

	"miniblog/internal/config"
	"miniblog/internal/service"
	"miniblog/internal/session"
)

// HealthChecker пингует хранилище для /health.
type HealthChecker interface {
	HealthCheck() error
}

type Handlers struct {
	AuthService    service.AuthService
	PostService    service.PostService
	CommentService service.CommentService
	Sessions       *session.Manager
	Renderer       *Renderer
	DB             HealthChecker
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(services *service.Service, sessions *session.Manager, renderer *Renderer, db HealthChecker, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService:    services.Auth,
		PostService:    services.Post,
		CommentService: services.Comment,
		Sessions:       sessions,
		Renderer:       renderer,
		DB:             db,
		Cfg:            cfg,
		Validate:       validator.New(),
	}
}
