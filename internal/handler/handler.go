package handlers

import (
	"github.com/go-playground/validator/v10"

	"gearshift/internal/config"
	"gearshift/internal/repository"
	"gearshift/internal/service"
	"gearshift/internal/view"
)

type Handlers struct {
	PageService    service.PageService
	Sessions       repository.SessionRepository
	Renderer       *view.Renderer
	Cfg            *config.Config
	Validate       *validator.Validate
	UploadsEnabled bool
}

func NewHandlers(repo *repository.Repository, service *service.Service, renderer *view.Renderer, config *config.Config) *Handlers {
	return &Handlers{
		PageService:    service.Page,
		Sessions:       repo.Session,
		Renderer:       renderer,
		Cfg:            config,
		Validate:       validator.New(),
		UploadsEnabled: config.MinIO.Enabled(),
	}
}
