package service

import (
	"time"

	"gearshift/internal/config"
	"gearshift/internal/repository"
	"gearshift/internal/storage"
)

type Service struct {
	Page PageService
}

// NewService wires the services. images may be nil when uploads are disabled.
func NewService(rep *repository.Repository, cfg *config.Config, images storage.ImageStorage) *Service {
	return &Service{
		Page: NewPageService(rep.Session, images, cfg, time.Now),
	}
}
