package service

import (
	"github.com/MKhiriev/go-work-tracker/internal/config"
	"github.com/MKhiriev/go-work-tracker/internal/logger"
	"github.com/MKhiriev/go-work-tracker/internal/store"
)

type Services struct {
	AuthService  AuthService
	EntryService EntryService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg, logger),
		EntryService: NewEntryService(storages.EntryRepository, logger),
	}
}
