package services

import (
	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/registry"
	"github.com/blogem/content-audit/repositories"
)

// Services holds all service instances
type Services struct {
	Settings SettingsService
	Audit    AuditService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, reg registry.Registry, logger logrus.FieldLogger) *Services {
	return &Services{
		Settings: NewSettingsService(repos.Settings, reg, logger),
		Audit:    NewAuditService(repos.Audit, logger),
	}
}
