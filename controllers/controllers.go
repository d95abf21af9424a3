package controllers

import (
	"database/sql"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/registry"
	"github.com/blogem/content-audit/repositories"
	"github.com/blogem/content-audit/services"
)

// Dependencies are the collaborators the controllers are built from
type Dependencies struct {
	Services  *services.Services
	Documents repositories.DocumentRepository
	Registry  registry.Registry
	DB        *sql.DB
	Redis     *redis.Client
	Logger    logrus.FieldLogger
	// AfterLogin is where the login callback sends the browser
	AfterLogin string
}

// Controllers holds all controller instances
type Controllers struct {
	Auth     *AuthController
	Settings *SettingsController
	Logs     *LogsController
	Content  *ContentController
	Health   *HealthController
}

// NewControllers creates and initializes all controller instances
func NewControllers(deps Dependencies) *Controllers {
	return &Controllers{
		Auth:     NewAuthController(deps.Logger, deps.AfterLogin),
		Settings: NewSettingsController(deps.Services, deps.Logger),
		Logs:     NewLogsController(deps.Services, deps.Logger),
		Content:  NewContentController(deps.Documents, deps.Registry, deps.Logger),
		Health:   NewHealthController(deps.DB, deps.Redis, deps.Logger),
	}
}
