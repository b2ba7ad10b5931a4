package cli

import (
	"ttb/internal/billing"
	"ttb/internal/catalog"
	"ttb/internal/config"
	"ttb/internal/repository/sqlite"
)

// App bundles the services the commands operate on
type App struct {
	store      sqlite.Store
	catalog    *catalog.Manager
	aggregator *billing.Aggregator
	config     *config.Config
	errors     *ErrorHandler
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(store sqlite.Store, cfg *config.Config) *App {
	return &App{
		store:      store,
		catalog:    catalog.NewManager(store),
		aggregator: billing.NewAggregator(store),
		config:     cfg,
		errors:     NewErrorHandler(),
	}
}
