package main

import (
	"fmt"
	"os"

	"ttb/internal/config"
	"ttb/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment from TTB_ENV
func GetEnvironment() Environment {
	switch os.Getenv("TTB_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	case "production":
		return Production
	default:
		// Default to production for safety
		return Production
	}
}

// StoreFactory creates store instances based on environment
type StoreFactory struct {
	env Environment
	cfg *config.Config
}

// NewStoreFactory creates a new store factory for the given environment
func NewStoreFactory(env Environment, cfg *config.Config) *StoreFactory {
	return &StoreFactory{env: env, cfg: cfg}
}

// CreateStore creates a store instance based on the current environment
func (sf *StoreFactory) CreateStore() (sqlite.Store, error) {
	switch sf.env {
	case Development:
		return sf.createDevelopmentStore()
	case Testing:
		return sf.createTestingStore()
	case Production:
		return sf.createProductionStore()
	default:
		return sf.createProductionStore()
	}
}

// createDevelopmentStore uses a local database file in the working directory
func (sf *StoreFactory) createDevelopmentStore() (sqlite.Store, error) {
	store, err := sqlite.New("ttb.db")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development database: %w", err)
	}
	return store, nil
}

// createTestingStore uses an in-memory database
func (sf *StoreFactory) createTestingStore() (sqlite.Store, error) {
	store, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize testing database: %w", err)
	}
	return store, nil
}

// createProductionStore uses the configured database location, creating the
// directory on first run
func (sf *StoreFactory) createProductionStore() (sqlite.Store, error) {
	if err := os.MkdirAll(sf.cfg.Database.Dir, os.FileMode(sf.cfg.Database.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	store, err := sqlite.New(sf.cfg.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize production database: %w", err)
	}
	return store, nil
}
