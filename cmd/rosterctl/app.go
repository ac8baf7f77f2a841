package main

import (
	"fmt"
	"io"

	"prayer-roster-backend/internal/config"
	"prayer-roster-backend/internal/database"
	"prayer-roster-backend/internal/logger"
	"prayer-roster-backend/internal/repository"
	"prayer-roster-backend/internal/service"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// app bundles the services the commands drive and the resources to release afterwards
type app struct {
	teams   service.TeamServiceInterface
	slots   service.SlotServiceInterface
	exports service.ExportServiceInterface
	closers []io.Closer
}

type opener func() (*app, error)

type dbCloser struct{ db *gorm.DB }

func (c dbCloser) Close() error { return database.Close(c.db) }

func openApp() (*app, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logSink := logger.Setup(cfg.LogLevel, logger.FileConfig{Filename: cfg.LogFile})

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		_ = logSink.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	a := newApp(db, service.SettingsFromConfig(cfg))
	a.closers = append(a.closers, dbCloser{db}, logSink)
	return a, nil
}

func newApp(db *gorm.DB, settings service.RosterSettings) *app {
	store := repository.NewStore(db)
	validator := service.NewValidator()
	return &app{
		teams:   service.NewTeamService(store, validator),
		slots:   service.NewSlotService(store, validator, settings),
		exports: service.NewExportService(store, settings),
	}
}

func (a *app) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
