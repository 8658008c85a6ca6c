package app

import (
	"log/slog"

	"gallerysync/internal/domain"
	"gallerysync/internal/services/synchronizer"
	"gallerysync/internal/store"
)

// Wire bundles the stores and services for the CLI.
type Wire struct {
	Config    Config
	Images    domain.ImageSource
	Documents domain.DocumentStore
	Gallery   domain.GalleryService
	Log       *slog.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log *slog.Logger) (*Wire, error) {
	cfg = cfg.Resolve()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	// File-based adapters
	images := store.NewImageDirSource(cfg.GalleryDir)
	docs := store.NewDocumentFileStore(cfg.IndexPath)

	svc := synchronizer.New(images, docs, cfg.Indent, log)

	return &Wire{
		Config:    cfg,
		Images:    images,
		Documents: docs,
		Gallery:   svc,
		Log:       log,
	}, nil
}
