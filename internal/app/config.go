package app

import (
	"fmt"
	"os"
	"path/filepath"

	"gallerysync/internal/gallery"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Root       string // site root, e.g. the repository checkout
	IndexPath  string // target document; defaults to <Root>/index.html
	GalleryDir string // image directory; defaults to <Root>/assets/gallery
	Indent     string // indentation used when the start marker has none
	LogLevel   string // debug, info, warn or error
	LogFormat  string // text or json
}

// DefaultConfig returns the configuration taken from the environment, with
// built-in fallbacks for anything unset.
func DefaultConfig() Config {
	return Config{
		Root:       envOr("GALLERYSYNC_ROOT", "."),
		IndexPath:  os.Getenv("GALLERYSYNC_INDEX"),
		GalleryDir: os.Getenv("GALLERYSYNC_GALLERY"),
		Indent:     envOr("GALLERYSYNC_INDENT", gallery.DefaultIndent),
		LogLevel:   envOr("GALLERYSYNC_LOG_LEVEL", "warn"),
		LogFormat:  envOr("GALLERYSYNC_LOG_FORMAT", "text"),
	}
}

// Resolve fills the document and gallery paths from Root where unset.
func (c Config) Resolve() Config {
	if c.Root == "" {
		c.Root = "."
	}
	if c.IndexPath == "" {
		c.IndexPath = filepath.Join(c.Root, "index.html")
	}
	if c.GalleryDir == "" {
		c.GalleryDir = filepath.Join(c.Root, "assets", "gallery")
	}
	return c
}

// Validate rejects settings the logger cannot honour.
func (c Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.LogFormat)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
