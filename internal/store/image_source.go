package store

import (
	"context"
	"os"
	"strings"

	"gallerysync/internal/domain"
	"gallerysync/internal/gallery"
)

// ImageDirSource lists the gallery images found in a directory.
type ImageDirSource struct {
	dir string
}

// NewImageDirSource returns an ImageDirSource rooted at dir.
func NewImageDirSource(dir string) *ImageDirSource {
	return &ImageDirSource{dir: dir}
}

// Dir returns the directory being listed.
func (s *ImageDirSource) Dir() string { return s.dir }

// ListImages returns the regular files in the directory with an allowed
// image extension, in gallery order.
func (s *ImageDirSource) ListImages(ctx context.Context) ([]domain.ImageFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &domain.IOError{Op: "read dir", Path: s.dir, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || !gallery.IsImage(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	gallery.SortNames(names)

	out := make([]domain.ImageFile, 0, len(names))
	for _, n := range names {
		_, ext := gallery.SplitExt(n)
		out = append(out, domain.ImageFile{Name: n, Ext: strings.ToLower(ext)})
	}
	return out, nil
}

// Compile-time assertion that ImageDirSource implements domain.ImageSource.
var _ domain.ImageSource = (*ImageDirSource)(nil)
