package synchronizer

import (
	"context"
	"fmt"
	"log/slog"

	"gallerysync/internal/crypto"
	"gallerysync/internal/domain"
	"gallerysync/internal/gallery"
)

// Service regenerates the gallery block of a document.
//
// A run:
//   - Lists the qualifying images in gallery order.
//   - Loads the document and finds its marker region.
//   - Renders the slides and splices them into the region.
//   - Writes the document back if, and only if, its bytes changed.
type Service struct {
	images        domain.ImageSource
	docs          domain.DocumentStore
	defaultIndent string
	log           *slog.Logger
}

// New constructs a Service. defaultIndent is used when the start marker has
// no indentation of its own; a nil logger discards output.
func New(
	images domain.ImageSource,
	docs domain.DocumentStore,
	defaultIndent string,
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{
		images:        images,
		docs:          docs,
		defaultIndent: defaultIndent,
		log:           log,
	}
}

// Sync rewrites the document's gallery block from the images on disk.
//
// With no qualifying images the document is left untouched and the result
// is marked Empty. A document without gallery markers is a NotFoundError
// and nothing is written.
func (s *Service) Sync(ctx context.Context) (domain.Result, error) {
	p, err := s.prepare(ctx)
	if err != nil || p.res.Empty {
		return p.res, err
	}
	if !p.res.Changed() {
		s.log.Info("gallery already up to date", "path", p.doc.Path, "slides", p.res.Slides,
			"digest", crypto.Fingerprint(p.res.Before))
		return p.res, nil
	}
	saved, err := s.docs.SaveDocument(ctx, p.next)
	if err != nil {
		return p.res, fmt.Errorf("saving gallery: %w", err)
	}
	p.res.Written = true
	p.res.After = saved.Digest
	s.log.Info("gallery updated", "path", saved.Path, "slides", p.res.Slides,
		"before", crypto.Fingerprint(p.res.Before), "after", crypto.Fingerprint(p.res.After))
	return p.res, nil
}

// Check renders the gallery block in memory and compares it with the
// document. It never writes. An out of date block is an OutOfDateError
// listing the images without a slide and the slides without an image.
func (s *Service) Check(ctx context.Context) (domain.Result, error) {
	p, err := s.prepare(ctx)
	if err != nil || p.res.Empty || !p.res.Changed() {
		return p.res, err
	}

	current, err := gallery.ParseSlides(gallery.Inner(string(p.doc.Content), p.region))
	if err != nil {
		return p.res, err
	}
	missing, stale := diffSlides(gallery.Slides(p.names), current)
	return p.res, &domain.OutOfDateError{Path: p.doc.Path, Missing: missing, Stale: stale}
}

// List returns the slides a sync would render, in order.
func (s *Service) List(ctx context.Context) ([]domain.Slide, error) {
	names, err := s.imageNames(ctx)
	if err != nil {
		return nil, err
	}
	return gallery.Slides(names), nil
}

// pass carries the in-memory state of one run up to the write.
type pass struct {
	res    domain.Result
	doc    domain.Document
	region domain.MarkerRegion
	names  []string
	next   []byte
}

func (s *Service) prepare(ctx context.Context) (pass, error) {
	names, err := s.imageNames(ctx)
	if err != nil {
		return pass{}, err
	}
	if len(names) == 0 {
		s.log.Warn("no images found, existing gallery markup left untouched")
		return pass{res: domain.Result{Empty: true}}, nil
	}

	doc, err := s.docs.LoadDocument(ctx)
	if err != nil {
		return pass{}, fmt.Errorf("loading document: %w", err)
	}
	s.log.Debug("document loaded", "path", doc.Path, "bytes", len(doc.Content),
		"digest", crypto.Fingerprint(doc.Digest))

	content := string(doc.Content)
	region, ok := gallery.Locate(content)
	if !ok {
		return pass{}, &domain.NotFoundError{What: "gallery markers", Path: doc.Path}
	}
	s.log.Debug("markers located", "start", region.Start, "end", region.End,
		"indent", len(region.Indent))

	next := []byte(gallery.Replace(content, region, names, s.defaultIndent))
	return pass{
		res: domain.Result{
			Slides: len(names),
			Before: doc.Digest,
			After:  crypto.Digest(next),
		},
		doc:    doc,
		region: region,
		names:  names,
		next:   next,
	}, nil
}

func (s *Service) imageNames(ctx context.Context) ([]string, error) {
	images, err := s.images.ListImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing images: %w", err)
	}
	names := make([]string, 0, len(images))
	for _, img := range images {
		names = append(names, img.Name)
	}
	s.log.Debug("images listed", "count", len(names))
	return names, nil
}

// diffSlides compares slides by source path.
func diffSlides(want, have []domain.Slide) (missing, stale []string) {
	seen := make(map[string]bool, len(have))
	for _, h := range have {
		seen[h.Path] = true
	}
	expected := make(map[string]bool, len(want))
	for _, w := range want {
		expected[w.Path] = true
		if !seen[w.Path] {
			missing = append(missing, w.Path)
		}
	}
	for _, h := range have {
		if !expected[h.Path] {
			stale = append(stale, h.Path)
		}
	}
	return missing, stale
}

// Compile-time assertion that Service implements domain.GalleryService.
var _ domain.GalleryService = (*Service)(nil)
