package synchronizer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"gallerysync/internal/domain"
	"gallerysync/internal/gallery"
	"gallerysync/internal/services/synchronizer"
	"gallerysync/internal/store"
)

const page = `<!DOCTYPE html>
<html>
<body>
  <section class="gallery">
    <div class="swiper-wrapper">
      <!-- gallery:start -->
      <div class="swiper-slide gallery__slide">
        <img src="assets/gallery/old.jpg" alt="Old">
      </div>
      <!-- gallery:end -->
    </div>
  </section>
</body>
</html>
`

type site struct {
	index   string
	gallery string
	svc     *synchronizer.Service
}

func newSite(t *testing.T, html string, images ...string) site {
	t.Helper()
	root := t.TempDir()
	s := site{
		index:   filepath.Join(root, "index.html"),
		gallery: filepath.Join(root, "assets", "gallery"),
	}
	if err := os.MkdirAll(s.gallery, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(s.index, []byte(html), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}
	for _, img := range images {
		if err := os.WriteFile(filepath.Join(s.gallery, img), []byte("img"), 0o644); err != nil {
			t.Fatalf("write image: %v", err)
		}
	}
	s.svc = synchronizer.New(
		store.NewImageDirSource(s.gallery),
		store.NewDocumentFileStore(s.index),
		gallery.DefaultIndent,
		nil,
	)
	return s
}

func (s site) read(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(s.index)
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	return string(b)
}

func TestSync_RoundTrip(t *testing.T) {
	s := newSite(t, page, "b.jpg", "A.png", "a.jpg", "notes.txt")

	res, err := s.svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if res.Slides != 3 || !res.Written || res.Empty {
		t.Fatalf("unexpected result: %+v", res)
	}

	got := s.read(t)
	r, ok := gallery.Locate(got)
	if !ok {
		t.Fatal("markers missing after sync")
	}
	orig, _ := gallery.Locate(page)
	if got[:r.Start] != page[:orig.Start] || got[r.End:] != page[orig.End:] {
		t.Fatal("content outside the gallery block changed")
	}

	slides, err := gallery.ParseSlides(gallery.Inner(got, r))
	if err != nil {
		t.Fatalf("ParseSlides: %v", err)
	}
	var srcs []string
	for _, sl := range slides {
		srcs = append(srcs, sl.Path)
	}
	want := []string{"assets/gallery/A.png", "assets/gallery/a.jpg", "assets/gallery/b.jpg"}
	if !slices.Equal(srcs, want) {
		t.Fatalf("slides = %v, want %v", srcs, want)
	}
}

func TestSync_Idempotent(t *testing.T) {
	s := newSite(t, page, "first-dance_moment.jpg", "ceremony.2.jpg")
	ctx := context.Background()

	if _, err := s.svc.Sync(ctx); err != nil {
		t.Fatalf("first Sync: %v", err)
	}
	first := s.read(t)

	res, err := s.svc.Sync(ctx)
	if err != nil {
		t.Fatalf("second Sync: %v", err)
	}
	if res.Written || res.Changed() {
		t.Fatalf("second run should not write: %+v", res)
	}
	if second := s.read(t); second != first {
		t.Fatalf("second run changed the document:\n%s\n---\n%s", first, second)
	}
	if !strings.Contains(first, `alt="First dance moment"`) || !strings.Contains(first, `alt="Ceremony:2"`) {
		t.Fatalf("alt text not rendered as expected:\n%s", first)
	}
}

func TestSync_MissingMarkers(t *testing.T) {
	html := "<html><body>no gallery here</body></html>"
	s := newSite(t, html, "a.jpg")

	_, err := s.svc.Sync(context.Background())
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want *domain.NotFoundError", err)
	}
	if !strings.Contains(err.Error(), "could not locate gallery markers") {
		t.Fatalf("err = %q, want marker message", err)
	}
	if got := s.read(t); got != html {
		t.Fatal("document was modified despite missing markers")
	}
}

func TestSync_NoImages_LeavesDocument(t *testing.T) {
	s := newSite(t, page, "readme.md")

	res, err := s.svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if !res.Empty || res.Written || res.Slides != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if got := s.read(t); got != page {
		t.Fatal("document changed with no images")
	}
}

func TestSync_MissingGalleryDir(t *testing.T) {
	s := newSite(t, page)
	if err := os.RemoveAll(s.gallery); err != nil {
		t.Fatalf("remove: %v", err)
	}

	_, err := s.svc.Sync(context.Background())
	var ioErr *domain.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("err = %v, want *domain.IOError", err)
	}
}

func TestSync_MissingDocument(t *testing.T) {
	s := newSite(t, page, "a.jpg")
	if err := os.Remove(s.index); err != nil {
		t.Fatalf("remove: %v", err)
	}

	_, err := s.svc.Sync(context.Background())
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.What != "document" {
		t.Fatalf("err = %v, want document *domain.NotFoundError", err)
	}
}

func TestSync_CanceledBeforeWrite(t *testing.T) {
	s := newSite(t, page, "a.jpg")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.svc.Sync(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if got := s.read(t); got != page {
		t.Fatal("document written after cancellation")
	}
}

func TestCheck_ReportsDrift(t *testing.T) {
	s := newSite(t, page, "new.jpg")

	_, err := s.svc.Check(context.Background())
	var ood *domain.OutOfDateError
	if !errors.As(err, &ood) {
		t.Fatalf("err = %v, want *domain.OutOfDateError", err)
	}
	if !slices.Equal(ood.Missing, []string{"assets/gallery/new.jpg"}) {
		t.Errorf("missing = %v", ood.Missing)
	}
	if !slices.Equal(ood.Stale, []string{"assets/gallery/old.jpg"}) {
		t.Errorf("stale = %v", ood.Stale)
	}
	if got := s.read(t); got != page {
		t.Fatal("check modified the document")
	}
}

func TestCheck_UpToDateAfterSync(t *testing.T) {
	s := newSite(t, page, "a.jpg", "b.jpg")
	ctx := context.Background()

	if _, err := s.svc.Sync(ctx); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	res, err := s.svc.Check(ctx)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if res.Changed() || res.Slides != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestList_Order(t *testing.T) {
	s := newSite(t, page, "b.jpg", "A.png", "a.jpg", "skip.txt")

	slides, err := s.svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []domain.Slide{
		{Path: "assets/gallery/A.png", Alt: "A"},
		{Path: "assets/gallery/a.jpg", Alt: "A"},
		{Path: "assets/gallery/b.jpg", Alt: "B"},
	}
	if !slices.Equal(slides, want) {
		t.Fatalf("slides = %+v, want %+v", slides, want)
	}
}
