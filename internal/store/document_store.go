package store

import (
	"context"
	"errors"
	"io/fs"
	"sync"

	"gallerysync/internal/crypto"
	"gallerysync/internal/domain"
)

// DocumentFileStore reads and rewrites a single document on disk.
type DocumentFileStore struct {
	path string
	mu   sync.Mutex
}

// NewDocumentFileStore returns a DocumentFileStore for the file at path.
func NewDocumentFileStore(path string) *DocumentFileStore {
	return &DocumentFileStore{path: path}
}

// Path returns the document location.
func (s *DocumentFileStore) Path() string { return s.path }

// LoadDocument reads the whole document. A missing file is reported as a
// NotFoundError, any other failure as an IOError.
func (s *DocumentFileStore) LoadDocument(ctx context.Context) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Document{}, &domain.NotFoundError{What: "document", Path: s.path}
	}
	if err != nil {
		return domain.Document{}, &domain.IOError{Op: "read", Path: s.path, Err: err}
	}
	return domain.Document{Path: s.path, Content: b, Digest: crypto.Digest(b)}, nil
}

// SaveDocument replaces the document with content in one atomic step.
func (s *DocumentFileStore) SaveDocument(ctx context.Context, content []byte) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFile(s.path, content); err != nil {
		return domain.Document{}, &domain.IOError{Op: "write", Path: s.path, Err: err}
	}
	return domain.Document{Path: s.path, Content: content, Digest: crypto.Digest(content)}, nil
}

// Compile-time assertion that DocumentFileStore implements domain.DocumentStore.
var _ domain.DocumentStore = (*DocumentFileStore)(nil)
