package domain

import "context"

// ImageSource enumerates the qualifying images of a gallery directory.
type ImageSource interface {
	ListImages(ctx context.Context) ([]ImageFile, error)
}

// DocumentStore reads and fully rewrites the target document.
type DocumentStore interface {
	LoadDocument(ctx context.Context) (Document, error)
	SaveDocument(ctx context.Context, content []byte) (Document, error)
}

// GalleryService runs the synchronizer policies.
type GalleryService interface {
	Sync(ctx context.Context) (Result, error)
	Check(ctx context.Context) (Result, error)
	List(ctx context.Context) ([]Slide, error)
}
