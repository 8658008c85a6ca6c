package domain

// ImageFile is a gallery entry that passed the extension filter.
type ImageFile struct {
	Name string // file name as found on disk, e.g. "First-Dance.JPG"
	Ext  string // lower-cased extension including the dot, e.g. ".jpg"
}

// Slide is the rendered view of one ImageFile.
type Slide struct {
	Path string // src attribute, e.g. "assets/gallery/first-dance.jpg"
	Alt  string // alt attribute, already quote-escaped
}

// MarkerRegion is the span of a document bounded by the gallery markers.
//
// Start includes any indentation captured before the start marker; End is
// the offset just past the end marker. Inner spans the bytes between the two
// markers.
type MarkerRegion struct {
	Start      int
	End        int
	InnerStart int
	InnerEnd   int
	Indent     string
}

// Document is a target file as read from disk.
type Document struct {
	Path    string
	Content []byte
	Digest  string // hex BLAKE2b-256 of Content
}

// Result reports the outcome of one synchronization run.
type Result struct {
	Slides  int    // number of slides rendered
	Written bool   // whether the document was rewritten
	Empty   bool   // no qualifying images were found; nothing was touched
	Before  string // digest of the document before the run
	After   string // digest of the regenerated document
}

// Changed reports whether the regenerated document differs from the one on disk.
func (r Result) Changed() bool { return r.Before != r.After }
