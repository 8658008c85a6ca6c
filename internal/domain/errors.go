package domain

import (
	"fmt"
	"strings"
)

// NotFoundError reports a missing target document or marker region.
type NotFoundError struct {
	What string // "document" or "gallery markers"
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not locate %s in %s", e.What, e.Path)
}

// IOError reports a directory or file that could not be read or written.
type IOError struct {
	Op   string // "read dir", "read", "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// OutOfDateError is returned by a check when the document's gallery block
// does not match the images on disk.
type OutOfDateError struct {
	Path    string
	Missing []string // images on disk with no slide in the document
	Stale   []string // slides in the document with no image on disk
}

func (e *OutOfDateError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "gallery markup in %s is out of date", e.Path)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "; missing: %s", strings.Join(e.Missing, ", "))
	}
	if len(e.Stale) > 0 {
		fmt.Fprintf(&b, "; stale: %s", strings.Join(e.Stale, ", "))
	}
	return b.String()
}
