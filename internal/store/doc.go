// Package store provides the filesystem adapters for gallerysync.
//
// It contains concrete implementations of the domain storage interfaces:
//   - Image directory listing (ImageDirSource)
//   - The target HTML document (DocumentFileStore)
//
// Documents are replaced atomically: new content goes to a temp file in the
// same directory which is then renamed over the target, so a failed run
// never leaves a half-written page behind.
package store
