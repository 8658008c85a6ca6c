// Package gallery holds the pure operations behind gallerysync.
//
// Contents
//
//   - Image filtering and ordering (IsImage, SplitExt, SortNames)
//   - Alt text derived from file names (AltText, EscapeAttr)
//   - Slide rendering (Slides, RenderSlides)
//   - Marker region search and replacement (Locate, Replace)
//   - Reading the slides back out of a rendered region (ParseSlides)
//
// # Notes
//
// Nothing in this package touches the filesystem. Rendering is fully
// deterministic: the same file names always produce the same bytes.
package gallery
