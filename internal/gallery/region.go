package gallery

import (
	"strings"

	"gallerysync/internal/domain"
)

const (
	StartMarker = "<!-- gallery:start -->"
	EndMarker   = "<!-- gallery:end -->"
)

// DefaultIndent matches the spacing of the gallery block in the site markup.
// It is used when the start marker has no indentation of its own.
const DefaultIndent = "              "

// Locate finds the first marker region in doc: the first start marker, the
// first end marker after it, and the run of spaces and tabs directly before
// the start marker. ok is false if either marker is missing.
func Locate(doc string) (region domain.MarkerRegion, ok bool) {
	start := strings.Index(doc, StartMarker)
	if start < 0 {
		return domain.MarkerRegion{}, false
	}
	innerStart := start + len(StartMarker)
	rel := strings.Index(doc[innerStart:], EndMarker)
	if rel < 0 {
		return domain.MarkerRegion{}, false
	}
	innerEnd := innerStart + rel

	lead := start
	for lead > 0 && (doc[lead-1] == ' ' || doc[lead-1] == '\t') {
		lead--
	}
	return domain.MarkerRegion{
		Start:      lead,
		End:        innerEnd + len(EndMarker),
		InnerStart: innerStart,
		InnerEnd:   innerEnd,
		Indent:     doc[lead:start],
	}, true
}

// Replace rewrites the region of doc with freshly rendered slides for files.
// The captured indentation is reused; defaultIndent applies when none was
// captured. Bytes outside the region are returned unchanged.
func Replace(doc string, region domain.MarkerRegion, files []string, defaultIndent string) string {
	indent := region.Indent
	if indent == "" {
		indent = defaultIndent
	}
	block := strings.Join([]string{
		indent + StartMarker,
		RenderSlides(files, indent),
		indent + EndMarker,
	}, "\n")

	var b strings.Builder
	b.Grow(len(doc) - (region.End - region.Start) + len(block))
	b.WriteString(doc[:region.Start])
	b.WriteString(block)
	b.WriteString(doc[region.End:])
	return b.String()
}

// Inner returns the text between the two markers of region.
func Inner(doc string, region domain.MarkerRegion) string {
	return doc[region.InnerStart:region.InnerEnd]
}
