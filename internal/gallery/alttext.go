package gallery

import (
	"strings"
	"unicode/utf8"
)

// FallbackAlt is used when a file name cleans down to nothing.
const FallbackAlt = "Wedding celebration moment"

var (
	dropParens  = strings.NewReplacer("(", "", ")", "")
	periodColon = strings.NewReplacer(".", ":")
)

// AltText derives human readable alt text from an image file name.
//
// "first-dance_moment.jpg" becomes "First dance moment" and
// "ceremony.2.jpg" becomes "Ceremony:2".
func AltText(filename string) string {
	stem, _ := SplitExt(filename)

	cleaned := dropParens.Replace(stem)
	cleaned = collapseSeparators(cleaned)
	cleaned = periodColon.Replace(cleaned)
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	if cleaned == "" {
		return FallbackAlt
	}
	r, size := utf8.DecodeRuneInString(cleaned)
	return strings.ToUpper(string(r)) + cleaned[size:]
}

// EscapeAttr makes s safe inside a double quoted attribute by swapping
// double quotes for single quotes. No other escaping is done.
func EscapeAttr(s string) string {
	return strings.ReplaceAll(s, `"`, "'")
}

// collapseSeparators replaces every run of '-' and '_' with a single space.
func collapseSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if r == '-' || r == '_' {
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}
