package gallery

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// extensions is the allow-set of gallery image extensions, lower case.
var extensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".avif": true,
}

// SplitExt splits name into stem and extension. Leading dots never start an
// extension, so ".jpg" has no extension and "ceremony.2.jpg" splits into
// "ceremony.2" and ".jpg".
func SplitExt(name string) (stem, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || strings.Trim(name[:i], ".") == "" {
		return name, ""
	}
	return name[:i], name[i:]
}

// IsImage reports whether name carries an allowed image extension, ignoring case.
func IsImage(name string) bool {
	_, ext := SplitExt(name)
	return extensions[strings.ToLower(ext)]
}

// SortNames orders file names in place using a case and accent insensitive
// collation of their stems, then of the full names. Names that still compare
// equal fall back to byte order, which puts upper case before lower case.
func SortNames(names []string) {
	c := collate.New(language.Und, collate.Loose)
	slices.SortStableFunc(names, func(a, b string) int {
		return compareNames(c, a, b)
	})
}

func compareNames(c *collate.Collator, a, b string) int {
	sa, _ := SplitExt(a)
	sb, _ := SplitExt(b)
	if r := c.CompareString(sa, sb); r != 0 {
		return r
	}
	if r := strings.Compare(sa, sb); r != 0 {
		return r
	}
	if r := c.CompareString(a, b); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}
