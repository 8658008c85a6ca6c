package gallery_test

import (
	"slices"
	"testing"

	"gallerysync/internal/gallery"
)

func TestIsImage_AllowSet(t *testing.T) {
	cases := map[string]bool{
		"a.jpg":          true,
		"a.JPEG":         true,
		"a.Png":          true,
		"a.gif":          true,
		"a.webp":         true,
		"a.AVIF":         true,
		"a.svg":          false,
		"a.txt":          false,
		"a.jpg.bak":      false,
		"README":         false,
		".jpg":           false,
		"ceremony.2.jpg": true,
	}
	for name, want := range cases {
		if got := gallery.IsImage(name); got != want {
			t.Errorf("IsImage(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestSplitExt(t *testing.T) {
	cases := []struct{ in, stem, ext string }{
		{"photo.jpg", "photo", ".jpg"},
		{"ceremony.2.jpg", "ceremony.2", ".jpg"},
		{"noext", "noext", ""},
		{".hidden", ".hidden", ""},
		{"", "", ""},
	}
	for _, c := range cases {
		stem, ext := gallery.SplitExt(c.in)
		if stem != c.stem || ext != c.ext {
			t.Errorf("SplitExt(%q) = (%q, %q), want (%q, %q)", c.in, stem, ext, c.stem, c.ext)
		}
	}
}

func TestSortNames_CaseInsensitive(t *testing.T) {
	names := []string{"b.jpg", "A.png", "a.jpg"}
	gallery.SortNames(names)

	want := []string{"A.png", "a.jpg", "b.jpg"}
	if !slices.Equal(names, want) {
		t.Fatalf("order = %v, want %v", names, want)
	}
}

func TestSortNames_IgnoresAccentsAndCase(t *testing.T) {
	names := []string{"zebra.jpg", "Église.jpg", "apple.png", "Banana.gif"}
	gallery.SortNames(names)

	want := []string{"apple.png", "Banana.gif", "Église.jpg", "zebra.jpg"}
	if !slices.Equal(names, want) {
		t.Fatalf("order = %v, want %v", names, want)
	}
}

func TestSortNames_Deterministic(t *testing.T) {
	a := []string{"c.jpg", "B.jpg", "b.png", "A.gif", "a.gif"}
	b := []string{"a.gif", "b.png", "A.gif", "c.jpg", "B.jpg"}
	gallery.SortNames(a)
	gallery.SortNames(b)
	if !slices.Equal(a, b) {
		t.Fatalf("orders differ for the same set: %v vs %v", a, b)
	}
}
