package gallery

import (
	"fmt"
	"strings"

	"gallerysync/internal/domain"
)

// AssetDir is the site-relative directory image sources point into.
const AssetDir = "assets/gallery"

// SlideClass is the class list the carousel expects on each slide container.
const SlideClass = "swiper-slide gallery__slide"

// Slides builds one Slide per file name, preserving order.
func Slides(files []string) []domain.Slide {
	out := make([]domain.Slide, 0, len(files))
	for _, f := range files {
		out = append(out, domain.Slide{
			Path: AssetDir + "/" + f,
			Alt:  EscapeAttr(AltText(f)),
		})
	}
	return out
}

// RenderSlides renders the slide markup for files at the given indentation.
// Slides are separated by a single newline and there is no trailing newline.
func RenderSlides(files []string, indent string) string {
	imageIndent := indent + "  "
	blocks := make([]string, 0, len(files))
	for _, s := range Slides(files) {
		blocks = append(blocks, strings.Join([]string{
			fmt.Sprintf(`%s<div class="%s">`, indent, SlideClass),
			fmt.Sprintf(`%s<img src="%s" alt="%s">`, imageIndent, s.Path, s.Alt),
			indent + "</div>",
		}, "\n"))
	}
	return strings.Join(blocks, "\n")
}
