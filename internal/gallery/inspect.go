package gallery

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"gallerysync/internal/domain"
)

// ParseSlides reads the img elements out of a rendered gallery block, in
// document order. Attribute values are returned as the parser decodes them.
func ParseSlides(fragment string) ([]domain.Slide, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return nil, fmt.Errorf("parse gallery block: %w", err)
	}

	var out []domain.Slide
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Img {
			var s domain.Slide
			for _, a := range n.Attr {
				switch a.Key {
				case "src":
					s.Path = a.Val
				case "alt":
					s.Alt = a.Val
				}
			}
			out = append(out, s)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return out, nil
}
