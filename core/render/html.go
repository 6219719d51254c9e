package render

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// HTMLRenderer writes the whole document back out as HTML.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render serializes every root node of the document.
func (r *HTMLRenderer) Render(doc *goquery.Document) ([]byte, error) {
	return renderHTML(doc)
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}

func renderHTML(doc *goquery.Document) ([]byte, error) {
	var buf bytes.Buffer
	for _, node := range doc.Nodes {
		if err := html.Render(&buf, node); err != nil {
			return nil, fmt.Errorf("rendering HTML: %w", err)
		}
	}
	return buf.Bytes(), nil
}
