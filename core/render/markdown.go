// Package render provides output renderers for rewritten documents and
// parsed URLs. Documents render as HTML or as Markdown.
package render

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// MarkdownRenderer converts a document to Markdown using html-to-markdown.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts the document into Markdown bytes.
func (r *MarkdownRenderer) Render(doc *goquery.Document) ([]byte, error) {
	html, err := renderHTML(doc)
	if err != nil {
		return nil, err
	}
	markdown, err := htmltomarkdown.ConvertString(string(html))
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return []byte(markdown), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
