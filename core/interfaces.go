// Package core defines the URL records shared by every urlkit stage.
// A URL is parsed into a ParsedURL, transformed as a value, and serialized
// back into a string; nothing here performs I/O.
package core

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

// Query is the decoded query string of a URL.
// A key whose slice is empty is treated as absent and is not serialized.
type Query = url.Values

// ParsedURL is the structured form of a URL. Every field is always present;
// missing components are nil rather than omitted.
type ParsedURL struct {
	Auth     *string `json:"auth"`
	Hash     *string `json:"hash"` // includes the leading '#'
	Hostname *string `json:"hostname"`
	Pathname *string `json:"pathname"`
	Port     *string `json:"port"`
	Protocol *string `json:"protocol"` // scheme with trailing ':', e.g. "https:"
	Query    Query   `json:"query"`
	Slashes  bool    `json:"slashes"`
}

// ParsedPath is the pathname and query of a bare path string.
type ParsedPath struct {
	Pathname *string `json:"pathname"`
	Query    Query   `json:"query"`
}

// Clone returns a deep copy of p. Mutating the copy never affects p.
func (p ParsedURL) Clone() ParsedURL {
	return ParsedURL{
		Auth:     CloneString(p.Auth),
		Hash:     CloneString(p.Hash),
		Hostname: CloneString(p.Hostname),
		Pathname: CloneString(p.Pathname),
		Port:     CloneString(p.Port),
		Protocol: CloneString(p.Protocol),
		Query:    CloneQuery(p.Query),
		Slashes:  p.Slashes,
	}
}

// CloneQuery deep-copies q. A nil query yields an empty, non-nil one.
func CloneQuery(q Query) Query {
	out := make(Query, len(q))
	for k, vs := range q {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

// String returns a pointer to s.
func String(s string) *string {
	return &s
}

// StringValue returns the string p points to, or "" if p is nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// MapString applies fn to the value behind p. A nil p stays nil.
func MapString(p *string, fn func(string) string) *string {
	if p == nil {
		return nil
	}
	return String(fn(*p))
}

// CloneString returns a new pointer to the value behind p. A nil p stays nil.
func CloneString(p *string) *string {
	if p == nil {
		return nil
	}
	return String(*p)
}

// Renderer converts a rewritten HTML document into a final output format.
type Renderer interface {
	Render(doc *goquery.Document) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".html").
	Extension() string
}
