// Package rewrite applies a URL transformation to the link attributes of
// an HTML document. Links are transformed as written; relative references
// are never resolved against a base URL.
package rewrite

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/urlkit/core/transform"
)

// DefaultTargets are the link attributes rewritten when none are configured.
var DefaultTargets = []string{"a@href", "area@href", "link@href", "form@action"}

// Target is one element/attribute pair holding a URL.
type Target struct {
	Tag  string
	Attr string

	matcher cascadia.Selector
}

// ParseTarget parses "tag@attr" (e.g. "a@href") into a Target.
func ParseTarget(s string) (Target, error) {
	tag, attr, ok := strings.Cut(strings.TrimSpace(s), "@")
	if !ok || tag == "" || attr == "" {
		return Target{}, fmt.Errorf("invalid rewrite target %q (want tag@attr, e.g. a@href)", s)
	}

	sel := fmt.Sprintf("%s[%s]", tag, attr)
	matcher, err := cascadia.Compile(sel)
	if err != nil {
		return Target{}, fmt.Errorf("compiling selector %q: %w", sel, err)
	}
	return Target{Tag: tag, Attr: attr, matcher: matcher}, nil
}

// ParseTargets parses every entry of specs.
func ParseTargets(specs []string) ([]Target, error) {
	targets := make([]Target, 0, len(specs))
	for _, s := range specs {
		t, err := ParseTarget(s)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, nil
}

// Stats counts what a rewrite did.
type Stats struct {
	Rewritten int // links whose value changed or was re-serialized
	Skipped   int // links excluded by Rules
	Failed    int // links the transformation could not parse; left as-is
}

// Rewriter rewrites link attributes with a single transformation.
type Rewriter struct {
	Transform transform.URLFunc
	Rules     Rules
	Targets   []Target
}

// New creates a Rewriter. With no targets, DefaultTargets are used.
func New(fn transform.URLFunc, rules Rules, targets []Target) (*Rewriter, error) {
	if fn == nil {
		return nil, fmt.Errorf("rewrite: nil transformation")
	}
	if len(targets) == 0 {
		var err error
		targets, err = ParseTargets(DefaultTargets)
		if err != nil {
			return nil, err
		}
	}
	return &Rewriter{Transform: fn, Rules: rules, Targets: targets}, nil
}

// Rewrite parses an HTML document from r and rewrites its links in place.
func (rw *Rewriter) Rewrite(r io.Reader) (*goquery.Document, Stats, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("parsing HTML: %w", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	var stats Stats
	for _, target := range rw.Targets {
		doc.FindMatcher(target.matcher).Each(func(_ int, s *goquery.Selection) {
			href, exists := s.Attr(target.Attr)
			if !exists {
				return
			}
			if !rw.Rules.Match(href) {
				stats.Skipped++
				return
			}

			rewritten, err := rw.Transform(strings.TrimSpace(href))
			if err != nil {
				stats.Failed++ // Leave broken links alone, don't block the document.
				return
			}
			s.SetAttr(target.Attr, rewritten)
			stats.Rewritten++
		})
	}

	return doc, stats, nil
}
