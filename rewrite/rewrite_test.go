package rewrite

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/urlkit/core"
	"github.com/gaurav-prasanna/urlkit/core/transform"
)

const page = `<!DOCTYPE html>
<html><head>
<link rel="stylesheet" href="/site.css">
<link rel="canonical" href="https://example.com/docs">
</head><body>
<a id="abs" href="https://example.com/docs?v=1">docs</a>
<a id="rel" href="/guide">guide</a>
<a id="ext" href="https://other.org/page">other</a>
<a id="mail" href="mailto:team@example.com">mail</a>
<a id="frag" href="#top">top</a>
<a id="bad" href="http://[::1">bad</a>
<a id="none">no href</a>
<form id="f" action="/search"></form>
<img id="img" src="/logo.png">
</body></html>`

func rewrite(t *testing.T, rules Rules, targets []Target) (*goquery.Document, Stats) {
	t.Helper()
	rw, err := New(transform.AddQueryToURL(core.Query{"ref": {"nl"}}), rules, targets)
	require.NoError(t, err)

	doc, stats, err := rw.Rewrite(strings.NewReader(page))
	require.NoError(t, err)
	return doc, stats
}

func attr(doc *goquery.Document, sel, name string) string {
	v, _ := doc.Find(sel).Attr(name)
	return v
}

func TestRewriteDefaultTargets(t *testing.T) {
	doc, stats := rewrite(t, Rules{}, nil)

	assert.Equal(t, "https://example.com/docs?ref=nl&v=1", attr(doc, "#abs", "href"))
	assert.Equal(t, "/guide?ref=nl", attr(doc, "#rel", "href"))
	assert.Equal(t, "https://other.org/page?ref=nl", attr(doc, "#ext", "href"))
	assert.Equal(t, "mailto:team@example.com", attr(doc, "#mail", "href"))
	assert.Equal(t, "#top", attr(doc, "#frag", "href"))
	assert.Equal(t, "http://[::1", attr(doc, "#bad", "href"))
	assert.Equal(t, "/search?ref=nl", attr(doc, "#f", "action"))
	assert.Equal(t, "/site.css?ref=nl", attr(doc, `link[rel="stylesheet"]`, "href"))
	assert.Equal(t, "/logo.png", attr(doc, "#img", "src"))

	assert.Equal(t, Stats{Rewritten: 6, Skipped: 2, Failed: 1}, stats)
}

func TestRewriteWithRules(t *testing.T) {
	doc, stats := rewrite(t, Rules{Host: "example.com", SkipStatic: true}, nil)

	assert.Equal(t, "https://example.com/docs?ref=nl&v=1", attr(doc, "#abs", "href"))
	assert.Equal(t, "/guide?ref=nl", attr(doc, "#rel", "href"))
	assert.Equal(t, "https://other.org/page", attr(doc, "#ext", "href"))
	assert.Equal(t, "/site.css", attr(doc, `link[rel="stylesheet"]`, "href"))

	assert.Equal(t, Stats{Rewritten: 4, Skipped: 4, Failed: 1}, stats)
}

func TestRewriteCustomTargets(t *testing.T) {
	targets, err := ParseTargets([]string{"img@src"})
	require.NoError(t, err)

	doc, stats := rewrite(t, Rules{}, targets)

	assert.Equal(t, "/logo.png?ref=nl", attr(doc, "#img", "src"))
	assert.Equal(t, "/guide", attr(doc, "#rel", "href"))
	assert.Equal(t, Stats{Rewritten: 1}, stats)
}

func TestParseTarget(t *testing.T) {
	target, err := ParseTarget(" a@href ")
	require.NoError(t, err)
	assert.Equal(t, "a", target.Tag)
	assert.Equal(t, "href", target.Attr)

	for _, bad := range []string{"", "a", "@href", "a@", "a[@href"} {
		_, err := ParseTarget(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewRequiresTransform(t *testing.T) {
	_, err := New(nil, Rules{}, nil)
	require.Error(t, err)
}
