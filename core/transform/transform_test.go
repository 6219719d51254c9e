package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/urlkit/core"
	"github.com/gaurav-prasanna/urlkit/core/parse"
)

func mustParse(t *testing.T, rawURL string) core.ParsedURL {
	t.Helper()
	parsed, err := parse.ParseURLWithQueryString(rawURL)
	require.NoError(t, err)
	return parsed
}

func apply(t *testing.T, fn URLFunc, rawURL string) core.ParsedURL {
	t.Helper()
	out, err := fn(rawURL)
	require.NoError(t, err)
	return mustParse(t, out)
}

func TestMapURLPropagatesParseError(t *testing.T) {
	called := false
	fn := MapURL(func(p core.ParsedURL) core.ParsedURL {
		called = true
		return p
	})

	_, err := fn("http://[::1")
	require.Error(t, err)
	assert.False(t, called)
}

func TestMapURLIdentity(t *testing.T) {
	fn := MapURL(func(p core.ParsedURL) core.ParsedURL { return p })

	out, err := fn("https://example.com/a?b=1#c")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a?b=1#c", out)
}

func TestChain(t *testing.T) {
	fn := MapURL(Chain(
		ReplacePathnameInParsedURL(Set(core.String("/docs"))),
		AppendPathnameToParsedURL("intro"),
		AddQueryToParsedURL(core.Query{"lang": {"en"}}),
		ReplaceHashInParsedURL(Set(core.String("#top"))),
	))

	out, err := fn("https://example.com/old?v=1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/docs/intro?lang=en&v=1#top", out)
}

func TestChainEmptyIsIdentity(t *testing.T) {
	in := mustParse(t, "https://example.com/a?b=1")
	assert.Equal(t, in, Chain()(in))
}

func TestReplaceQueryInURL(t *testing.T) {
	got := apply(t, ReplaceQueryInURL(Set(core.Query{"c": {"3"}})), "http://x/?a=1&b=2")
	assert.Equal(t, core.Query{"c": {"3"}}, got.Query)
	assert.Equal(t, "/", core.StringValue(got.Pathname))
}

func TestReplaceQueryInURLWithUpdate(t *testing.T) {
	dropB := ReplaceQueryInURL(func(q core.Query) core.Query {
		q.Del("b")
		return q
	})

	got := apply(t, dropB, "http://x/?a=1&b=2")
	assert.Equal(t, core.Query{"a": {"1"}}, got.Query)
}

func TestReplaceQueryInURLIdempotent(t *testing.T) {
	fn := ReplaceQueryInURL(Set(core.Query{"a": {"1"}, "b": {"x", "y"}}))

	once, err := fn("http://x/p?z=9#h")
	require.NoError(t, err)
	twice, err := fn(once)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestReplaceQueryDoesNotAliasLiteral(t *testing.T) {
	literal := core.Query{"a": {"1"}}
	fn := ReplaceQueryInParsedURL(Set(literal))

	out := fn(mustParse(t, "http://x/"))
	out.Query.Set("a", "changed")

	assert.Equal(t, "1", literal.Get("a"))
}

func TestSetLiteralsAreNotShared(t *testing.T) {
	in := mustParse(t, "http://x/a#old")

	tests := []struct {
		name  string
		fn    ParsedURLFunc
		field func(*core.ParsedURL) *string
		want  string
	}{
		{
			name:  "hash",
			fn:    ReplaceHashInParsedURL(Set(core.String("#a"))),
			field: func(p *core.ParsedURL) *string { return p.Hash },
			want:  "#a",
		},
		{
			name:  "pathname",
			fn:    ReplacePathnameInParsedURL(Set(core.String("/b"))),
			field: func(p *core.ParsedURL) *string { return p.Pathname },
			want:  "/b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := tt.fn(in)
			*tt.field(&first) = "mutated"

			second := tt.fn(in)
			assert.Equal(t, tt.want, core.StringValue(tt.field(&second)))
		})
	}
}

func TestReplaceHashInParsedURLAddsPrefix(t *testing.T) {
	in := mustParse(t, "http://x/#old")

	tests := []struct {
		name string
		hash Update[*string]
		want *string
	}{
		{"bare", Set(core.String("top")), core.String("#top")},
		{"prefixed", Set(core.String("#top")), core.String("#top")},
		{"nil", Set[*string](nil), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReplaceHashInParsedURL(tt.hash)(in).Hash)
		})
	}
}

func TestAddQueryToURL(t *testing.T) {
	tests := []struct {
		name   string
		add    core.Query
		rawURL string
		want   core.Query
	}{
		{"new key kept alongside old", core.Query{"b": {"2"}}, "http://x/?a=1", core.Query{"a": {"1"}, "b": {"2"}}},
		{"override wins", core.Query{"a": {"2"}}, "http://x/?a=1", core.Query{"a": {"2"}}},
		{"multi value replaced whole", core.Query{"a": {"3"}}, "http://x/?a=1&a=2", core.Query{"a": {"3"}}},
		{"absent value drops key", core.Query{"a": nil}, "http://x/?a=1&b=2", core.Query{"b": {"2"}}},
		{"empty url query", core.Query{"a": {"1"}}, "http://x/", core.Query{"a": {"1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apply(t, AddQueryToURL(tt.add), tt.rawURL)
			assert.Equal(t, tt.want, got.Query)
		})
	}
}

func TestAddQueryToURLReusable(t *testing.T) {
	addRef := AddQueryToURL(core.Query{"ref": {"mail"}})

	a, err := addRef("https://example.com/a")
	require.NoError(t, err)
	b, err := addRef("https://example.com/b?x=1")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/a?ref=mail", a)
	assert.Equal(t, "https://example.com/b?ref=mail&x=1", b)
}

func TestReplacePathInURL(t *testing.T) {
	tests := []struct {
		name         string
		newPath      Update[*string]
		rawURL       string
		wantPathname *string
		wantQuery    core.Query
	}{
		{
			name:         "path with query replaces both",
			newPath:      Set(core.String("/search?q=go")),
			rawURL:       "http://x/old?a=1#h",
			wantPathname: core.String("/search"),
			wantQuery:    core.Query{"q": {"go"}},
		},
		{
			name:         "path without query clears query",
			newPath:      Set(core.String("/new")),
			rawURL:       "http://x/old?a=1",
			wantPathname: core.String("/new"),
			wantQuery:    core.Query{},
		},
		{
			name:         "nil resets pathname and query",
			newPath:      Set[*string](nil),
			rawURL:       "http://x/old?a=1",
			wantPathname: nil,
			wantQuery:    core.Query{},
		},
		{
			name: "update from current pathname",
			newPath: func(p *string) *string {
				return core.MapString(p, func(s string) string { return s + "/edit?draft=1" })
			},
			rawURL:       "http://x/item/1?a=1",
			wantPathname: core.String("/item/1/edit"),
			wantQuery:    core.Query{"draft": {"1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apply(t, ReplacePathInURL(tt.newPath), tt.rawURL)
			assert.Equal(t, tt.wantPathname, got.Pathname)
			assert.Equal(t, tt.wantQuery, got.Query)
		})
	}
}

func TestReplacePathInURLKeepsOtherFields(t *testing.T) {
	in := mustParse(t, "https://u@example.com:8080/old?a=1#h")
	out := ReplacePathInParsedURL(Set(core.String("/new")))(in)

	assert.Equal(t, in.Auth, out.Auth)
	assert.Equal(t, in.Hash, out.Hash)
	assert.Equal(t, in.Hostname, out.Hostname)
	assert.Equal(t, in.Port, out.Port)
	assert.Equal(t, in.Protocol, out.Protocol)
	assert.Equal(t, in.Slashes, out.Slashes)
}

func TestReplacePathnameInURL(t *testing.T) {
	edit := ReplacePathnameInURL(func(p *string) *string {
		return core.MapString(p, func(s string) string { return s + "/edit" })
	})

	got := apply(t, edit, "http://x/item/1?a=1")
	assert.Equal(t, "/item/1/edit", core.StringValue(got.Pathname))
	assert.Equal(t, core.Query{"a": {"1"}}, got.Query)
}

func TestReplacePathnameInURLLiteral(t *testing.T) {
	out, err := ReplacePathnameInURL(Set(core.String("/b")))("http://x/a?q=1#h")
	require.NoError(t, err)
	assert.Equal(t, "http://x/b?q=1#h", out)

	out, err = ReplacePathnameInURL(Set[*string](nil))("http://x/a?q=1")
	require.NoError(t, err)
	assert.Equal(t, "http://x?q=1", out)
}

func TestAppendPathnameToURL(t *testing.T) {
	tests := []struct {
		name   string
		suffix string
		rawURL string
		want   string
	}{
		{"append segment", "baz", "http://x/foo/bar", "/foo/bar/baz"},
		{"no pathname", "baz", "http://x", "/baz"},
		{"root pathname", "baz", "http://x/", "/baz"},
		{"slashes normalized", "/baz/qux/", "http://x//foo/", "/foo/baz/qux"},
		{"empty suffix adds no trailing slash", "", "http://x/foo/bar", "/foo/bar"},
		{"empty suffix on trailing slash", "", "http://x/foo/", "/foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apply(t, AppendPathnameToURL(tt.suffix), tt.rawURL)
			assert.Equal(t, tt.want, core.StringValue(got.Pathname))
		})
	}
}

func TestAppendPathnameToURLKeepsQueryAndHash(t *testing.T) {
	out, err := AppendPathnameToURL("c")("https://example.com/a/b?x=1#top")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a/b/c?x=1#top", out)
}

func TestReplaceHashInURL(t *testing.T) {
	in := mustParse(t, "http://x/#old")
	got := apply(t, ReplaceHashInURL(Set(core.String("top"))), "http://x/#old")

	assert.Equal(t, "#top", core.StringValue(got.Hash))

	got.Hash = in.Hash
	assert.Equal(t, in, got)
}

func TestReplaceHashInURLUpdateAndClear(t *testing.T) {
	upper := ReplaceHashInURL(func(h *string) *string {
		return core.MapString(h, strings.ToUpper)
	})
	out, err := upper("http://x/p#sec")
	require.NoError(t, err)
	assert.Equal(t, "http://x/p#SEC", out)

	out, err = ReplaceHashInURL(Set[*string](nil))("http://x/p?a=1#sec")
	require.NoError(t, err)
	assert.Equal(t, "http://x/p?a=1", out)
}

func TestTransformationsDoNotMutateInput(t *testing.T) {
	in := mustParse(t, "https://u:p@example.com:8080/a/b?x=1&y=2#h")
	snapshot := in.Clone()

	fns := []ParsedURLFunc{
		ReplaceQueryInParsedURL(func(q core.Query) core.Query {
			q.Set("x", "mutated")
			q.Add("z", "3")
			return q
		}),
		AddQueryToParsedURL(core.Query{"x": {"9"}}),
		ReplacePathInParsedURL(func(p *string) *string {
			*p = "/mutated"
			return p
		}),
		ReplacePathnameInParsedURL(Set(core.String("/c"))),
		AppendPathnameToParsedURL("c"),
		ReplaceHashInParsedURL(func(h *string) *string {
			*h = "#mutated"
			return h
		}),
	}

	for _, fn := range fns {
		_ = fn(in)
		assert.Equal(t, snapshot, in)
	}
}
