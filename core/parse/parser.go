// Package parse converts between raw URL strings and core.ParsedURL.
// It is a thin adapter over net/url; encoding rules are inherited from it.
package parse

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/gaurav-prasanna/urlkit/core"
)

// ParseURLWithQueryString parses rawURL into a ParsedURL, always decoding
// the query string. Malformed query pairs are dropped the way url.Values does.
func ParseURLWithQueryString(rawURL string) (core.ParsedURL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return core.ParsedURL{}, fmt.Errorf("parsing url %q: %w", rawURL, err)
	}

	parsed := core.ParsedURL{
		Query:   u.Query(),
		Slashes: hasSlashes(u),
	}

	if u.Scheme != "" {
		parsed.Protocol = core.String(u.Scheme + ":")
	}
	if u.User != nil {
		auth := u.User.Username()
		if password, ok := u.User.Password(); ok {
			auth += ":" + password
		}
		parsed.Auth = core.String(auth)
	}
	if host := u.Hostname(); host != "" {
		parsed.Hostname = core.String(host)
	}
	if port := u.Port(); port != "" {
		parsed.Port = core.String(port)
	}

	// Opaque URLs (mailto:a@b) keep their opaque part as the pathname.
	pathname := u.Opaque
	if pathname == "" {
		pathname = u.EscapedPath()
	}
	if pathname != "" {
		parsed.Pathname = core.String(pathname)
	}

	if u.Fragment != "" || u.RawFragment != "" {
		parsed.Hash = core.String("#" + u.EscapedFragment())
	}

	return parsed, nil
}

// SerializeURL rebuilds a URL string from p in the order
// protocol//auth@hostname:port/pathname?query#hash.
func SerializeURL(p core.ParsedURL) string {
	u := &url.URL{
		Scheme:   strings.TrimSuffix(core.StringValue(p.Protocol), ":"),
		RawQuery: p.Query.Encode(),
	}
	pathname := core.StringValue(p.Pathname)

	switch {
	case p.Slashes:
		u.User = userinfo(p.Auth)
		u.Host = joinHost(p.Hostname, p.Port)
		setPath(u, pathname)
	case u.Scheme != "" && (p.Auth != nil || p.Hostname != nil || (pathname != "" && !strings.HasPrefix(pathname, "/"))):
		// Without "//" an authority can only be written as the opaque part.
		var opaque strings.Builder
		if p.Auth != nil {
			opaque.WriteString(*p.Auth)
			opaque.WriteByte('@')
		}
		opaque.WriteString(joinHost(p.Hostname, p.Port))
		opaque.WriteString(pathname)
		u.Opaque = opaque.String()
	default:
		u.OmitHost = true
		setPath(u, pathname)
	}

	if p.Hash != nil {
		setFragment(u, strings.TrimPrefix(*p.Hash, "#"))
	}

	return u.String()
}

// ParsePathWithQueryString splits a bare path into its pathname and query.
// A nil path is not an error; it yields a nil pathname and an empty query.
func ParsePathWithQueryString(path *string) core.ParsedPath {
	if path == nil {
		return core.ParsedPath{Query: core.Query{}}
	}

	rest, _, _ := strings.Cut(*path, "#")
	pathname, rawQuery, _ := strings.Cut(rest, "?")

	// Same leniency as url.URL.Query: keep whatever pairs decode.
	query, _ := url.ParseQuery(rawQuery)
	parsed := core.ParsedPath{Query: query}
	if pathname != "" {
		parsed.Pathname = core.String(pathname)
	}
	return parsed
}

func hasSlashes(u *url.URL) bool {
	if u.Opaque != "" || u.OmitHost {
		return false
	}
	if u.Scheme != "" {
		return true
	}
	return u.Host != "" || u.User != nil
}

func userinfo(auth *string) *url.Userinfo {
	if auth == nil {
		return nil
	}
	if username, password, ok := strings.Cut(*auth, ":"); ok {
		return url.UserPassword(username, password)
	}
	return url.User(*auth)
}

func joinHost(hostname, port *string) string {
	host := core.StringValue(hostname)
	if port != nil {
		return net.JoinHostPort(host, *port)
	}
	if strings.Contains(host, ":") {
		return "[" + host + "]"
	}
	return host
}

// setPath stores escaped as RawPath. net/url only serializes RawPath when it
// is a valid encoding of Path; otherwise Path is re-escaped, so a pathname
// mixing raw spaces with %2F loses the %2F.
func setPath(u *url.URL, escaped string) {
	decoded, err := url.PathUnescape(escaped)
	if err != nil {
		u.Path = escaped
		return
	}
	u.Path = decoded
	u.RawPath = escaped
}

func setFragment(u *url.URL, escaped string) {
	decoded, err := url.PathUnescape(escaped)
	if err != nil {
		u.Fragment = escaped
		return
	}
	u.Fragment = decoded
	u.RawFragment = escaped
}
