// Package rewrite — link filtering rules.
// Decides which link attributes a rewrite is allowed to touch.
package rewrite

import (
	"net/url"
	"path"
	"strings"
)

// staticExtensions are file extensions skipped when Rules.SkipStatic is set.
var staticExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true,
	".css": true, ".js": true, ".mjs": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".mp4": true, ".webm": true, ".mp3": true, ".wav": true,
	".zip": true, ".tar": true, ".gz": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
}

// ignoredPrefixes are link forms that never point at a rewritable URL.
var ignoredPrefixes = []string{"mailto:", "javascript:", "tel:", "data:", "#"}

// Rules selects which links are rewritten.
type Rules struct {
	// Host restricts rewriting to links on this host. Host-less links
	// (relative references) always match.
	Host string
	// SkipStatic leaves links to static assets untouched.
	SkipStatic bool
}

// Match reports whether href should be rewritten.
func (r Rules) Match(href string) bool {
	href = strings.TrimSpace(href)
	if href == "" {
		return false
	}
	lower := strings.ToLower(href)
	for _, prefix := range ignoredPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}

	// Unparsable links still match; the transformation reports the failure.
	parsed, err := url.Parse(href)
	if err != nil {
		return true
	}
	if r.Host != "" && !IsSameHost(parsed, r.Host) {
		return false
	}
	if r.SkipStatic && IsStaticAsset(parsed) {
		return false
	}
	return true
}

// IsSameHost reports whether u is on host, or has no host at all.
func IsSameHost(u *url.URL, host string) bool {
	return u.Host == "" || strings.EqualFold(u.Host, host)
}

// IsStaticAsset reports whether u points at a static asset (image, CSS, JS, etc.).
func IsStaticAsset(u *url.URL) bool {
	ext := strings.ToLower(path.Ext(u.Path))
	return staticExtensions[ext]
}
