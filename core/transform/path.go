package transform

import (
	"github.com/gaurav-prasanna/urlkit/core"
	"github.com/gaurav-prasanna/urlkit/core/parse"
	"github.com/gaurav-prasanna/urlkit/core/segment"
)

// ReplacePathInParsedURL replaces the pathname and the query from a path
// string such as "/search?q=go". newPath receives the current pathname.
// The query is replaced, not merged. A nil path clears both.
func ReplacePathInParsedURL(newPath Update[*string]) ParsedURLFunc {
	return MapParsedURL(func(parsedURL core.ParsedURL) core.ParsedURL {
		next := parsedURL.Clone()
		path := parse.ParsePathWithQueryString(newPath(next.Pathname))
		next.Pathname = path.Pathname
		next.Query = path.Query
		return next
	})
}

// ReplacePathInURL is ReplacePathInParsedURL applied to a raw URL.
func ReplacePathInURL(newPath Update[*string]) URLFunc {
	return MapURL(ReplacePathInParsedURL(newPath))
}

// ReplacePathnameInParsedURL replaces only the pathname.
func ReplacePathnameInParsedURL(newPathname Update[*string]) ParsedURLFunc {
	return MapParsedURL(func(parsedURL core.ParsedURL) core.ParsedURL {
		next := parsedURL.Clone()
		next.Pathname = core.CloneString(newPathname(next.Pathname))
		return next
	})
}

// ReplacePathnameInURL is ReplacePathnameInParsedURL applied to a raw URL.
func ReplacePathnameInURL(newPathname Update[*string]) URLFunc {
	return MapURL(ReplacePathnameInParsedURL(newPathname))
}

// AppendPathnameToParsedURL appends the segments of pathnameToAppend to the
// current pathname. The result always has a single leading slash and no
// empty segments, so appending "" only normalizes the pathname.
func AppendPathnameToParsedURL(pathnameToAppend string) ParsedURLFunc {
	return ReplacePathnameInParsedURL(func(pathname *string) *string {
		return core.String(segment.Append(pathname, pathnameToAppend))
	})
}

// AppendPathnameToURL is AppendPathnameToParsedURL applied to a raw URL.
func AppendPathnameToURL(pathnameToAppend string) URLFunc {
	return MapURL(AppendPathnameToParsedURL(pathnameToAppend))
}
