package transform

import (
	"strings"

	"github.com/gaurav-prasanna/urlkit/core"
)

// ReplaceHashInParsedURL replaces only the hash. A hash may be given with
// or without its leading '#'; the result always carries it.
func ReplaceHashInParsedURL(newHash Update[*string]) ParsedURLFunc {
	return MapParsedURL(func(parsedURL core.ParsedURL) core.ParsedURL {
		next := parsedURL.Clone()
		next.Hash = core.MapString(newHash(next.Hash), withHashPrefix)
		return next
	})
}

// ReplaceHashInURL is ReplaceHashInParsedURL applied to a raw URL.
func ReplaceHashInURL(newHash Update[*string]) URLFunc {
	return MapURL(ReplaceHashInParsedURL(newHash))
}

func withHashPrefix(hash string) string {
	if strings.HasPrefix(hash, "#") {
		return hash
	}
	return "#" + hash
}
