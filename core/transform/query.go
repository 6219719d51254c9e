package transform

import (
	"github.com/gaurav-prasanna/urlkit/core"
)

// ReplaceQueryInParsedURL replaces the query with the result of newQuery.
// newQuery receives a copy of the current query.
func ReplaceQueryInParsedURL(newQuery Update[core.Query]) ParsedURLFunc {
	return MapParsedURL(func(parsedURL core.ParsedURL) core.ParsedURL {
		next := parsedURL.Clone()
		next.Query = core.CloneQuery(newQuery(next.Query))
		return next
	})
}

// ReplaceQueryInURL is ReplaceQueryInParsedURL applied to a raw URL.
func ReplaceQueryInURL(newQuery Update[core.Query]) URLFunc {
	return MapURL(ReplaceQueryInParsedURL(newQuery))
}

// AddQueryToParsedURL shallow-merges queryToAppend over the current query.
// Keys in queryToAppend replace keys of the same name; other keys are kept.
func AddQueryToParsedURL(queryToAppend core.Query) ParsedURLFunc {
	return ReplaceQueryInParsedURL(func(existing core.Query) core.Query {
		merged := core.CloneQuery(existing)
		for k, vs := range queryToAppend {
			merged[k] = append([]string(nil), vs...)
		}
		return merged
	})
}

// AddQueryToURL is AddQueryToParsedURL applied to a raw URL.
func AddQueryToURL(queryToAppend core.Query) URLFunc {
	return MapURL(AddQueryToParsedURL(queryToAppend))
}
