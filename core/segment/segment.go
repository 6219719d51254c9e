// Package segment splits pathnames into segments and joins them back.
// Empty segments from leading, trailing or repeated slashes are dropped.
package segment

import "strings"

// Split returns the non-empty '/'-delimited segments of pathname.
// A nil pathname has no segments.
func Split(pathname *string) []string {
	if pathname == nil {
		return nil
	}
	return strings.FieldsFunc(*pathname, func(r rune) bool {
		return r == '/'
	})
}

// Join rebuilds a pathname with a single leading slash.
func Join(segments []string) string {
	return "/" + strings.Join(segments, "/")
}

// Append concatenates the segments of base and suffix, in order.
func Append(base *string, suffix string) string {
	segments := Split(base)
	segments = append(segments, Split(&suffix)...)
	return Join(segments)
}
