package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/gaurav-prasanna/urlkit/core"
	"github.com/gaurav-prasanna/urlkit/core/transform"
)

// transformFlags are the transformation flags shared by transform and rewrite.
type transformFlags struct {
	query          []string
	addQuery       []string
	path           string
	pathname       string
	appendPathname []string
	hash           string
	clearHash      bool
	clearPath      bool
}

func (f *transformFlags) register(fs *pflag.FlagSet) {
	// Query flags (mutually exclusive).
	fs.StringArrayVar(&f.query, "query", nil, "Replace the whole query with key=value (repeatable)")
	fs.StringArrayVar(&f.addQuery, "add-query", nil, "Merge key=value into the query, replacing same-named keys (repeatable)")

	// Path flags.
	fs.StringVar(&f.path, "path", "", "Replace the path and query with a path such as /search?q=go")
	fs.StringVar(&f.pathname, "pathname", "", "Replace only the pathname")
	fs.BoolVar(&f.clearPath, "clear-path", false, "Remove the pathname and the query")
	fs.StringArrayVar(&f.appendPathname, "append-pathname", nil, "Append path segments (repeatable)")

	// Hash flags (mutually exclusive).
	fs.StringVar(&f.hash, "hash", "", "Replace the hash (with or without a leading #)")
	fs.BoolVar(&f.clearHash, "clear-hash", false, "Remove the hash")
}

// build validates the flags and returns the transformations they select,
// in the order path, pathname, append, query, hash.
func (f *transformFlags) build(fs *pflag.FlagSet) (transform.ParsedURLFunc, error) {
	if err := f.validate(fs); err != nil {
		return nil, err
	}

	var fns []transform.ParsedURLFunc
	switch {
	case fs.Changed("path"):
		fns = append(fns, transform.ReplacePathInParsedURL(transform.Set(core.String(f.path))))
	case fs.Changed("pathname"):
		fns = append(fns, transform.ReplacePathnameInParsedURL(transform.Set(core.String(f.pathname))))
	case f.clearPath:
		fns = append(fns, transform.ReplacePathInParsedURL(transform.Set[*string](nil)))
	}

	for _, p := range f.appendPathname {
		fns = append(fns, transform.AppendPathnameToParsedURL(p))
	}

	switch {
	case fs.Changed("query"):
		q, err := parseQueryPairs(f.query)
		if err != nil {
			return nil, err
		}
		fns = append(fns, transform.ReplaceQueryInParsedURL(transform.Set(q)))
	case fs.Changed("add-query"):
		q, err := parseQueryPairs(f.addQuery)
		if err != nil {
			return nil, err
		}
		fns = append(fns, transform.AddQueryToParsedURL(q))
	}

	switch {
	case fs.Changed("hash"):
		fns = append(fns, transform.ReplaceHashInParsedURL(transform.Set(core.String(f.hash))))
	case f.clearHash:
		fns = append(fns, transform.ReplaceHashInParsedURL(transform.Set[*string](nil)))
	}

	return transform.Chain(fns...), nil
}

// validate checks that at least one transformation is chosen and that
// conflicting flags are not combined.
func (f *transformFlags) validate(fs *pflag.FlagSet) error {
	exclusive := [][]string{
		{"query", "add-query"},
		{"path", "pathname", "clear-path"},
		{"hash", "clear-hash"},
	}
	for _, group := range exclusive {
		var set []string
		for _, name := range group {
			if fs.Changed(name) {
				set = append(set, "--"+name)
			}
		}
		if len(set) > 1 {
			return fmt.Errorf("%s are mutually exclusive", strings.Join(set, " and "))
		}
	}

	for _, name := range []string{"query", "add-query", "path", "pathname", "clear-path", "append-pathname", "hash", "clear-hash"} {
		if fs.Changed(name) {
			return nil
		}
	}
	return fmt.Errorf("at least one transformation is required: --query, --add-query, --path, --pathname, --clear-path, --append-pathname, --hash, or --clear-hash")
}

// parseQueryPairs turns key=value pairs into a query. A pair without '='
// yields an empty value; repeated keys keep every value in order.
func parseQueryPairs(pairs []string) (core.Query, error) {
	q := core.Query{}
	for _, pair := range pairs {
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			return nil, fmt.Errorf("invalid query pair %q (want key=value)", pair)
		}
		q.Add(key, value)
	}
	return q, nil
}
