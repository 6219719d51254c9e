// Package transform builds URL transformations.
//
// Every transformation exists at two levels. The record level maps one
// core.ParsedURL to another. The string level composes that mapping with
// the parse/serialize adapter through MapURL. Both are configured first and
// applied last, so a transformation can be built once and reused:
//
//	addRef := transform.AddQueryToURL(core.Query{"ref": {"mail"}})
//	out, err := addRef("https://example.com/item?id=1")
package transform

import (
	"github.com/gaurav-prasanna/urlkit/core"
	"github.com/gaurav-prasanna/urlkit/core/parse"
)

// ParsedURLFunc maps a parsed URL to a new parsed URL.
type ParsedURLFunc func(parsedURL core.ParsedURL) core.ParsedURL

// URLFunc maps a raw URL to a new raw URL.
// The only error it returns is the parser's.
type URLFunc func(rawURL string) (string, error)

// Update computes the new value of a field from its current value.
type Update[T any] func(current T) T

// Set returns an Update that ignores the current value and yields v.
func Set[T any](v T) Update[T] {
	return func(T) T { return v }
}

// MapParsedURL establishes the record-level calling convention.
func MapParsedURL(fn ParsedURLFunc) ParsedURLFunc {
	return func(parsedURL core.ParsedURL) core.ParsedURL {
		return fn(parsedURL)
	}
}

// MapURL lifts a record-level mapping to raw URL strings:
// parse, apply fn, serialize.
func MapURL(fn ParsedURLFunc) URLFunc {
	return func(rawURL string) (string, error) {
		parsedURL, err := parse.ParseURLWithQueryString(rawURL)
		if err != nil {
			return "", err
		}
		return parse.SerializeURL(fn(parsedURL)), nil
	}
}

// Chain applies fns left to right.
func Chain(fns ...ParsedURLFunc) ParsedURLFunc {
	return MapParsedURL(func(parsedURL core.ParsedURL) core.ParsedURL {
		for _, fn := range fns {
			parsedURL = fn(parsedURL)
		}
		return parsedURL
	})
}
