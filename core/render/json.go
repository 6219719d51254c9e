package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/urlkit/core"
)

// JSONRenderer produces the JSON form of a parsed URL.
// Absent components are written as null.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// RenderParsedURL marshals p as indented JSON.
func (r *JSONRenderer) RenderParsedURL(p core.ParsedURL) ([]byte, error) {
	if p.Query == nil {
		p.Query = core.Query{}
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
