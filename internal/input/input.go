// Package input is the JSON boundary of the normalizer. It parses and
// validates request documents and hands the core a clean in-memory
// schema; the algorithms never re-validate.
package input

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/renjen/cse132a-hw3/internal/schema"
)

// Request is the input document format.
type Request struct {
	RelationName string   `json:"relationName"`
	Attributes   []string `json:"attributes"`
	FDs          []RawFD  `json:"functionalDependencies"`
}

// RawFD is an FD as written on the wire. The right side may list
// several attributes; it is split into one FD per right attribute
// before reaching the core.
type RawFD struct {
	Left  []string `json:"left"`
	Right []string `json:"right"`
}

// Load reads and parses a request file into a validated schema.
func Load(path string) (*schema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals, validates, and normalizes a request document.
func Parse(data []byte) (*schema.Schema, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing input file: %w", err)
	}

	if err := req.validate(); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	return req.toSchema(), nil
}

func (r *Request) validate() error {
	if len(r.Attributes) == 0 {
		return fmt.Errorf("attributes must be a non-empty list")
	}

	known := schema.NewAttrSet(r.Attributes...)
	for i, f := range r.FDs {
		if len(f.Left) == 0 || len(f.Right) == 0 {
			return fmt.Errorf("FD #%d must have non-empty left and right", i)
		}
		for _, a := range f.Left {
			if !known[a] {
				return fmt.Errorf("FD #%d contains unknown attribute %q", i, a)
			}
		}
		for _, a := range f.Right {
			if !known[a] {
				return fmt.Errorf("FD #%d contains unknown attribute %q", i, a)
			}
		}
	}

	return nil
}

// NewRequest converts a schema back to the wire format, used to emit
// introspected schemas as input documents.
func NewRequest(s *schema.Schema) *Request {
	req := &Request{
		RelationName: s.Name,
		Attributes:   s.Attributes.Sorted(),
	}
	for _, f := range s.FDs {
		req.FDs = append(req.FDs, RawFD{
			Left:  f.Left.Sorted(),
			Right: []string{f.Right},
		})
	}
	return req
}

// WriteRequest encodes a request document two-space-indented.
func WriteRequest(w io.Writer, req *Request) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(req); err != nil {
		return fmt.Errorf("encoding input document: %w", err)
	}
	return nil
}

// toSchema converts a validated request to the core schema, splitting
// multi-attribute right sides one FD per right attribute.
func (r *Request) toSchema() *schema.Schema {
	name := r.RelationName
	if name == "" {
		name = "R"
	}

	var fds []schema.FD
	for _, f := range r.FDs {
		left := schema.NewAttrSet(f.Left...)
		for _, right := range f.Right {
			fds = append(fds, schema.FD{Left: left.Clone(), Right: right})
		}
	}

	return &schema.Schema{
		Name:       name,
		Attributes: schema.NewAttrSet(r.Attributes...),
		FDs:        fds,
	}
}
