package input

import (
	"encoding/json"
	"fmt"
	"io"
)

// Result pairs the two decompositions of one schema.
type Result struct {
	ThreeNF [][]string `json:"3nf"`
	BCNF    [][]string `json:"bcnf"`
}

// WriteJSON encodes the result two-space-indented, followed by a newline.
func WriteJSON(w io.Writer, res *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}
