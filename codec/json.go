package codec

import (
	"fmt"

	j "github.com/goccy/go-json"

	ptree "github.com/reoring/ptree"
	"github.com/reoring/ptree/internal/formwire"
)

// DecodeJSON parses the JSON wire shape ["op", a, b] (recursively nested)
// into a raw form. Numbers decode as float64.
func DecodeJSON(data []byte) (ptree.Form, error) {
	var v any
	if err := j.Unmarshal(data, &v); err != nil {
		return ptree.Form{}, fmt.Errorf("codec: decode json: %w", err)
	}
	f, err := formwire.FromAny(v)
	if err != nil {
		return ptree.Form{}, fmt.Errorf("codec: decode json: %w", err)
	}
	return f, nil
}

// EncodeJSON renders f into its JSON wire shape.
func EncodeJSON(f ptree.Form) ([]byte, error) {
	data, err := j.Marshal(formwire.ToAny(f))
	if err != nil {
		return nil, fmt.Errorf("codec: encode json: %w", err)
	}
	return data, nil
}
