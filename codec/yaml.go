package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	ptree "github.com/reoring/ptree"
	"github.com/reoring/ptree/internal/formwire"
)

// DecodeYAML parses the YAML wire shape (a sequence mirroring the JSON array
// shape) into a raw form. Numbers decode as int or float64 per YAML rules.
func DecodeYAML(data []byte) (ptree.Form, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return ptree.Form{}, fmt.Errorf("codec: decode yaml: %w", err)
	}
	f, err := formwire.FromAny(v)
	if err != nil {
		return ptree.Form{}, fmt.Errorf("codec: decode yaml: %w", err)
	}
	return f, nil
}

// EncodeYAML renders f into its YAML wire shape.
func EncodeYAML(f ptree.Form) ([]byte, error) {
	data, err := yaml.Marshal(formwire.ToAny(f))
	if err != nil {
		return nil, fmt.Errorf("codec: encode yaml: %w", err)
	}
	return data, nil
}
