// internal/render/yaml.go
//
// YAML renderer.
//
// Claims the whole YAML MIME family (application/yaml, application/x-yaml,
// text/yaml, text/x-yaml); clients disagree on the spelling and there is no
// reason to punish any of them.  Output is block style, which is what
// yaml.v3 emits by default for nested maps and sequences.
package render

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/yanizio/halyard/internal/media"
)

// YAML renders the YAML MIME family.
type YAML struct {
	claims
	indent int
}

// NewYAML returns the YAML renderer.  indent ≤ 0 falls back to the
// library default of 4 spaces.
func NewYAML(indent int) *YAML {
	return &YAML{claims: claims(media.YAMLFamily), indent: indent}
}

func (r *YAML) Render(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if r.indent > 0 {
		enc.SetIndent(r.indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
