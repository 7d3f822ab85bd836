// internal/render/json.go
//
// JSON renderer.
package render

import (
	"encoding/json"

	"github.com/yanizio/halyard/internal/media"
)

// JSON renders application/json.  Pretty-printing is a construction-time
// choice; operators flip it in config for debugging, never per request.
type JSON struct {
	claims
	pretty bool
}

// NewJSON returns the JSON renderer.
func NewJSON(pretty bool) *JSON {
	return &JSON{claims: claims{media.JSON}, pretty: pretty}
}

func (r *JSON) Render(v any) ([]byte, error) {
	if r.pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
