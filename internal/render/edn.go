// internal/render/edn.go
//
// EDN renderer — textual extensible-data-notation output, mostly consumed
// by Clojure-side clients that prefer keywords over JSON strings.
package render

import (
	"olympos.io/encoding/edn"

	"github.com/yanizio/halyard/internal/media"
)

// EDN renders application/edn.
type EDN struct {
	claims
}

// NewEDN returns the EDN renderer.
func NewEDN() *EDN {
	return &EDN{claims: claims{media.EDN}}
}

func (r *EDN) Render(v any) ([]byte, error) {
	return edn.Marshal(v)
}
