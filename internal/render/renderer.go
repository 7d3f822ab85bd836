// internal/render/renderer.go
//
// Format renderer contract.
//
// Context
// -------
// A Renderer owns one wire format end to end: it declares every MIME string
// it answers to, decides whether a negotiated media type is one of its own,
// and serializes a value to bytes.  Renderers are pure; the only state they
// carry is construction-time configuration (indent width, pretty toggle).
//
// Claimed media types are static data.  The pipeline composer collects them
// into an immutable per-chain list when the chain is built, so there is no
// process-wide mutable accumulator to guard.
//
// Notes
// -----
// • Applicable must be an exact-string check over MediaTypes(); wildcard
//   handling belongs to negotiation, not to renderers.
// • Oxford commas, two spaces after periods.
package render

// Renderer serializes values for one wire format.
type Renderer interface {
	// MediaTypes returns every MIME string this renderer claims.  The
	// first entry is the canonical one used for the Content-Type header.
	MediaTypes() []string

	// Applicable reports whether mediaType is one of the claimed strings.
	Applicable(mediaType string) bool

	// Render serializes v.  Encoder failures propagate unchanged; the
	// pipeline never swallows them.
	Render(v any) ([]byte, error)
}

// claims implements the Applicable boilerplate shared by every renderer.
type claims []string

func (c claims) MediaTypes() []string { return c }

func (c claims) Applicable(mediaType string) bool {
	for _, mt := range c {
		if mt == mediaType {
			return true
		}
	}
	return false
}
