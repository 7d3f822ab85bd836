// internal/pipeline/context.go
//
// Per-request rendering context.
//
// Context
// -------
// The host framework builds one Context per request and hands it to a
// Chain.  It bundles the negotiated media type, the resource's hypermedia
// configuration, the links a discovery pass attached, and a keyed Values
// map that is the handlers' one write channel.  Everything else is
// read-only to the pipeline.
//
// Notes
// -----
// • Values is an objx.Map so handlers and presenters share the same
//   loosely-typed record vocabulary.
// • Oxford commas, two spaces after periods.
package pipeline

import (
	"github.com/stretchr/objx"

	"github.com/yanizio/halyard/internal/link"
	"github.com/yanizio/halyard/internal/resource"
)

// Context carries one request through a chain.
type Context struct {
	// MediaType is the negotiated output format.
	MediaType string

	// Resource is the hypermedia configuration of the resource being
	// rendered; may be nil for link-free rendering.
	Resource *resource.Resource

	// PathPrefix is the request's context prefix, applied during
	// Collection+JSON href normalization.
	PathPrefix string

	// RequestURI is the original request URI, the fallback collection
	// href when the resource declares no listing relation.
	RequestURI string

	// Links and LinkTemplates are populated by the external
	// link-discovery pass before the chain runs.
	Links         []link.Link
	LinkTemplates []link.Template

	// Values is the keyed payload store handlers write through.
	Values objx.Map
}

// NewContext returns a Context with an empty value store.
func NewContext(mediaType string, res *resource.Resource) *Context {
	return &Context{
		MediaType: mediaType,
		Resource:  res,
		Values:    objx.Map{},
	}
}
