// internal/pipeline/result.go
//
// Render result and the rendered-body sum type.
//
// Context
// -------
// A Result is what a chain produces: the active data key, the value under
// it, the captured links, and a Body describing how far rendering got.
// Body is a closed sum — raw bytes from a plain renderer, or a pending
// hypermedia shape awaiting its second, link-merging pass — so the
// finalizer switches on a type instead of probing an open map for marker
// keys.  A nil Body means no renderer claimed the media type and the
// result falls through untouched.
package pipeline

import (
	"github.com/stretchr/objx"

	"github.com/yanizio/halyard/internal/cjson"
	"github.com/yanizio/halyard/internal/link"
)

// Result is the pipeline-internal render result.
type Result struct {
	// Key names which entry of the context values holds the payload.
	// Exactly one key is active per render; every stage reads and writes
	// through it.
	Key string

	// Value is the presented payload under Key.
	Value any

	// Links and Templates are captured from the context by the chain's
	// final step.
	Links     []link.Link
	Templates []link.Template

	// Body is nil until a renderer or assembler claims the request.
	Body Body
}

// Body is the rendered-body sum type.
type Body interface{ body() }

// Raw is a fully serialized body; nothing downstream touches it.
type Raw struct {
	ContentType string
	Bytes       []byte
}

// PendingHAL is a HAL shape awaiting the finalizer's _links merge.
type PendingHAL struct {
	Shaped objx.Map
}

// PendingCJ is a Collection+JSON item set awaiting envelope assembly.
// Single marks a one-record render, which moves its relations onto the
// item during finalization.
type PendingCJ struct {
	Items  []cjson.Item
	Single bool
}

func (Raw) body()        {}
func (PendingHAL) body() {}
func (PendingCJ) body()  {}
