// internal/pipeline/factories.go
//
// Entry-handler factories.
//
// Context
// -------
// The two canonical ways into a chain: Entry presents the single record a
// loader stored under a key, List maps the presenter over a stored
// sequence.  Both record the key as the render's active data key so every
// later stage reads through it.  The Default variants pre-wrap the full
// format stack for callers that don't need custom composition.
package pipeline

import (
	"github.com/stretchr/objx"

	"github.com/yanizio/halyard/internal/record"
	"github.com/yanizio/halyard/internal/render"
)

// Presenter maps one stored record to its public representation.  A nil
// Presenter passes records through unchanged.
type Presenter func(objx.Map) objx.Map

// Entry returns a handler presenting the single record under key.
func Entry(p Presenter, key string) Handler {
	return func(rc *Context) (*Result, error) {
		res := &Result{Key: key}
		if rec, ok := record.AsMap(rc.Values[key]); ok {
			res.Value = present(p, rec)
		}
		return res, nil
	}
}

// List returns a handler presenting every record under key.
func List(p Presenter, key string) Handler {
	return func(rc *Context) (*Result, error) {
		res := &Result{Key: key}
		if records, ok := record.AsList(rc.Values[key]); ok {
			out := make([]objx.Map, 0, len(records))
			for _, rec := range records {
				out = append(out, present(p, rec))
			}
			res.Value = out
		}
		return res, nil
	}
}

func present(p Presenter, rec objx.Map) objx.Map {
	if p == nil {
		return rec
	}
	return p(rec)
}

// defaultOptions is the full format stack: the four plain renderers plus
// both hypermedia assemblers.
func defaultOptions() []Option {
	return []Option{
		WithRenderer(render.NewJSON(false)),
		WithRenderer(render.NewYAML(0)),
		WithRenderer(render.NewMsgPack()),
		WithRenderer(render.NewEDN()),
		WithHAL(),
		WithCJ(),
	}
}

// DefaultEntry is Entry pre-wrapped with the default chain.
func DefaultEntry(p Presenter, key string) (*Chain, error) {
	return Compose(Entry(p, key), defaultOptions()...)
}

// DefaultList is List pre-wrapped with the default chain.
func DefaultList(p Presenter, key string) (*Chain, error) {
	return Compose(List(p, key), defaultOptions()...)
}
