// internal/pipeline/chain.go
//
// Handler chain composition.
//
// Context
// -------
// Compose turns a "present this data" entry handler into a chain that
// negotiates formats and shapes hypermedia.  Renderer dispatch is a
// media-type → renderer table built once at composition, so exactly one
// renderer fires per request and selection costs one map lookup.  The
// advertised media-type list is computed here too — an immutable snapshot
// in registration order, not a process-wide accumulator.
//
// Stage order is structural, not conventional: the entry handler runs
// first, dispatch second, and link capture is hard-wired as the final step
// of Serve.  There is no way to register a stage after link capture, so
// the "capture must run last" invariant cannot be broken by a caller.
//
// Notes
// -----
// • Duplicate media-type claims are a composition error, surfacing
//   configuration drift at startup instead of shadowing a renderer at
//   runtime.
// • Oxford commas, two spaces after periods.
package pipeline

import (
	"fmt"

	"github.com/yanizio/halyard/internal/cjson"
	"github.com/yanizio/halyard/internal/hal"
	"github.com/yanizio/halyard/internal/media"
	"github.com/yanizio/halyard/internal/render"
)

// Handler produces a render result from a request context.
type Handler func(*Context) (*Result, error)

// Chain is an immutable composed pipeline.
type Chain struct {
	entry Handler
	table map[string]render.Renderer
	types []string // advertised, registration order
	hal   bool
	cj    bool
}

// Option configures a chain during Compose.
type Option func(*Chain) error

// Compose builds a chain around an entry handler.  Options run in order;
// the first failure aborts composition.
func Compose(entry Handler, opts ...Option) (*Chain, error) {
	if entry == nil {
		return nil, fmt.Errorf("pipeline: nil entry handler")
	}
	c := &Chain{
		entry: entry,
		table: map[string]render.Renderer{},
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// WithRenderer adds a plain format renderer.  Every claimed media type
// must be unclaimed so far.
func WithRenderer(r render.Renderer) Option {
	return func(c *Chain) error {
		for _, mt := range r.MediaTypes() {
			if _, taken := c.table[mt]; taken {
				return fmt.Errorf("pipeline: media type %q claimed twice", mt)
			}
			c.table[mt] = r
			c.types = append(c.types, mt)
		}
		return nil
	}
}

// WithHAL enables the HAL assembler stage.
func WithHAL() Option {
	return func(c *Chain) error {
		if c.hal {
			return fmt.Errorf("pipeline: media type %q claimed twice", media.HAL)
		}
		c.hal = true
		c.types = append(c.types, media.HAL)
		return nil
	}
}

// WithCJ enables the Collection+JSON assembler stage.
func WithCJ() Option {
	return func(c *Chain) error {
		if c.cj {
			return fmt.Errorf("pipeline: media type %q claimed twice", media.CJ)
		}
		c.cj = true
		c.types = append(c.types, media.CJ)
		return nil
	}
}

// MediaTypes returns the advertised media types in registration order.
// Callers must not mutate the returned slice.
func (c *Chain) MediaTypes() []string { return c.types }

// Serve runs the chain: entry handler, then format dispatch, then link
// capture.  An unmatched media type leaves Body nil and the result
// otherwise untouched, for the host to turn into its not-acceptable
// response.
func (c *Chain) Serve(rc *Context) (*Result, error) {
	res, err := c.entry(rc)
	if err != nil {
		return nil, err
	}

	switch {
	case c.table[rc.MediaType] != nil:
		r := c.table[rc.MediaType]
		b, err := r.Render(res.Value)
		if err != nil {
			return nil, err
		}
		res.Body = Raw{ContentType: rc.MediaType, Bytes: b}

	case c.hal && rc.MediaType == media.HAL:
		res.Body = PendingHAL{Shaped: hal.Assemble(rc.Resource, res.Key, res.Value)}

	case c.cj && rc.MediaType == media.CJ:
		items, single := cjson.Assemble(rc.Resource, res.Key, res.Value)
		res.Body = PendingCJ{Items: items, Single: single}
	}

	// Link capture.  Always the final step: it sees the finished result
	// shape, and nothing can be composed after it.
	res.Links = rc.Links
	res.Templates = rc.LinkTemplates
	return res, nil
}
