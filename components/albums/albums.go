// components/albums/albums.go
//
// Demo resource: a small in-memory album catalog.
//
// Context
// -------
// This component exists to exercise the whole rendering stack end to end:
// a presenter, the full format chain, HAL embedding of the tracks field,
// and Collection+JSON item shaping.  Data lives in a package-level slice;
// persistence is deliberately out of scope for this layer, so a real
// deployment swaps the loaders for its own retrieval code.
//
// Registration happens in init(), the same pattern every component
// follows: the resource configuration goes into the resource registry and
// the route component into the component registry.  Chains are composed in
// Routes(), which cmd/web calls after the config is loaded, so the JSON
// pretty toggle and YAML indent from conf/global.yaml take effect.
package albums

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/objx"

	"github.com/yanizio/halyard/internal/component"
	"github.com/yanizio/halyard/internal/config"
	"github.com/yanizio/halyard/internal/link"
	"github.com/yanizio/halyard/internal/pipeline"
	"github.com/yanizio/halyard/internal/record"
	"github.com/yanizio/halyard/internal/render"
	"github.com/yanizio/halyard/internal/resource"
	"github.com/yanizio/halyard/internal/respond"
)

//
// resource configuration
//

var albumResource = &resource.Resource{
	Name: "albums",
	LinkMapping: map[string]string{
		"album":  "album",
		"albums": "album",
	},
	EmbedMapping: map[string]string{
		"tracks": "album-track",
	},
	Templates: map[string]string{
		"album":       "/albums/{id}",
		"album-track": "/albums/{id}/tracks/{number}",
		"listing":     "/albums",
	},
	ListingRel: "listing",
}

//
// demo data
//

var catalog = []objx.Map{
	{
		"id": 1, "title": "Blue Train", "artist": "John Coltrane",
		"stock": 3,
		"tracks": []objx.Map{
			{"number": 1, "title": "Blue Train"},
			{"number": 2, "title": "Moment's Notice"},
		},
	},
	{
		"id": 2, "title": "Giant Steps", "artist": "John Coltrane",
		"stock": 0,
		"tracks": []objx.Map{
			{"number": 1, "title": "Giant Steps"},
			{"number": 2, "title": "Cousin Mary"},
		},
	},
}

// present is the public projection: stock levels are back-office data and
// never leave the warehouse.
func present(rec objx.Map) objx.Map {
	out := record.Clone(rec)
	delete(out, "stock")
	return out
}

//
// component
//

// Albums is the route component.
type Albums struct{}

func (a *Albums) Name() string { return "albums" }

// Routes composes the chains and mounts the two endpoints.  Composition
// errors are startup bugs (duplicate media-type claims), so they panic.
func (a *Albums) Routes() chi.Router {
	listChain, err := pipeline.Compose(pipeline.List(present, "albums"), chainOptions()...)
	if err != nil {
		panic(err)
	}
	entryChain, err := pipeline.Compose(pipeline.Entry(present, "album"), chainOptions()...)
	if err != nil {
		panic(err)
	}

	r := chi.NewRouter()
	r.Get("/albums", respond.Resource(listChain, albumResource, loadList))
	r.Get("/albums/{id}", respond.Resource(entryChain, albumResource, loadEntry))
	return r
}

// chainOptions wires the render tunables from config into the full format
// stack.
func chainOptions() []pipeline.Option {
	pretty, indent := false, 0
	if cfg := config.Get(); cfg != nil {
		pretty, indent = cfg.Render.PrettyJSON, cfg.Render.YAMLIndent
	}
	return []pipeline.Option{
		pipeline.WithRenderer(render.NewJSON(pretty)),
		pipeline.WithRenderer(render.NewYAML(indent)),
		pipeline.WithRenderer(render.NewMsgPack()),
		pipeline.WithRenderer(render.NewEDN()),
		pipeline.WithHAL(),
		pipeline.WithCJ(),
	}
}

//
// loaders
//

// loadList stages the full catalog and the listing-level links.
func loadList(_ *http.Request, rc *pipeline.Context) error {
	rc.Values["albums"] = catalog
	rc.Links = []link.Link{
		{Rel: "self", Href: "/albums"},
		{Rel: "listing", Href: "/albums"},
	}
	rc.LinkTemplates = []link.Template{
		{Rel: "search", Pattern: "/albums{?artist}"},
	}
	return nil
}

// loadEntry stages one album plus its neighbor link.
func loadEntry(r *http.Request, rc *pipeline.Context) error {
	id := chi.URLParam(r, "id")

	var rec, next objx.Map
	for i, album := range catalog {
		if album.Get("id").String() == id {
			rec = album
			if i+1 < len(catalog) {
				next = catalog[i+1]
			}
			break
		}
	}
	if rec == nil {
		return respond.ErrNotFound
	}

	rc.Values["album"] = rec

	self, _ := link.SelfLink(albumResource, "album", rec)
	rc.Links = []link.Link{
		{Rel: "self", Href: self},
		{Rel: "listing", Href: "/albums"},
	}
	if next != nil {
		if href, ok := link.SelfLink(albumResource, "album", next); ok {
			rc.Links = append(rc.Links, link.Link{Rel: "next", Href: href})
		}
	}
	return nil
}

func init() {
	resource.Register(albumResource)
	component.Register(&Albums{})
}
