// internal/respond/respond_test.go
//
// Unit-tests for finalization and the HTTP adapter.
//
// Workflow / Structure
// --------------------
// The adapter tests run the full stack the way a component does: default
// chain, fixture resource, loader staging records and links, httptest
// request in, negotiated body out.  Finalize-only tests cover the
// link-merge and envelope rules that don't need a socket.
//
// Run: go test ./internal/respond -v

package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/objx"
	"github.com/stretchr/testify/require"

	"github.com/yanizio/halyard/internal/cjson"
	"github.com/yanizio/halyard/internal/link"
	"github.com/yanizio/halyard/internal/media"
	"github.com/yanizio/halyard/internal/pipeline"
	"github.com/yanizio/halyard/internal/resource"
)

func fixture() *resource.Resource {
	return &resource.Resource{
		Name:        "items",
		LinkMapping: map[string]string{"item": "item", "data": "item"},
		Templates: map[string]string{
			"item":    "/items/{id}",
			"listing": "/items",
		},
		ListingRel: "listing",
	}
}

/*────────────────────────────── HTTP adapter ───────────────────────────────*/

func TestResource_PlainJSON(t *testing.T) {
	chain, err := pipeline.DefaultEntry(nil, "item")
	require.NoError(t, err)

	h := Resource(chain, fixture(), func(_ *http.Request, rc *pipeline.Context) error {
		rc.Values["item"] = objx.Map{"id": 1, "name": "a"}
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/items/1", nil)
	req.Header.Set("Accept", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, media.JSON, rr.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, map[string]any{"id": float64(1), "name": "a"}, body)
}

func TestResource_HALList(t *testing.T) {
	chain, err := pipeline.DefaultList(nil, "data")
	require.NoError(t, err)

	h := Resource(chain, fixture(), func(_ *http.Request, rc *pipeline.Context) error {
		rc.Values["data"] = []objx.Map{{"id": 1, "name": "a"}, {"id": 2, "name": "b"}}
		rc.Links = []link.Link{{Rel: "self", Href: "/items"}}
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req.Header.Set("Accept", media.HAL)
	rr := httptest.NewRecorder()
	h(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, media.HAL, rr.Header().Get("Content-Type"))

	body := objx.MustFromJSON(rr.Body.String())
	require.Equal(t, "/items", body.Get("_links.self.href").Str())

	records := body.Get("_embedded.data").InterSlice()
	require.Len(t, records, 2)
	first := objx.Map(records[0].(map[string]any))
	require.Equal(t, "/items/1", first.Get("_links.self.href").Str())
	second := objx.Map(records[1].(map[string]any))
	require.Equal(t, "/items/2", second.Get("_links.self.href").Str())
}

func TestResource_CJSingleWithExtraRelation(t *testing.T) {
	chain, err := pipeline.DefaultEntry(nil, "item")
	require.NoError(t, err)

	h := Resource(chain, fixture(), func(_ *http.Request, rc *pipeline.Context) error {
		rc.Values["item"] = objx.Map{"id": 1, "name": "a"}
		rc.Links = []link.Link{
			{Rel: "self", Href: "/items/1"},
			{Rel: "listing", Href: "/items"},
			{Rel: "next", Href: "/items/2"},
		}
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/items/1", nil)
	req.Header.Set("Accept", media.CJ)
	rr := httptest.NewRecorder()
	h(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, media.CJ, rr.Header().Get("Content-Type"))

	var env cjson.Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))

	coll := env.Collection
	require.Equal(t, "1.0", coll.Version)
	require.Equal(t, "/items", coll.Href, "collection href is the listing link")
	require.Empty(t, coll.Links, "single-item collections keep no collection-level relations")

	require.Len(t, coll.Items, 1)
	item := coll.Items[0]
	require.Equal(t, "/items/1", item.Href)
	require.Equal(t, []cjson.Link{{Rel: "next", Href: "/items/2"}}, item.Links)
}

func TestResource_CJMultiKeepsCollectionLinks(t *testing.T) {
	chain, err := pipeline.DefaultList(nil, "data")
	require.NoError(t, err)

	h := Resource(chain, fixture(), func(_ *http.Request, rc *pipeline.Context) error {
		rc.Values["data"] = []objx.Map{{"id": 1}, {"id": 2}}
		rc.Links = []link.Link{
			{Rel: "listing", Href: "/items"},
			{Rel: "next", Href: "/items?page=2"},
		}
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req.Header.Set("Accept", media.CJ)
	rr := httptest.NewRecorder()
	h(rr, req)

	var env cjson.Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))

	require.Len(t, env.Collection.Items, 2)
	require.Equal(t, []cjson.Link{
		{Rel: "listing", Href: "/items"},
		{Rel: "next", Href: "/items?page=2"},
	}, env.Collection.Links)
	for _, it := range env.Collection.Items {
		require.Empty(t, it.Links)
	}
}

func TestResource_NotAcceptable(t *testing.T) {
	chain, err := pipeline.DefaultEntry(nil, "item")
	require.NoError(t, err)

	h := Resource(chain, fixture(), nil)

	req := httptest.NewRequest(http.MethodGet, "/items/1", nil)
	req.Header.Set("Accept", "text/html")
	rr := httptest.NewRecorder()
	h(rr, req)

	require.Equal(t, http.StatusNotAcceptable, rr.Code)
}

func TestResource_LoadNotFound(t *testing.T) {
	chain, err := pipeline.DefaultEntry(nil, "item")
	require.NoError(t, err)

	h := Resource(chain, fixture(), func(_ *http.Request, _ *pipeline.Context) error {
		return ErrNotFound
	})

	req := httptest.NewRequest(http.MethodGet, "/items/404", nil)
	req.Header.Set("Accept", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

/*─────────────────────────────── Finalize ──────────────────────────────────*/

func TestFinalize_HALMergesTemplatesAndKeepsRecordSelf(t *testing.T) {
	rc := pipeline.NewContext(media.HAL, fixture())
	res := &pipeline.Result{
		Key: "item",
		Body: pipeline.PendingHAL{Shaped: objx.Map{
			"id":     1,
			"_links": objx.Map{"self": objx.Map{"href": "/items/1"}},
		}},
		Links:     []link.Link{{Rel: "self", Href: "/should-lose"}, {Rel: "up", Href: "/items"}},
		Templates: []link.Template{{Rel: "search", Pattern: "/items{?q}"}},
	}

	ct, body, err := Finalize(rc, res)
	require.NoError(t, err)
	require.Equal(t, media.HAL, ct)

	m := objx.MustFromJSON(string(body))
	require.Equal(t, "/items/1", m.Get("_links.self.href").Str(),
		"record-level self link wins over a captured link of the same relation")
	require.Equal(t, "/items", m.Get("_links.up.href").Str())
	require.Equal(t, "/items{?q}", m.Get("_links.search.href").Str())
	require.True(t, m.Get("_links.search.templated").Bool())
}

func TestFinalize_CJSingleHrefNormalized(t *testing.T) {
	rc := pipeline.NewContext(media.CJ, fixture())
	rc.PathPrefix = "/api"
	res := &pipeline.Result{
		Key: "item",
		Body: pipeline.PendingCJ{
			Items:  []cjson.Item{{Href: "/v2/../items/5"}},
			Single: true,
		},
	}

	_, body, err := Finalize(rc, res)
	require.NoError(t, err)

	var env cjson.Envelope
	require.NoError(t, json.Unmarshal(body, &env))
	require.Equal(t, "/api/items/5", env.Collection.Items[0].Href)
}

func TestFinalize_NilBodyNotAcceptable(t *testing.T) {
	rc := pipeline.NewContext("text/html", nil)
	_, _, err := Finalize(rc, &pipeline.Result{Key: "item"})
	require.ErrorIs(t, err, ErrNotAcceptable)
}
