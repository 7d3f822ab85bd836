// internal/respond/finalize.go
//
// Second-pass body finalization.
//
// Context
// -------
// Plain formats leave the chain as finished bytes, but the hypermedia
// formats cannot: the links a discovery pass attached to the request are
// captured by the chain's last step, after shaping already ran.  Finalize
// is that second pass.  It switches on the Body sum type — raw bytes pass
// through, a pending HAL shape gets its resource-level _links merged, a
// pending Collection+JSON item set gets its envelope — and serializes.
//
// Relation placement for Collection+JSON follows the convention: a
// one-record render moves every relation except self and the listing onto
// the item itself, and a multi-record render keeps relations at the
// collection level.  The single-item href is joined onto the request's
// path prefix and ".."-normalized.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.
package respond

import (
	"encoding/json"
	"errors"

	"github.com/stretchr/objx"

	"github.com/yanizio/halyard/internal/cjson"
	"github.com/yanizio/halyard/internal/link"
	"github.com/yanizio/halyard/internal/media"
	"github.com/yanizio/halyard/internal/pipeline"
	"github.com/yanizio/halyard/internal/record"
)

// ErrNotAcceptable reports that no renderer claimed the negotiated media
// type; the host maps it to its 406-equivalent.
var ErrNotAcceptable = errors.New("respond: no renderer for negotiated media type")

// Finalize turns a render result into a finished body and content type.
func Finalize(rc *pipeline.Context, res *pipeline.Result) (string, []byte, error) {
	switch b := res.Body.(type) {
	case pipeline.Raw:
		return b.ContentType, b.Bytes, nil

	case pipeline.PendingHAL:
		body, err := finalizeHAL(res, b)
		return media.HAL, body, err

	case pipeline.PendingCJ:
		body, err := finalizeCJ(rc, res, b)
		return media.CJ, body, err

	default:
		return "", nil, ErrNotAcceptable
	}
}

/*────────────────────────────────── HAL ────────────────────────────────────*/

// finalizeHAL merges the captured links and templates into the shaped
// body's _links and serializes.  A record-level self link wins over a
// context-level link of the same relation.
func finalizeHAL(res *pipeline.Result, b pipeline.PendingHAL) ([]byte, error) {
	merged := objx.Map{}
	for _, l := range res.Links {
		attrs := objx.Map{"href": l.Href}
		if l.Templated {
			attrs["templated"] = true
		}
		merged[l.Rel] = attrs
	}
	for _, t := range res.Templates {
		merged[t.Rel] = objx.Map{"href": t.Pattern, "templated": true}
	}

	shaped := record.Clone(b.Shaped)
	if own, ok := record.AsMap(shaped["_links"]); ok {
		for rel, attrs := range own {
			merged[rel] = attrs
		}
	}
	if len(merged) > 0 {
		shaped["_links"] = merged
	}
	return json.Marshal(shaped)
}

/*────────────────────────────── Collection+JSON ────────────────────────────*/

// finalizeCJ builds the collection envelope around the shaped items.
func finalizeCJ(rc *pipeline.Context, res *pipeline.Result, b pipeline.PendingCJ) ([]byte, error) {
	listingRel := "listing"
	if rc.Resource != nil && rc.Resource.ListingRel != "" {
		listingRel = rc.Resource.ListingRel
	}

	coll := cjson.Collection{
		Version: "1.0",
		Href:    rc.RequestURI,
		Links:   []cjson.Link{},
		Items:   b.Items,
	}
	for _, l := range res.Links {
		if l.Rel == listingRel {
			coll.Href = l.Href
			break
		}
	}

	if b.Single && len(coll.Items) == 1 {
		item := &coll.Items[0]
		for _, l := range res.Links {
			if l.Rel == "self" || l.Rel == listingRel {
				continue
			}
			item.Links = append(item.Links, cjson.Link{Rel: l.Rel, Href: l.Href})
		}
		if item.Href != "" {
			item.Href = link.Normalize(joinPrefix(rc.PathPrefix, item.Href))
		}
	} else {
		for _, l := range res.Links {
			coll.Links = append(coll.Links, cjson.Link{Rel: l.Rel, Href: l.Href})
		}
	}

	return json.Marshal(cjson.Envelope{Collection: coll})
}

// joinPrefix splices the request's context prefix in front of an href.
func joinPrefix(prefix, href string) string {
	if prefix == "" {
		return href
	}
	if href == "" {
		return prefix
	}
	if href[0] == '/' {
		return prefix + href
	}
	return prefix + "/" + href
}
