// internal/hal/hal.go
//
// HAL shaping.
//
// Context
// -------
// Given the active data key and the rendered value (one record or a
// sequence of records), produce the HAL body shape: each record annotated
// with a self link under "_links", embeddable fields pulled out into
// "_embedded" with their own self links, and sequences wrapped as
// _embedded[key].  Resource-level links are merged in later by the
// response finalizer, which is the only stage that can see the links the
// discovery pass attached to the request context.
//
// Shaping never fails.  A record without an addressable identity renders
// without a self link; an embed mapping pointing at a missing field yields
// an empty embedded list.  Presenters and embed configuration evolve
// independently, so the assembler absorbs their drift instead of erroring.
//
// Notes
// -----
// • Embed fields are processed in sorted order for deterministic output.
// • Oxford commas, two spaces after periods.
package hal

import (
	"sort"

	"github.com/stretchr/objx"

	"github.com/yanizio/halyard/internal/link"
	"github.com/yanizio/halyard/internal/record"
	"github.com/yanizio/halyard/internal/resource"
)

// Assemble shapes v for HAL output.  Sequences become
// {"_embedded": {key: [...]}}; single records keep their fields top-level.
// Anything else shapes to an empty object.
func Assemble(res *resource.Resource, key string, v any) objx.Map {
	if records, ok := record.AsList(v); ok {
		shaped := make([]objx.Map, 0, len(records))
		for _, rec := range records {
			shaped = append(shaped, shapeRecord(res, key, rec))
		}
		return objx.Map{"_embedded": objx.Map{key: shaped}}
	}
	if rec, ok := record.AsMap(v); ok {
		return shapeRecord(res, key, rec)
	}
	return objx.Map{}
}

// shapeRecord self-links one record and applies the embed transform.
func shapeRecord(res *resource.Resource, key string, rec objx.Map) objx.Map {
	shaped := record.Clone(rec)
	if href, ok := link.SelfLink(res, key, rec); ok {
		shaped["_links"] = objx.Map{"self": objx.Map{"href": href}}
	}
	return embedTransform(res, rec, shaped)
}

// embedTransform moves every mapped embed field of shaped into _embedded,
// self-linking each child by expanding the mapped relation's template
// against host+child bindings (child fields win on collision).
func embedTransform(res *resource.Resource, host objx.Map, shaped objx.Map) objx.Map {
	if res == nil || len(res.EmbedMapping) == 0 {
		return shaped
	}

	fields := make([]string, 0, len(res.EmbedMapping))
	for f := range res.EmbedMapping {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var embedded objx.Map
	for _, field := range fields {
		rel := res.EmbedMapping[field]
		raw, present := shaped[field]
		delete(shaped, field)

		// Mapping drift (field absent, or not a sequence) produces an
		// empty embedded list, never a failure.
		children := []objx.Map{}
		if present {
			if list, ok := record.AsList(raw); ok {
				children = list
			}
		}

		pattern, havePattern := link.TemplateFor(res, rel)
		shapedChildren := make([]objx.Map, 0, len(children))
		for _, child := range children {
			out := record.Clone(child)
			if havePattern {
				bindings := record.Merge(host, child)
				if href, err := link.Expand(pattern, bindings); err == nil {
					out["_links"] = objx.Map{"self": objx.Map{"href": href}}
				}
			}
			shapedChildren = append(shapedChildren, out)
		}

		if embedded == nil {
			embedded = objx.Map{}
		}
		embedded[field] = shapedChildren
	}

	if embedded != nil {
		shaped["_embedded"] = embedded
	}
	return shaped
}
