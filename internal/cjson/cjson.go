// internal/cjson/cjson.go
//
// Collection+JSON shaping.
//
// Context
// -------
// Collection+JSON flattens every record into an item — its resolved self
// href plus a name/value projection of its fields — and hangs the items
// off a collection envelope.  This package owns the item shaping; the
// response finalizer owns the envelope, because the envelope needs the
// request-level links the pipeline captures after shaping runs.
//
// Items are transient: they live for one render pass and are discarded
// once bytes leave the encoder.
//
// Notes
// -----
// • Datum order is sorted by name so two renders of the same record are
//   byte-identical.
// • Oxford commas, two spaces after periods.
package cjson

import (
	"sort"

	"github.com/yanizio/halyard/internal/link"
	"github.com/yanizio/halyard/internal/record"
	"github.com/yanizio/halyard/internal/resource"
)

// Datum is one name/value pair of an item's data projection.
type Datum struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Link is a collection- or item-level relation.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// Item is one collection member.
type Item struct {
	Href  string  `json:"href,omitempty"`
	Data  []Datum `json:"data"`
	Links []Link  `json:"links,omitempty"`
}

// Collection is the envelope payload.
type Collection struct {
	Version string `json:"version"`
	Href    string `json:"href,omitempty"`
	Links   []Link `json:"links"`
	Items   []Item `json:"items"`
}

// Envelope is the top-level Collection+JSON document.
type Envelope struct {
	Collection Collection `json:"collection"`
}

// Assemble shapes v into items.  single reports whether v was one record
// (rendered as a one-item collection) rather than a sequence.
func Assemble(res *resource.Resource, key string, v any) (items []Item, single bool) {
	if records, ok := record.AsList(v); ok {
		items = make([]Item, 0, len(records))
		for _, rec := range records {
			items = append(items, ItemFor(res, key, rec))
		}
		return items, false
	}
	if rec, ok := record.AsMap(v); ok {
		return []Item{ItemFor(res, key, rec)}, true
	}
	return []Item{}, false
}

// ItemFor flattens one record: self href (omitted when the resource has no
// addressable identity for this key) plus sorted name/value data.
func ItemFor(res *resource.Resource, key string, rec map[string]any) Item {
	href, _ := link.SelfLink(res, key, rec)

	names := make([]string, 0, len(rec))
	for name := range rec {
		names = append(names, name)
	}
	sort.Strings(names)

	data := make([]Datum, 0, len(names))
	for _, name := range names {
		data = append(data, Datum{Name: name, Value: rec[name]})
	}
	return Item{Href: href, Data: data}
}
