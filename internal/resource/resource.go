// internal/resource/resource.go
//
// Per-resource hypermedia configuration.
//
// Context
// -------
// A Resource bundles everything the link adapter and the hypermedia
// assemblers need to know about one REST resource: which relation provides
// a record's self link for a given data key, which record fields hold
// embeddable children and under which relation, and the URI template for
// each relation.  The pipeline reads this through the request context; it
// never mutates it.
//
// Notes
// -----
// • Templates are RFC 6570 patterns, expanded in internal/link.
// • A resource without a link mapping for a key simply renders without
//   self links — valid for sub-resources with no addressable identity.
// • Oxford commas, two spaces after periods.
package resource

// Resource is the immutable hypermedia configuration for one resource.
type Resource struct {
	// Name identifies the resource in the registry and in logs.
	Name string

	// LinkMapping maps a data key to the relation whose template yields a
	// record's self link (e.g. "album" → "album").
	LinkMapping map[string]string

	// EmbedMapping maps a record field holding nested records to the
	// relation whose template yields each child's self link
	// (e.g. "tracks" → "album-track").
	EmbedMapping map[string]string

	// Templates maps a relation to its URI template pattern.
	Templates map[string]string

	// ListingRel names the relation pointing at the resource's listing,
	// used as the Collection+JSON collection href when present.
	ListingRel string
}
