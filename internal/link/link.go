// internal/link/link.go
//
// Link model and URI-template expansion.
//
// Context
// -------
// The pipeline deals in two link shapes: a concrete Link (relation plus a
// resolved href) and an unexpanded Template (relation plus an RFC 6570
// pattern, advertised as a capability).  This package owns expansion —
// pattern plus field bindings in, URI string out — and the self-link
// computation both hypermedia assemblers lean on.
//
// Compiled templates are cached in a small LRU keyed by pattern; template
// sets are static per resource, so the cache stabilizes after the first
// few requests.
//
// Notes
// -----
// • Every lookup that can miss returns (zero, false), never an error.  A
//   record without an addressable identity is a normal case, not a fault.
// • Oxford commas, two spaces after periods.
package link

import (
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/yosida95/uritemplate/v3"

	"github.com/yanizio/halyard/internal/cache"
	"github.com/yanizio/halyard/internal/resource"
)

// Link is a resolved hyperlink.  Relation names are unique within one
// rendered response; last write wins when callers collide.
type Link struct {
	Rel       string
	Href      string
	Templated bool
}

// Template is an unexpanded URI pattern serving one relation.
type Template struct {
	Rel     string
	Pattern string
}

/*──────────────────────────── template cache ───────────────────────────────*/

var (
	tmplMu  sync.Mutex
	tmplLRU = cache.New(512)
)

// compiled returns the parsed template for a pattern, caching it.
func compiled(pattern string) (*uritemplate.Template, error) {
	tmplMu.Lock()
	defer tmplMu.Unlock()

	if v, ok := tmplLRU.Get(pattern); ok {
		return v.(*uritemplate.Template), nil
	}
	t, err := uritemplate.New(pattern)
	if err != nil {
		return nil, err
	}
	tmplLRU.Add(pattern, t)
	return t, nil
}

/*─────────────────────────────── expansion ─────────────────────────────────*/

// Expand resolves an RFC 6570 pattern against field bindings.  Binding
// values are stringified with fmt.Sprint; templates in this layer only
// ever splice scalars (ids, slugs, numbers) into paths.
func Expand(pattern string, bindings map[string]any) (string, error) {
	t, err := compiled(pattern)
	if err != nil {
		return "", err
	}
	vals := uritemplate.Values{}
	for k, v := range bindings {
		if v == nil {
			continue
		}
		vals[k] = uritemplate.String(fmt.Sprint(v))
	}
	return t.Expand(vals)
}

// TemplateFor resolves a relation to its pattern on a resource.
func TemplateFor(res *resource.Resource, rel string) (string, bool) {
	if res == nil {
		return "", false
	}
	pattern, ok := res.Templates[rel]
	return pattern, ok
}

// SelfLink computes a record's own URI: data key → relation via the
// resource link mapping, relation → pattern, pattern expanded against the
// record's fields.  Any miss yields ("", false).
func SelfLink(res *resource.Resource, dataKey string, record map[string]any) (string, bool) {
	if res == nil {
		return "", false
	}
	rel, ok := res.LinkMapping[dataKey]
	if !ok {
		return "", false
	}
	pattern, ok := TemplateFor(res, rel)
	if !ok {
		return "", false
	}
	href, err := Expand(pattern, record)
	if err != nil {
		return "", false
	}
	return href, true
}

/*──────────────────────────── normalization ────────────────────────────────*/

// Normalize resolves "." and ".." segments in an href's path, leaving any
// scheme://host prefix and query string untouched.
func Normalize(href string) string {
	rest := href
	prefix := ""
	if i := strings.Index(rest, "://"); i >= 0 {
		if j := strings.Index(rest[i+3:], "/"); j >= 0 {
			prefix, rest = rest[:i+3+j], rest[i+3+j:]
		} else {
			return href
		}
	}
	query := ""
	if i := strings.Index(rest, "?"); i >= 0 {
		rest, query = rest[:i], rest[i:]
	}
	if rest == "" {
		return href
	}
	clean := path.Clean(rest)
	// path.Clean drops the trailing slash; listing hrefs keep theirs.
	if strings.HasSuffix(rest, "/") && clean != "/" {
		clean += "/"
	}
	return prefix + clean + query
}
