// internal/media/negotiate.go
//
// Accept-header negotiation.
//
// Context
// -------
// The pipeline itself never parses Accept; it only sees the already
// negotiated media type on the request context.  This helper is the host
// side of that contract: given the raw header and the chain's advertised
// list, it picks the best match by q-value, preferring earlier entries of
// the advertised list on ties (registration order is precedence order).
//
// An empty or absent Accept header means "anything", which resolves to the
// first advertised type.
//
// Notes
// -----
// • Wildcards `*/*` and `type/*` are honored.
// • Malformed q-values are treated as 1.0 rather than rejected; clients
//   that can't spell qvalues still deserve a response.
package media

import (
	"sort"
	"strconv"
	"strings"
)

type acceptClause struct {
	mediaType string
	q         float64
}

// Negotiate returns the advertised media type best matching the Accept
// header, and false when nothing matches at all.
func Negotiate(accept string, available []string) (string, bool) {
	if len(available) == 0 {
		return "", false
	}
	accept = strings.TrimSpace(accept)
	if accept == "" {
		return available[0], true
	}

	clauses := parseAccept(accept)

	// Highest q first; original order breaks ties so "a, b" prefers a.
	sort.SliceStable(clauses, func(i, j int) bool {
		return clauses[i].q > clauses[j].q
	})

	for _, c := range clauses {
		if c.q == 0 {
			continue
		}
		for _, av := range available {
			if clauseMatches(c.mediaType, av) {
				return av, true
			}
		}
	}
	return "", false
}

// parseAccept splits an Accept header into clauses with q-values.
func parseAccept(accept string) []acceptClause {
	parts := strings.Split(accept, ",")
	clauses := make([]acceptClause, 0, len(parts))
	for _, part := range parts {
		fields := strings.Split(part, ";")
		mt := strings.ToLower(strings.TrimSpace(fields[0]))
		if mt == "" {
			continue
		}
		q := 1.0
		for _, f := range fields[1:] {
			f = strings.TrimSpace(f)
			if !strings.HasPrefix(f, "q=") {
				continue
			}
			if v, err := strconv.ParseFloat(f[2:], 64); err == nil && v >= 0 && v <= 1 {
				q = v
			}
		}
		clauses = append(clauses, acceptClause{mediaType: mt, q: q})
	}
	return clauses
}

// clauseMatches reports whether an Accept clause covers an advertised type.
func clauseMatches(clause, available string) bool {
	if clause == "*/*" || clause == available {
		return true
	}
	if prefix, ok := strings.CutSuffix(clause, "/*"); ok {
		return strings.HasPrefix(available, prefix+"/")
	}
	return false
}
