// internal/render/render_test.go
//
// Unit-tests for the format renderers.
//
// Workflow / Structure
// --------------------
// Claim disjointness and applicability are plain table tests; the
// round-trip guarantees (decode(encode(v)) == v for JSON and YAML over
// representative nested structures) run as rapid properties with
// generators constrained to each codec's exactly-representable values:
// JSON numbers decode as float64, YAML integers as int.
//
// Run: go test ./internal/render -v

package render

import (
	"encoding/json"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"
)

func TestClaimsDisjoint(t *testing.T) {
	renderers := []Renderer{NewJSON(false), NewYAML(0), NewMsgPack(), NewEDN()}

	seen := map[string]int{}
	for i, r := range renderers {
		if len(r.MediaTypes()) == 0 {
			t.Fatalf("renderer %d claims no media types", i)
		}
		for _, mt := range r.MediaTypes() {
			if prev, dup := seen[mt]; dup {
				t.Fatalf("media type %q claimed by renderers %d and %d", mt, prev, i)
			}
			seen[mt] = i
		}
	}
}

func TestApplicableIsExact(t *testing.T) {
	y := NewYAML(0)
	for _, mt := range y.MediaTypes() {
		if !y.Applicable(mt) {
			t.Fatalf("YAML renderer rejects its own claim %q", mt)
		}
	}
	if y.Applicable("application/json") {
		t.Fatal("YAML renderer must not claim application/json")
	}
	if y.Applicable("application/*") {
		t.Fatal("wildcards are negotiation's business, not the renderer's")
	}
}

func TestJSONPretty(t *testing.T) {
	compact, err := NewJSON(false).Render(map[string]any{"a": 1})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	pretty, err := NewJSON(true).Render(map[string]any{"a": 1})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(compact) != `{"a":1}` {
		t.Fatalf("compact body = %q", compact)
	}
	if string(pretty) == string(compact) {
		t.Fatal("pretty output should differ from compact")
	}
}

/*──────────────────────────── round-trip properties ────────────────────────*/

// drawValue generates a nested structure whose round-trip is exact for the
// codec: numeric kind 2 is float64 for JSON, int for YAML.
func drawValue(t *rapid.T, depth int, yamlNums bool) any {
	top := 5
	if depth <= 0 {
		top = 3 // scalars only at the leaves
	}
	switch rapid.IntRange(0, top).Draw(t, "kind") {
	case 0:
		return nil
	case 1:
		return rapid.Bool().Draw(t, "bool")
	case 2:
		if yamlNums {
			return rapid.IntRange(-1_000_000, 1_000_000).Draw(t, "int")
		}
		return rapid.Float64Range(-1e9, 1e9).Draw(t, "num")
	case 3:
		return rapid.String().Draw(t, "str")
	case 4:
		n := rapid.IntRange(0, 3).Draw(t, "len")
		out := make([]any, n)
		for i := range out {
			out[i] = drawValue(t, depth-1, yamlNums)
		}
		return out
	default:
		return drawMap(t, depth-1, yamlNums)
	}
}

func drawMap(t *rapid.T, depth int, yamlNums bool) map[string]any {
	n := rapid.IntRange(0, 3).Draw(t, "fields")
	m := make(map[string]any, n)
	for i := 0; i < n; i++ {
		m[rapid.String().Draw(t, "key")] = drawValue(t, depth, yamlNums)
	}
	return m
}

func TestJSONRoundTrip(t *testing.T) {
	r := NewJSON(false)
	rapid.Check(t, func(rt *rapid.T) {
		in := drawMap(rt, 2, false)
		b, err := r.Render(in)
		if err != nil {
			rt.Fatalf("render: %v", err)
		}
		var out map[string]any
		if err := json.Unmarshal(b, &out); err != nil {
			rt.Fatalf("unmarshal: %v", err)
		}
		if len(in) == 0 && len(out) == 0 {
			return
		}
		if !reflect.DeepEqual(in, out) {
			rt.Fatalf("round trip mismatch:\n in: %#v\nout: %#v", in, out)
		}
	})
}

func TestYAMLRoundTrip(t *testing.T) {
	r := NewYAML(0)
	rapid.Check(t, func(rt *rapid.T) {
		in := drawMap(rt, 2, true)
		b, err := r.Render(in)
		if err != nil {
			rt.Fatalf("render: %v", err)
		}
		var out map[string]any
		if err := yaml.Unmarshal(b, &out); err != nil {
			rt.Fatalf("unmarshal: %v", err)
		}
		if len(in) == 0 && len(out) == 0 {
			return
		}
		if !reflect.DeepEqual(in, out) {
			rt.Fatalf("round trip mismatch:\n in: %#v\nout: %#v", in, out)
		}
	})
}
