// internal/link/link_test.go
//
// Unit-tests for template expansion, self links, and href normalization.
//
// Run: go test ./internal/link -v

package link

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/yanizio/halyard/internal/resource"
)

func testResource() *resource.Resource {
	return &resource.Resource{
		Name:        "items",
		LinkMapping: map[string]string{"item": "item", "items": "item"},
		Templates: map[string]string{
			"item":    "/items/{id}",
			"listing": "/items",
		},
	}
}

func TestExpand(t *testing.T) {
	got, err := Expand("/items/{id}", map[string]any{"id": 42})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if got != "/items/42" {
		t.Fatalf("expand = %q, want /items/42", got)
	}
}

func TestExpand_QueryTemplate(t *testing.T) {
	got, err := Expand("/items{?q}", map[string]any{"q": "blue train"})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if got != "/items?q=blue%20train" {
		t.Fatalf("expand = %q", got)
	}
}

func TestExpand_NilBindingSkipped(t *testing.T) {
	got, err := Expand("/items{?q}", map[string]any{"q": nil})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if got != "/items" {
		t.Fatalf("expand = %q, want /items", got)
	}
}

func TestSelfLink(t *testing.T) {
	res := testResource()

	href, ok := SelfLink(res, "item", map[string]any{"id": 7, "name": "x"})
	if !ok || href != "/items/7" {
		t.Fatalf("self link = (%q, %v)", href, ok)
	}
}

func TestSelfLink_AbsentIsSilent(t *testing.T) {
	res := testResource()

	// Unknown data key → no mapping → absent, not an error.
	if _, ok := SelfLink(res, "widget", map[string]any{"id": 1}); ok {
		t.Fatal("unmapped data key must yield absent")
	}

	// Mapping present but template missing.
	broken := &resource.Resource{
		Name:        "b",
		LinkMapping: map[string]string{"item": "gone"},
		Templates:   map[string]string{},
	}
	if _, ok := SelfLink(broken, "item", map[string]any{"id": 1}); ok {
		t.Fatal("missing template must yield absent")
	}

	// Nil resource: sub-resources without addressable identity.
	if _, ok := SelfLink(nil, "item", map[string]any{"id": 1}); ok {
		t.Fatal("nil resource must yield absent")
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"/items/../items/1", "/items/1"},
		{"/a/b/./c", "/a/b/c"},
		{"/items/", "/items/"},
		{"/items/../items/1?x=1", "/items/1?x=1"},
		{"https://api.example.com/a/../b", "https://api.example.com/b"},
		{"/items/1", "/items/1"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// Expanding the same template against the same record twice must yield
// identical URIs, whatever the binding values look like.
func TestExpandIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		bindings := map[string]any{
			"id": rapid.String().Draw(rt, "id"),
		}
		a, errA := Expand("/items/{id}", bindings)
		b, errB := Expand("/items/{id}", bindings)
		if (errA == nil) != (errB == nil) {
			rt.Fatalf("expansion determinism broken: %v vs %v", errA, errB)
		}
		if a != b {
			rt.Fatalf("expansion not idempotent: %q vs %q", a, b)
		}
	})
}
