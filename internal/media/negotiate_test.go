// internal/media/negotiate_test.go
//
// Unit-tests for Accept-header negotiation.
//
// Run: go test ./internal/media -v

package media

import "testing"

func TestNegotiate(t *testing.T) {
	available := []string{JSON, YAML, HAL}

	cases := []struct {
		name   string
		accept string
		want   string
		ok     bool
	}{
		{"exact match", "application/json", JSON, true},
		{"empty header takes first advertised", "", JSON, true},
		{"wildcard any", "*/*", JSON, true},
		{"subtype wildcard", "application/*", JSON, true},
		{"qvalue preference", "application/json;q=0.2, application/yaml;q=0.9", YAML, true},
		{"tie keeps header order", "application/yaml, application/json", YAML, true},
		{"suffix type", "application/hal+json", HAL, true},
		{"no match", "text/html", "", false},
		{"q zero excludes", "application/json;q=0", "", false},
		{"malformed q treated as 1.0", "application/yaml;q=banana", YAML, true},
		{"case-insensitive clause", "Application/JSON", JSON, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Negotiate(tc.accept, available)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("Negotiate(%q) = (%q, %v), want (%q, %v)",
					tc.accept, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestNegotiate_NoAvailable(t *testing.T) {
	if _, ok := Negotiate("*/*", nil); ok {
		t.Fatal("negotiation against an empty advertised list must fail")
	}
}
