package utils

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestIDListUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  IDList
	}{
		{"array", `["a","b"]`, IDList{"a", "b"}},
		{"single string", `"a"`, IDList{"a"}},
		{"json-encoded array string", `"[\"a\",\"b\"]"`, IDList{"a", "b"}},
		{"empty string", `""`, nil},
		{"empty array", `[]`, IDList{}},
		{"whitespace padded array string", `" [\"a\"] "`, IDList{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got IDList
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("unmarshal %q: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIDListUnmarshalMalformedArrayString(t *testing.T) {
	// A string that looks like an array but isn't valid JSON falls back to
	// being treated as one opaque id.
	var got IDList
	if err := json.Unmarshal([]byte(`"[not json]"`), &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, IDList{"[not json]"}) {
		t.Fatalf("got %v", got)
	}
}

func TestIDListMerge(t *testing.T) {
	plural := IDList{"a", "b"}
	single := IDList{"c"}

	if got := plural.Merge(single); !reflect.DeepEqual(got, plural) {
		t.Fatalf("plural should win, got %v", got)
	}
	if got := (IDList)(nil).Merge(single); !reflect.DeepEqual(got, single) {
		t.Fatalf("singular fallback failed, got %v", got)
	}
}
