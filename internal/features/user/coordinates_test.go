package user

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestCoordinatesUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Coordinates
	}{
		{"array", `[77.59, 12.97]`, Coordinates{77.59, 12.97}},
		{"string-encoded array", `"[77.59, 12.97]"`, Coordinates{77.59, 12.97}},
		{"empty string", `""`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Coordinates
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("unmarshal %q: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoordinatesUnmarshalRejectsGarbage(t *testing.T) {
	var got Coordinates
	if err := json.Unmarshal([]byte(`"not coordinates"`), &got); err == nil {
		t.Fatal("expected error for malformed coordinates")
	}
}

func TestQRPadTruncatesAndPads(t *testing.T) {
	if got := qrPad("plastic", 10); got != "plastic   " {
		t.Fatalf("pad failed: %q", got)
	}
	if got := qrPad("a very long item type name", 10); got != "a very lon" {
		t.Fatalf("truncate failed: %q", got)
	}
}
