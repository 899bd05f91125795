package utils

import (
	"encoding/json"
	"strings"
)

// IDList normalizes the id field shapes the assignment endpoints accept:
// a single id string, an array of id strings, or a JSON-encoded string
// containing an array (some form clients send `"[\"a\",\"b\"]"`).
type IDList []string

func (l *IDList) UnmarshalJSON(data []byte) error {
	// Plain array of strings
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*l = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	// String that looks like an array: parse it; otherwise treat as one id
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		var inner []string
		if err := json.Unmarshal([]byte(trimmed), &inner); err == nil {
			*l = inner
			return nil
		}
	}

	if s == "" {
		*l = nil
		return nil
	}
	*l = []string{s}
	return nil
}

// Merge picks the plural field when present, otherwise the singular one.
func (l IDList) Merge(single IDList) IDList {
	if len(l) > 0 {
		return l
	}
	return single
}
