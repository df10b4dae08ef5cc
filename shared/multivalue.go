package shared

import (
	"encoding/json"
	"strings"
)

// MultiValue is a list field that clients send either as a JSON array or as
// comma-separated text. Both forms were always accepted on the wire, so the
// decoder keeps the comma fallback when JSON parsing fails.
type MultiValue []string

func (m *MultiValue) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*m = trimValues(arr)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	*m = ParseMultiValue(s)
	return nil
}

// ParseMultiValue decodes JSON-array-encoded text, falling back to
// comma-separated text.
func ParseMultiValue(s string) MultiValue {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	var arr []string
	if err := json.Unmarshal([]byte(s), &arr); err == nil {
		return trimValues(arr)
	}

	return trimValues(strings.Split(s, ","))
}

func trimValues(values []string) []string {
	var result []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}
