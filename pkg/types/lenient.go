package types

import (
	"encoding/json"
	"strconv"
	"strings"
)

// LenientInt decodes a JSON number, a numeric string, or any malformed scalar,
// coercing everything unparseable to zero. The legacy admin UI sends
// sort_order as whatever the form field holds, and the API always treated a
// bad value as 0 rather than rejecting the request.
type LenientInt int

func (l *LenientInt) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*l = 0
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*l = LenientInt(n)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*l = LenientInt(int(f))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			*l = LenientInt(v)
			return nil
		}
	}

	*l = 0
	return nil
}

// Int returns the decoded value as a plain int.
func (l LenientInt) Int() int {
	return int(l)
}
