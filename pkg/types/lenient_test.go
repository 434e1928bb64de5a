package types

import (
	"encoding/json"
	"testing"
)

func TestLenientIntDecoding(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{"number", `{"v":5}`, 5},
		{"float truncates", `{"v":5.9}`, 5},
		{"numeric string", `{"v":"12"}`, 12},
		{"padded numeric string", `{"v":" 7 "}`, 7},
		{"non-numeric string", `{"v":"abc"}`, 0},
		{"null", `{"v":null}`, 0},
		{"bool", `{"v":true}`, 0},
		{"omitted", `{}`, 0},
		{"negative", `{"v":-3}`, -3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var payload struct {
				V LenientInt `json:"v"`
			}
			if err := json.Unmarshal([]byte(tc.in), &payload); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if payload.V.Int() != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, payload.V.Int())
			}
		})
	}
}
