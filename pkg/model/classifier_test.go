package model

import (
	"encoding/json"
	"testing"
)

func TestClassifierStatusDecoding(t *testing.T) {
	cases := []struct {
		raw  string
		want ClassifierStatus
	}{
		{`0`, Unfinalized},
		{`1`, Finalizing},
		{`2`, Finalized},
		{`2.0`, Finalized},
		{`"finalizing"`, Finalizing},
		{`"FINALIZED"`, Finalized},
		{`true`, Finalized},
		{`false`, Unfinalized},
		{`null`, Unfinalized},
	}
	for _, tc := range cases {
		var got ClassifierStatus
		if err := json.Unmarshal([]byte(tc.raw), &got); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("status(%s) = %v, want %v", tc.raw, got, tc.want)
		}
	}

	for _, raw := range []string{`"done"`, `1.9`, `0.5`, `3`} {
		var bad ClassifierStatus
		if err := json.Unmarshal([]byte(raw), &bad); err == nil {
			t.Fatalf("expected an error for status %s, got %v", raw, bad)
		}
	}
}

func TestClassifierCanFinalize(t *testing.T) {
	cases := []struct {
		name string
		c    Classifier
		want bool
	}{
		{"ready", Classifier{Positive: 1, Negative: 1}, true},
		{"no negatives", Classifier{Positive: 3}, false},
		{"finalizing", Classifier{Positive: 1, Negative: 1, Finalized: Finalizing}, false},
		{"finalized", Classifier{Positive: 1, Negative: 1, Finalized: Finalized}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.CanFinalize(); got != tc.want {
				t.Fatalf("CanFinalize() = %v, want %v", got, tc.want)
			}
		})
	}
}
