package agent

import (
	"context"
	"strings"
	"testing"
)

// The tools must work without a live model, they are plain function calls.

func TestEvaluateFunc(t *testing.T) {
	ctx := context.Background()

	resp := EvaluateFunc.Call(ctx, "id-1", map[string]any{"net_worth": 100000.0})
	out, ok := resp.Response["output"].(string)
	if !ok {
		t.Fatalf("Evaluate returned no output: %v", resp.Response)
	}
	if !strings.Contains(out, "82.20%") {
		t.Errorf("Evaluate output missing the percentile:\n%s", out)
	}

	resp = EvaluateFunc.Call(ctx, "id-2", map[string]any{"net_worth": 100000.0, "dataset": "us"})
	out, _ = resp.Response["output"].(string)
	if !strings.Contains(out, "US percentile") {
		t.Errorf("Evaluate output missing the US percentile:\n%s", out)
	}
}

func TestEvaluateFuncErrors(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		args map[string]any
	}{
		{"missing net worth", map[string]any{}},
		{"net worth not a number", map[string]any{"net_worth": "a lot"}},
		{"negative net worth", map[string]any{"net_worth": -5.0}},
		{"unknown dataset", map[string]any{"net_worth": 100.0, "dataset": "mars"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := EvaluateFunc.Call(ctx, "id", tc.args)
			if _, ok := resp.Response["error"]; !ok {
				t.Errorf("Evaluate(%v) expected an error response, got %v", tc.args, resp.Response)
			}
		})
	}
}

func TestTableFunc(t *testing.T) {
	ctx := context.Background()

	resp := TableFunc.Call(ctx, "id-1", map[string]any{})
	out, ok := resp.Response["output"].(string)
	if !ok {
		t.Fatalf("Table returned no output: %v", resp.Response)
	}
	if !strings.Contains(out, "Global Percentile") {
		t.Errorf("Table output missing the global header:\n%s", out)
	}

	resp = TableFunc.Call(ctx, "id-2", map[string]any{"dataset": "us"})
	out, _ = resp.Response["output"].(string)
	if !strings.Contains(out, "US Percentile") {
		t.Errorf("Table output missing the US header:\n%s", out)
	}
}

func TestNewGuideHasGrounding(t *testing.T) {
	g := newGuide()
	text := g.Config.SystemInstruction.Parts[0].Text
	for _, want := range []string{"Methodology", "Datasets", "Hyperbitcoinization", "Switched to GLOBAL", "Switched to US"} {
		if !strings.Contains(text, want) {
			t.Errorf("guide grounding missing %q", want)
		}
	}
}
