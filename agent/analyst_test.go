package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/etnz/perfcompare"
	"github.com/etnz/perfcompare/renderer"
	"google.golang.org/genai"
)

func call(t *testing.T, lib Library, name string, args map[string]any) map[string]any {
	t.Helper()
	resp := lib(context.Background(), &genai.FunctionCall{ID: "1", Name: name, Args: args})
	if resp.ID != "1" || resp.Name != name {
		t.Errorf("response is for %s/%s, want 1/%s", resp.ID, resp.Name, name)
	}
	return resp.Response
}

func analystLibrary() Library {
	return NewAnalyst(perfcompare.Default(), renderer.DefaultOptions()).Library
}

func TestAssetSummary(t *testing.T) {
	lib := analystLibrary()

	resp := call(t, lib, "asset_summary", map[string]any{"asset": "bonds", "period": "5y"})
	out, _ := resp["output"].(string)
	for _, want := range []string{"Over 2021-2025", "**Bonds**", "Total Return -1.9%", "Worst Year -13.0% (2022)"} {
		if !strings.Contains(out, want) {
			t.Errorf("asset_summary output %q does not contain %q", out, want)
		}
	}

	// the whole dataset by default
	resp = call(t, lib, "asset_summary", map[string]any{"asset": "btc"})
	out, _ = resp["output"].(string)
	if !strings.Contains(out, "Over 2011-2025") || !strings.Contains(out, "29.2M%") {
		t.Errorf("asset_summary output = %q", out)
	}

	resp = call(t, lib, "asset_summary", map[string]any{"asset": "dogecoin"})
	if _, ok := resp["error"]; !ok {
		t.Errorf("asset_summary accepted an unknown asset: %v", resp)
	}
}

func TestYearlyLeader(t *testing.T) {
	lib := analystLibrary()
	testCases := []struct {
		year any
		want string
	}{
		{float64(2025), "In 2025 the best performing asset was Gold with +64.6%."},
		{"2014", "In 2014 the best performing asset was NASDAQ with +14.7%."},
		{float64(2013), "In 2013 the best performing asset was Bitcoin with +5507%."},
	}
	for _, tc := range testCases {
		resp := call(t, lib, "yearly_leader", map[string]any{"year": tc.year})
		if got := resp["output"]; got != tc.want {
			t.Errorf("yearly_leader(%v) = %v, want %q", tc.year, resp, tc.want)
		}
	}

	resp := call(t, lib, "yearly_leader", map[string]any{"year": float64(1990)})
	if _, ok := resp["error"]; !ok {
		t.Errorf("yearly_leader accepted a year out of the dataset")
	}
}

func TestInsights(t *testing.T) {
	resp := call(t, analystLibrary(), "insights", nil)
	out, _ := resp["output"].(string)
	if !strings.Contains(out, "11 of 15 Years") || !strings.Contains(out, "8x Higher CAGR") {
		t.Errorf("insights output = %q", out)
	}
}

func TestLibrary_UnknownFunction(t *testing.T) {
	resp := call(t, analystLibrary(), "delete_everything", nil)
	if resp["error"] != "unknown function delete_everything" {
		t.Errorf("response = %v", resp)
	}
}

func TestNew(t *testing.T) {
	analyst := NewAnalyst(perfcompare.Default(), renderer.DefaultOptions())
	a := New(&strings.Builder{}, strings.NewReader(""), nil, analyst, NewResearcher())
	decls := a.Facilitator.Config.Tools[0].FunctionDeclarations
	if len(decls) != 2 || decls[0].Name != "Analyst" || decls[1].Name != "Researcher" {
		t.Errorf("facilitator tools = %v", decls)
	}
	if analyst.Logger == nil {
		t.Error("experts have no logger")
	}
}
