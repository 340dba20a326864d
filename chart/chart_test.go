package chart

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/etnz/perfcompare"
	"github.com/etnz/perfcompare/renderer"
)

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"svg", SVG, false},
		{"PNG", PNG, false},
		{"gif", SVG, true},
	}
	for _, tc := range testCases {
		got, err := ParseFormat(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if FormatOf("growth.PNG") != PNG || FormatOf("growth.svg") != SVG || FormatOf("growth") != SVG {
		t.Errorf("FormatOf() does not follow the file extension")
	}
}

func TestRender_LogLines(t *testing.T) {
	d := perfcompare.Default()
	spec := renderer.LineChart(d, d.FullRange(), perfcompare.Log, renderer.DefaultOptions())

	var buf bytes.Buffer
	if err := Render(spec, SVG, &buf); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<svg") {
		t.Errorf("output is not an SVG document: %.40q", out)
	}
	for _, want := range []string{"$100", "$1.0M", "2013"} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG does not contain %q", want)
		}
	}
}

func TestRender_Bars(t *testing.T) {
	d := perfcompare.Default()
	spec := renderer.BarChart(d, perfcompare.YearRange{Start: 2021, End: 2025}, perfcompare.Linear)

	var buf bytes.Buffer
	if err := Render(spec, PNG, &buf); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("output is not a PNG image")
	}
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := Render(renderer.ChartSpec{Type: perfcompare.Bar}, SVG, &buf)
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("Render() error = %v, want ErrEmpty", err)
	}
	err = Render(renderer.ChartSpec{}, SVG, &buf)
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("Render() error = %v, want ErrEmpty", err)
	}
}

func TestProject(t *testing.T) {
	if got := project(perfcompare.Log, 1000); math.Abs(got-3) > 1e-9 {
		t.Errorf("project(log, 1000) = %v, want 3", got)
	}
	if got := project(perfcompare.Log, 0); got != 0 {
		t.Errorf("project(log, 0) = %v, want 0", got)
	}
	if got := project(perfcompare.Linear, 250); got != 250 {
		t.Errorf("project(linear, 250) = %v, want 250", got)
	}
}
