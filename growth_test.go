package perfcompare

import (
	"math"
	"testing"
)

func TestGrowth_TwoYears(t *testing.T) {
	d := twoYears()

	got := d.Growth(Bitcoin, 2020, 2021)
	want := []float64{100, 110, 99}
	if len(got) != len(want) {
		t.Fatalf("Growth() = %v, want %v", got, want)
	}
	for i := range want {
		if !approx(got[i], want[i]) {
			t.Errorf("Growth()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if tr := d.TotalReturn(Bitcoin, 2020, 2021); !tr.Equal(-1) {
		t.Errorf("TotalReturn() = %v, want -1%%", tr)
	}
	if cagr := d.CAGR(Bitcoin, 2020, 2021); math.Abs(float64(cagr)+0.5013) > 1e-4 {
		t.Errorf("CAGR() = %v, want ~-0.5013%%", cagr)
	}
}

func TestGrowth_LengthAndBase(t *testing.T) {
	d := Default()
	for _, a := range d.Assets {
		for i, start := range d.Years {
			for j := i; j < len(d.Years); j++ {
				end := d.Years[j]
				g := d.Growth(a.Key, start, end)
				if len(g) != j-i+2 {
					t.Fatalf("len(Growth(%s, %d, %d)) = %d, want %d", a.Key, start, end, len(g), j-i+2)
				}
				if g[0] != 100 {
					t.Fatalf("Growth(%s, %d, %d)[0] = %v, want 100", a.Key, start, end, g[0])
				}
			}
		}
	}
}

func TestGrowth_MissingRange(t *testing.T) {
	d := Default()
	testCases := []struct {
		name       string
		start, end int
	}{
		{"start before axis", 2000, 2020},
		{"end after axis", 2020, 2030},
		{"reversed", 2020, 2015},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if g := d.Growth(Bitcoin, tc.start, tc.end); len(g) != 0 {
				t.Errorf("Growth() = %v, want empty", g)
			}
			if tr := d.TotalReturn(Bitcoin, tc.start, tc.end); tr != 0 {
				t.Errorf("TotalReturn() = %v, want 0", tr)
			}
			if cagr := d.CAGR(Bitcoin, tc.start, tc.end); cagr != 0 {
				t.Errorf("CAGR() = %v, want 0", cagr)
			}
		})
	}

	missing := &Dataset{Years: d.Years, Assets: d.Assets[1:]}
	if g := missing.Growth(Bitcoin, 2011, 2025); len(g) != 0 {
		t.Errorf("Growth() of untracked asset = %v, want empty", g)
	}
}

func TestSingleYear_ReproducesReturn(t *testing.T) {
	d := Default()
	for _, a := range d.Assets {
		for i, y := range d.Years {
			want := a.Returns[i]
			if tr := d.TotalReturn(a.Key, y, y); math.Abs(float64(tr)-want) > 1e-9 {
				t.Errorf("TotalReturn(%s, %d, %d) = %v, want %v", a.Key, y, y, tr, want)
			}
			if cagr := d.CAGR(a.Key, y, y); math.Abs(float64(cagr)-want) > 1e-9 {
				t.Errorf("CAGR(%s, %d, %d) = %v, want %v", a.Key, y, y, cagr, want)
			}
		}
	}
}

func TestCAGR_WipeoutFloor(t *testing.T) {
	testCases := []struct {
		name    string
		returns []float64
	}{
		{"total loss", []float64{-100}},
		{"loss then gain", []float64{-100, 50}},
		{"worse than total loss", []float64{20, -150}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			years := make([]int, len(tc.returns))
			for i := range years {
				years[i] = 2000 + i
			}
			d := &Dataset{Years: years, Assets: []Asset{NewAsset(Gold, tc.returns...)}}
			if got := d.CAGR(Gold, years[0], years[len(years)-1]); got != -100 {
				t.Errorf("CAGR() = %v, want exactly -100", got)
			}
		})
	}
}

func TestBestWorstYear(t *testing.T) {
	d := Default()
	best, worst := d.BestWorstYear(Bitcoin, 2011, 2025)
	if want := (YearReturn{2013, 5507}); best != want {
		t.Errorf("best = %v, want %v", best, want)
	}
	if want := (YearReturn{2018, -73.6}); worst != want {
		t.Errorf("worst = %v, want %v", worst, want)
	}

	ties := &Dataset{
		Years:  []int{2020, 2021, 2022, 2023},
		Assets: []Asset{NewAsset(Bonds, 5, 5, -1, -1)},
	}
	best, worst = ties.BestWorstYear(Bonds, 2020, 2023)
	if best.Year != 2020 || worst.Year != 2022 {
		t.Errorf("ties: best %v worst %v, want earliest years 2020 and 2022", best, worst)
	}

	best, worst = d.BestWorstYear(Bitcoin, 1990, 2025)
	if best != (YearReturn{}) || worst != (YearReturn{}) {
		t.Errorf("missing range: got %v %v, want zero values", best, worst)
	}
}

func TestSummaries(t *testing.T) {
	d := Default()
	r := ResolvePeriod(LastYears(5), d.Years)
	sums := d.Summaries(r)
	if len(sums) != len(d.Assets) {
		t.Fatalf("len(Summaries()) = %d, want %d", len(sums), len(d.Assets))
	}
	for i, s := range sums {
		if s.Key != d.Assets[i].Key {
			t.Errorf("Summaries()[%d].Key = %s, want %s", i, s.Key, d.Assets[i].Key)
		}
		if s.Range != r {
			t.Errorf("Summaries()[%d].Range = %v, want %v", i, s.Range, r)
		}
	}
	if !sums[0].TotalReturn.Equal(d.TotalReturn(Bitcoin, 2021, 2025)) {
		t.Errorf("Summary total return mismatch")
	}
}

func TestReturn(t *testing.T) {
	if got := Return(250); !got.Equal(150) {
		t.Errorf("Return(250) = %v, want 150%%", got)
	}
	if got := Return(100); got != 0 {
		t.Errorf("Return(100) = %v, want 0", got)
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(10).Compound(100); !approx(got, 110) {
		t.Errorf("Compound() = %v, want 110", got)
	}
	if !Percent(0).IsGain() || Percent(-0.1).IsGain() {
		t.Error("IsGain() does not count a flat year as a gain")
	}
	if got := Percent(12.34).String(); got != "+12.3%" {
		t.Errorf("String() = %q, want +12.3%%", got)
	}
	if !Percent(1).Equal(1.00001) || Percent(1).Equal(1.01) {
		t.Error("Equal() tolerance is wrong")
	}
}
