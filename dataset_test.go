package perfcompare

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	d := Default()
	if err := d.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if !reflect.DeepEqual(d.Keys(), AssetKeys) {
		t.Errorf("Keys() = %v, want %v", d.Keys(), AssetKeys)
	}
	if d.FirstYear() != 2011 || d.LastYear() != 2025 {
		t.Errorf("axis = %d..%d, want 2011..2025", d.FirstYear(), d.LastYear())
	}
	if d.FullRange() != (YearRange{2011, 2025}) {
		t.Errorf("FullRange() = %v", d.FullRange())
	}
}

func TestDataset_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		d       Dataset
		wantErr string
	}{
		{"no years", Dataset{Assets: []Asset{NewAsset(Gold)}}, "no years"},
		{"unordered years", Dataset{Years: []int{2021, 2020}, Assets: []Asset{NewAsset(Gold, 1, 2)}}, "strictly increasing"},
		{"gap in years", Dataset{Years: []int{2019, 2021, 2023}, Assets: []Asset{NewAsset(Gold, 1, 2, 3)}}, "consecutive: 2021 follows 2019"},
		{"no assets", Dataset{Years: []int{2020}}, "no assets"},
		{"duplicate asset", Dataset{Years: []int{2020}, Assets: []Asset{NewAsset(Gold, 1), NewAsset(Gold, 2)}}, "defined twice"},
		{"misaligned returns", Dataset{Years: []int{2020, 2021}, Assets: []Asset{NewAsset(Gold, 1)}}, "1 returns for 2 years"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.d.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestDecodeDataset(t *testing.T) {
	in := `{"years":[2020,2021],"assets":[{"key":"gold","returns":[25.1,-3.7]},{"key":"btc","name":"BTC","color":"#000000","returns":[303,59.7]}]}`
	d, err := DecodeDataset(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeDataset() = %v", err)
	}
	want := &Dataset{
		Years: []int{2020, 2021},
		Assets: []Asset{
			NewAsset(Gold, 25.1, -3.7),
			{Key: Bitcoin, Name: "BTC", Color: "#000000", Returns: []float64{303, 59.7}},
		},
	}
	if !reflect.DeepEqual(d, want) {
		t.Errorf("DecodeDataset() = %+v, want %+v", d, want)
	}
}

func TestDecodeDataset_Errors(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"unknown asset", `{"years":[2020],"assets":[{"key":"tulips","returns":[1]}]}`},
		{"unknown field", `{"years":[2020],"assets":[],"extra":1}`},
		{"invalid", `{"years":[2020],"assets":[{"key":"gold","returns":[]}]}`},
		{"not json", `years: 2020`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeDataset(strings.NewReader(tc.in)); err == nil {
				t.Errorf("DecodeDataset(%s) succeeded, want error", tc.in)
			}
		})
	}
}

func TestEncodeDataset_Decodes(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeDataset(&buf, Default()); err != nil {
		t.Fatalf("EncodeDataset() = %v", err)
	}
	if !strings.Contains(buf.String(), `"key": "realestate"`) {
		t.Errorf("encoded dataset does not use text keys:\n%s", buf.String())
	}
	got, err := DecodeDataset(&buf)
	if err != nil {
		t.Fatalf("DecodeDataset() = %v", err)
	}
	if !reflect.DeepEqual(got, Default()) {
		t.Errorf("decoded dataset differs from the default one")
	}
}

func TestLoadDataset_Missing(t *testing.T) {
	_, err := LoadDataset(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadDataset() = %v, want fs.ErrNotExist", err)
	}
}

func TestParseAssetKey(t *testing.T) {
	for _, k := range AssetKeys {
		got, err := ParseAssetKey(k.String())
		if err != nil || got != k {
			t.Errorf("ParseAssetKey(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseAssetKey("dogecoin"); err == nil {
		t.Errorf("ParseAssetKey(dogecoin) succeeded")
	}
}

func TestDecodeDataset_GapInYears(t *testing.T) {
	// every lookback period must start on the axis
	in := `{"years":[2019,2021,2023],"assets":[{"key":"gold","returns":[1,2,3]}]}`
	if _, err := DecodeDataset(strings.NewReader(in)); err == nil {
		t.Fatal("DecodeDataset() accepted a gap in the years")
	}

	d := &Dataset{Years: []int{2021, 2022, 2023}, Assets: []Asset{NewAsset(Gold, 1, 2, 3)}}
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	for n := 1; n <= 4; n++ {
		r := ResolvePeriod(LastYears(n), d.Years)
		if d.IndexOf(r.Start) == -1 || d.IndexOf(r.End) == -1 {
			t.Errorf("ResolvePeriod(LastYears(%d)) = %v, not on the axis", n, r)
		}
		if got := d.Growth(Gold, r.Start, r.End); len(got) != r.Len()+1 {
			t.Errorf("Growth over %v has %d values, want %d", r, len(got), r.Len()+1)
		}
	}
}
