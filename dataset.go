package perfcompare

import (
	"errors"
	"fmt"
	"slices"
)

// Dataset holds annual returns of several assets over a shared year axis.
// The order of Assets is the fixed display and ranking order.
type Dataset struct {
	Years  []int   `json:"years"`
	Assets []Asset `json:"assets"`
}

// Default returns the embedded 2011-2025 annual returns (%).
//
// Sources: SlickCharts, CoinGlass, NYU Stern, World Gold Council, Bloomberg,
// Case-Shiller.
func Default() *Dataset {
	return &Dataset{
		Years: []int{2011, 2012, 2013, 2014, 2015, 2016, 2017, 2018, 2019, 2020, 2021, 2022, 2023, 2024, 2025},
		Assets: []Asset{
			NewAsset(Bitcoin, 1473.0, 186.0, 5507.0, -58.0, 35.0, 125.0, 1369.0, -73.6, 92.2, 303.0, 59.7, -64.3, 155.4, 121.1, -6.3),
			NewAsset(SP500, 2.1, 16.0, 32.4, 13.7, 1.4, 12.0, 21.8, -4.4, 31.5, 18.4, 28.7, -18.1, 26.3, 25.0, 17.9),
			NewAsset(Nasdaq, -1.0, 17.5, 40.1, 14.7, 7.0, 8.9, 29.6, -3.0, 36.7, 44.9, 22.2, -32.5, 44.6, 29.6, 21.1),
			NewAsset(Gold, 10.1, 7.1, -28.0, -1.8, -10.4, 8.6, 13.2, -1.6, 18.3, 25.1, -3.7, -0.4, 13.1, 27.2, 64.6),
			NewAsset(Bonds, 7.8, 4.2, -2.0, 6.0, 0.5, 2.6, 3.5, 0.0, 8.7, 7.5, -1.5, -13.0, 5.5, 1.3, 7.1),
			NewAsset(RealEstate, -3.9, 6.4, 10.7, 4.5, 5.2, 5.3, 6.2, 4.5, 3.7, 10.4, 18.9, 5.6, 5.7, 4.0, 3.5),
		},
	}
}

// Validate checks the dataset invariants: a non empty axis of consecutive
// years, unique asset keys, and one return per year for every asset.
// Periods count back from the last year, so the axis cannot have gaps.
func (d *Dataset) Validate() error {
	if len(d.Years) == 0 {
		return errors.New("dataset has no years")
	}
	for i := 1; i < len(d.Years); i++ {
		switch prev, year := d.Years[i-1], d.Years[i]; {
		case year <= prev:
			return fmt.Errorf("years must be strictly increasing: %d follows %d", year, prev)
		case year != prev+1:
			return fmt.Errorf("years must be consecutive: %d follows %d", year, prev)
		}
	}
	if len(d.Assets) == 0 {
		return errors.New("dataset has no assets")
	}
	seen := make(map[AssetKey]bool)
	for _, a := range d.Assets {
		if seen[a.Key] {
			return fmt.Errorf("asset %q is defined twice", a.Key)
		}
		seen[a.Key] = true
		if len(a.Returns) != len(d.Years) {
			return fmt.Errorf("asset %q has %d returns for %d years", a.Key, len(a.Returns), len(d.Years))
		}
	}
	return nil
}

// Asset returns the asset for key.
func (d *Dataset) Asset(key AssetKey) (Asset, bool) {
	for _, a := range d.Assets {
		if a.Key == key {
			return a, true
		}
	}
	return Asset{}, false
}

// Has returns true if the dataset tracks key.
func (d *Dataset) Has(key AssetKey) bool {
	_, ok := d.Asset(key)
	return ok
}

// Keys returns the asset keys in the dataset order.
func (d *Dataset) Keys() []AssetKey {
	keys := make([]AssetKey, 0, len(d.Assets))
	for _, a := range d.Assets {
		keys = append(keys, a.Key)
	}
	return keys
}

// IndexOf returns the index of year on the year axis, or -1.
func (d *Dataset) IndexOf(year int) int { return slices.Index(d.Years, year) }

// FirstYear returns the first year of the axis, 0 if empty.
func (d *Dataset) FirstYear() int {
	if len(d.Years) == 0 {
		return 0
	}
	return d.Years[0]
}

// LastYear returns the last year of the axis, 0 if empty.
func (d *Dataset) LastYear() int {
	if len(d.Years) == 0 {
		return 0
	}
	return d.Years[len(d.Years)-1]
}

// FullRange returns the range covering the whole year axis.
func (d *Dataset) FullRange() YearRange { return ResolvePeriod(All, d.Years) }
