package perfcompare

import "math"

// twoYears is the smallest interesting dataset: one up year and one down year.
func twoYears() *Dataset {
	return &Dataset{
		Years: []int{2020, 2021},
		Assets: []Asset{
			NewAsset(Bitcoin, 10, -10),
		},
	}
}

// approx compares floats with an absolute tolerance.
func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
