package perfcompare

// YearReturn is the return of an asset on a given year.
type YearReturn struct {
	Year  int     `json:"year"`
	Value Percent `json:"value"`
}

// PerformanceSummary aggregates the performance of one asset over one range.
type PerformanceSummary struct {
	Key         AssetKey   `json:"asset"`
	Range       YearRange  `json:"range"`
	TotalReturn Percent    `json:"totalReturn"`
	CAGR        Percent    `json:"cagr"`
	Best        YearReturn `json:"bestYear"`
	Worst       YearReturn `json:"worstYear"`
}
