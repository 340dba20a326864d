package renderer

import "github.com/etnz/perfcompare"

// HeatCell is one asset return on one year.
type HeatCell struct {
	Key     perfcompare.AssetKey `json:"asset"`
	Value   float64              `json:"value"`
	Display string               `json:"display"`
	Heat    Heat                 `json:"heat"`
	Best    bool                 `json:"best"` // the asset led that year
}

// Class returns the CSS classes of the cell.
func (c HeatCell) Class() string {
	if c.Best {
		return c.Heat.Class() + " perf-heatmap-best"
	}
	return c.Heat.Class()
}

// HeatmapRow holds the cells of a year in asset order.
type HeatmapRow struct {
	Year  int        `json:"year"`
	Cells []HeatCell `json:"cells"`
}

// Heatmap is the table of every yearly return, newest year first.
type Heatmap struct {
	Assets []string     `json:"assets"`
	Rows   []HeatmapRow `json:"rows"`
}

// NewHeatmap classifies every return of the dataset. It always covers the
// full year axis.
func NewHeatmap(d *perfcompare.Dataset) Heatmap {
	h := Heatmap{Assets: make([]string, 0, len(d.Assets))}
	for _, a := range d.Assets {
		h.Assets = append(h.Assets, a.Name)
	}
	if len(d.Assets) == 0 {
		return h
	}
	for i := len(d.Years) - 1; i >= 0; i-- {
		leader := d.YearlyLeader(i)
		row := HeatmapRow{Year: d.Years[i], Cells: make([]HeatCell, 0, len(d.Assets))}
		for _, a := range d.Assets {
			v := a.Returns[i]
			row.Cells = append(row.Cells, HeatCell{
				Key:     a.Key,
				Value:   v,
				Display: FormatHeatValue(v),
				Heat:    Classify(v),
				Best:    a.Key == leader,
			})
		}
		h.Rows = append(h.Rows, row)
	}
	return h
}
