package perfcompare

// YearlyLeader returns the asset with the highest return on the year at
// yearIndex, in the dataset order. Only a strictly greater return replaces
// the current leader, so ties go to the asset listed first.
// It panics if the dataset has no assets.
func (d *Dataset) YearlyLeader(yearIndex int) AssetKey {
	leader := d.Assets[0]
	for _, a := range d.Assets[1:] {
		if a.Returns[yearIndex] > leader.Returns[yearIndex] {
			leader = a
		}
	}
	return leader.Key
}

// Leaders returns the yearly leader of every year on the axis.
func (d *Dataset) Leaders() []AssetKey {
	if len(d.Assets) == 0 {
		return nil
	}
	res := make([]AssetKey, len(d.Years))
	for i := range d.Years {
		res[i] = d.YearlyLeader(i)
	}
	return res
}

// LeaderCount returns how many years key was the yearly leader.
func (d *Dataset) LeaderCount(key AssetKey) int {
	count := 0
	for _, k := range d.Leaders() {
		if k == key {
			count++
		}
	}
	return count
}
