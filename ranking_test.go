package perfcompare

import (
	"reflect"
	"testing"
)

func TestYearlyLeader_TieGoesToFirst(t *testing.T) {
	d := &Dataset{
		Years: []int{2020},
		Assets: []Asset{
			NewAsset(Gold, 50),
			NewAsset(Bonds, 30),
			NewAsset(RealEstate, 50),
		},
	}
	if got := d.YearlyLeader(0); got != Gold {
		t.Errorf("YearlyLeader() = %s, want gold", got)
	}
}

func TestLeaders_Default(t *testing.T) {
	d := Default()
	want := []AssetKey{
		Bitcoin, Bitcoin, Bitcoin, Nasdaq, Bitcoin,
		Bitcoin, Bitcoin, RealEstate, Bitcoin, Bitcoin,
		Bitcoin, RealEstate, Bitcoin, Bitcoin, Gold,
	}
	if got := d.Leaders(); !reflect.DeepEqual(got, want) {
		t.Errorf("Leaders() = %v, want %v", got, want)
	}
	if got := d.LeaderCount(Bitcoin); got != 11 {
		t.Errorf("LeaderCount(bitcoin) = %d, want 11", got)
	}
	if got := d.LeaderCount(SP500); got != 0 {
		t.Errorf("LeaderCount(sp500) = %d, want 0", got)
	}
}
