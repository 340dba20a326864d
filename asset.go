package perfcompare

import (
	"fmt"
	"strings"
)

// AssetKey identifies one of the tracked asset classes.
type AssetKey int

const (
	Bitcoin AssetKey = iota
	SP500
	Nasdaq
	Gold
	Bonds
	RealEstate
)

// AssetKeys lists every known key in display order.
var AssetKeys = []AssetKey{Bitcoin, SP500, Nasdaq, Gold, Bonds, RealEstate}

// String returns the lowercase identifier used in files and on the command line.
func (k AssetKey) String() string {
	switch k {
	case Bitcoin:
		return "bitcoin"
	case SP500:
		return "sp500"
	case Nasdaq:
		return "nasdaq"
	case Gold:
		return "gold"
	case Bonds:
		return "bonds"
	case RealEstate:
		return "realestate"
	default:
		panic(fmt.Sprintf("unknown asset key %d", int(k)))
	}
}

// Name returns the default display name of the asset class.
func (k AssetKey) Name() string {
	switch k {
	case Bitcoin:
		return "Bitcoin"
	case SP500:
		return "S&P 500"
	case Nasdaq:
		return "NASDAQ"
	case Gold:
		return "Gold"
	case Bonds:
		return "Bonds"
	case RealEstate:
		return "Real Estate"
	default:
		panic(fmt.Sprintf("unknown asset key %d", int(k)))
	}
}

// Color returns the default display color as a #rrggbb string.
func (k AssetKey) Color() string {
	switch k {
	case Bitcoin:
		return "#f7931a"
	case SP500:
		return "#4285f4"
	case Nasdaq:
		return "#8b5cf6"
	case Gold:
		return "#ffd700"
	case Bonds:
		return "#22c55e"
	case RealEstate:
		return "#ef4444"
	default:
		panic(fmt.Sprintf("unknown asset key %d", int(k)))
	}
}

// ParseAssetKey parses the lowercase identifier of an asset class.
func ParseAssetKey(s string) (AssetKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bitcoin", "btc":
		return Bitcoin, nil
	case "sp500", "s&p500", "spx":
		return SP500, nil
	case "nasdaq":
		return Nasdaq, nil
	case "gold":
		return Gold, nil
	case "bonds":
		return Bonds, nil
	case "realestate", "real-estate":
		return RealEstate, nil
	default:
		return Bitcoin, fmt.Errorf("unknown asset %q", s)
	}
}

func (k AssetKey) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *AssetKey) UnmarshalText(text []byte) error {
	key, err := ParseAssetKey(string(text))
	if err != nil {
		return err
	}
	*k = key
	return nil
}

// Asset is one tracked asset class and its annual returns in percent.
// Returns[i] is the return of the dataset's Years[i].
type Asset struct {
	Key     AssetKey  `json:"key"`
	Name    string    `json:"name"`
	Color   string    `json:"color"`
	Returns []float64 `json:"returns"`
}

// NewAsset creates an asset with the default name and color of its key.
func NewAsset(key AssetKey, returns ...float64) Asset {
	return Asset{Key: key, Name: key.Name(), Color: key.Color(), Returns: returns}
}
