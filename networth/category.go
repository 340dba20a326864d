package networth

import (
	"fmt"
	"strings"
)

// Category is a kind of asset.
type Category int

const (
	Cash Category = iota
	Investments
	RealEstate
	Bitcoin
	Other
)

// Categories in display order.
var Categories = []Category{Cash, Investments, RealEstate, Bitcoin, Other}

func (c Category) String() string {
	switch c {
	case Cash:
		return "cash"
	case Investments:
		return "investments"
	case RealEstate:
		return "realestate"
	case Bitcoin:
		return "bitcoin"
	case Other:
		return "other"
	default:
		panic(fmt.Sprintf("unknown category %d", int(c)))
	}
}

// Label is the display name of the category.
func (c Category) Label() string {
	switch c {
	case Cash:
		return "Cash"
	case Investments:
		return "Investments"
	case RealEstate:
		return "Real Estate"
	case Bitcoin:
		return "Bitcoin"
	case Other:
		return "Other"
	default:
		panic(fmt.Sprintf("unknown category %d", int(c)))
	}
}

// Color is the display color of the category in the breakdown.
func (c Category) Color() string {
	switch c {
	case Cash:
		return "#4ade80"
	case Investments:
		return "#60a5fa"
	case RealEstate:
		return "#c084fc"
	case Bitcoin:
		return "#f7931a"
	case Other:
		return "#fbbf24"
	default:
		panic(fmt.Sprintf("unknown category %d", int(c)))
	}
}

// ParseCategory parses the identifier of a category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash":
		return Cash, nil
	case "investments":
		return Investments, nil
	case "realestate", "real-estate":
		return RealEstate, nil
	case "bitcoin", "btc":
		return Bitcoin, nil
	case "other":
		return Other, nil
	default:
		return 0, fmt.Errorf("unknown category %q", s)
	}
}

func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Category) UnmarshalText(text []byte) error {
	v, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
