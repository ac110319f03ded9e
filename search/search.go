package search

import (
	"net/url"
	"strings"

	"github.com/luxeestate/luxeestate_site/models"
)

// Sentinel values for the "no filter" dropdown entries.
const (
	AllLocations = "All Locations"
	AllTypes     = "All Types"
)

// Locations drives the location dropdown. Entries after the sentinel are the
// canonical location strings property records carry; matching against them is
// exact and case-sensitive.
var Locations = []string{
	AllLocations,
	"Beverly Hills, CA",
	"Malibu, CA",
	"Los Angeles, CA",
	"Bel Air, CA",
	"Downtown LA",
	"Pasadena, CA",
}

// PropertyTypes drives the type dropdown. Entries are matched against the
// record category case-insensitively.
var PropertyTypes = []string{AllTypes, "Villa", "Penthouse", "House", "Apartment"}

// PriceBand is an inclusive [Min, Max] dollar range. Max == 0 means unbounded
// above.
type PriceBand struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

var PriceBands = []PriceBand{
	{Label: "Any Price", Min: 0, Max: 0},
	{Label: "Under $5M", Min: 0, Max: 5000000},
	{Label: "$5M - $10M", Min: 5000000, Max: 10000000},
	{Label: "$10M - $20M", Min: 10000000, Max: 20000000},
	{Label: "Over $20M", Min: 20000000, Max: 0},
}

func (b PriceBand) Contains(value int) bool {
	if value < b.Min {
		return false
	}
	return b.Max == 0 || value <= b.Max
}

// BandByLabel resolves a dropdown label to its band.
func BandByLabel(label string) (PriceBand, bool) {
	for _, b := range PriceBands {
		if b.Label == label {
			return b, true
		}
	}
	return PriceBand{}, false
}

// Criteria is the active filter combination of the listings view.
type Criteria struct {
	SearchText string
	Location   string
	Category   string
	PriceBand  PriceBand
}

// DefaultCriteria is the identity filter and the value a "clear filters"
// action resets to, as one whole-struct replacement.
func DefaultCriteria() Criteria {
	return Criteria{
		Location:  AllLocations,
		Category:  AllTypes,
		PriceBand: PriceBands[0],
	}
}

// FromQuery builds criteria from listing-page query parameters. Absent or
// unknown values fall back to the defaults, so a bare request is the identity
// filter.
func FromQuery(values url.Values) Criteria {
	c := DefaultCriteria()
	c.SearchText = values.Get("search")
	if loc := values.Get("location"); loc != "" {
		c.Location = loc
	}
	if typ := values.Get("type"); typ != "" {
		c.Category = typ
	}
	if label := values.Get("price"); label != "" {
		if band, ok := BandByLabel(label); ok {
			c.PriceBand = band
		}
	}
	return c
}

// Matches reports whether a property satisfies every active criterion.
func (c Criteria) Matches(p models.Property) bool {
	if c.SearchText != "" {
		q := strings.ToLower(c.SearchText)
		title := strings.ToLower(p.Title)
		location := strings.ToLower(p.Location)
		if !strings.Contains(title, q) && !strings.Contains(location, q) {
			return false
		}
	}
	if c.Location != "" && c.Location != AllLocations && p.Location != c.Location {
		return false
	}
	if c.Category != "" && c.Category != AllTypes && !strings.EqualFold(string(p.Category), c.Category) {
		return false
	}
	return c.PriceBand.Contains(p.PriceValue)
}

// Apply filters properties by the criteria, preserving input order. It never
// sorts and an empty result is a normal outcome.
func Apply(properties []models.Property, c Criteria) []models.Property {
	matched := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if c.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}
