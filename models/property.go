package models

type ListingType string

const (
	ListingSale ListingType = "sale"
	ListingRent ListingType = "rent"
)

type Category string

const (
	CategoryHouse     Category = "house"
	CategoryApartment Category = "apartment"
	CategoryPenthouse Category = "penthouse"
	CategoryVilla     Category = "villa"
)

// Property is one catalog record. Records are loaded once at startup and never
// mutated; PriceValue is the numeric amount behind the Price display string.
type Property struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Location    string      `json:"location"`
	Address     string      `json:"address"`
	Price       string      `json:"price"`
	PriceValue  int         `json:"priceValue"`
	Beds        int         `json:"beds"`
	Baths       int         `json:"baths"`
	Sqft        int         `json:"sqft"`
	YearBuilt   int         `json:"yearBuilt"`
	Description string      `json:"description"`
	Features    []string    `json:"features"`
	Images      []string    `json:"images"`
	Type        ListingType `json:"type"`
	Category    Category    `json:"category"`
	Featured    bool        `json:"featured"`
}
