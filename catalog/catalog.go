package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/luxeestate/luxeestate_site/models"
	"github.com/luxeestate/luxeestate_site/utils"
)

//go:embed data/catalog.json data/schema.json
var dataFS embed.FS

var ErrNotFound = errors.New("property not found")

// Store is the immutable property catalog. It is built once by Load and only
// read afterwards; slice ordering is the catalog order every derived view
// preserves.
type Store struct {
	properties []models.Property
	byID       map[string]int
}

// Load parses the embedded catalog asset, validates it against the embedded
// JSON Schema and checks the invariants the schema cannot express (unique ids,
// display price consistent with the numeric value, plausible build year).
func Load() (*Store, error) {
	raw, err := dataFS.ReadFile("data/catalog.json")
	if err != nil {
		return nil, fmt.Errorf("reading catalog asset: %w", err)
	}
	schemaSrc, err := dataFS.ReadFile("data/schema.json")
	if err != nil {
		return nil, fmt.Errorf("reading catalog schema: %w", err)
	}

	schema, err := jsonschema.CompileString("catalog/data/schema.json", string(schemaSrc))
	if err != nil {
		return nil, fmt.Errorf("compiling catalog schema: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog asset: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("catalog asset failed schema validation: %w", err)
	}

	var properties []models.Property
	if err := json.Unmarshal(raw, &properties); err != nil {
		return nil, fmt.Errorf("decoding catalog asset: %w", err)
	}

	byID := make(map[string]int, len(properties))
	currentYear := time.Now().Year()
	for i, p := range properties {
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate property id %q", p.ID)
		}
		if got := utils.FormatPrice(p.PriceValue); got != p.Price {
			return nil, fmt.Errorf("catalog: property %q display price %q does not match value %d (%s)", p.ID, p.Price, p.PriceValue, got)
		}
		if p.YearBuilt > currentYear {
			return nil, fmt.Errorf("catalog: property %q built in the future (%d)", p.ID, p.YearBuilt)
		}
		byID[p.ID] = i
	}

	return &Store{properties: properties, byID: byID}, nil
}

// FindByID returns the property with the given id, or ErrNotFound. A miss is
// an expected outcome the caller renders, not a failure.
func (s *Store) FindByID(id string) (models.Property, error) {
	i, ok := s.byID[id]
	if !ok {
		return models.Property{}, ErrNotFound
	}
	return s.properties[i], nil
}

// ListAll returns the full catalog in catalog order.
func (s *Store) ListAll() []models.Property {
	out := make([]models.Property, len(s.properties))
	copy(out, s.properties)
	return out
}

// ListFeatured returns every property flagged for the curated subset, in
// catalog order. Callers cap the count (the home page shows at most 3).
func (s *Store) ListFeatured() []models.Property {
	var out []models.Property
	for _, p := range s.properties {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Len reports the catalog size.
func (s *Store) Len() int {
	return len(s.properties)
}
