package gallery

import (
	"errors"
	"fmt"
	"math"

	"github.com/luxeestate/luxeestate_site/models"
)

// SimilarCap is how many similar properties a detail view shows.
const SimilarCap = 3

var ErrNoImages = errors.New("gallery: property has no images")

// Carousel tracks which image of an ordered image list is active on one detail
// view. State starts at index 0 and is discarded when the view is left.
type Carousel struct {
	count  int
	active int
}

func NewCarousel(imageCount int) (*Carousel, error) {
	if imageCount < 1 {
		return nil, ErrNoImages
	}
	return &Carousel{count: imageCount}, nil
}

func (c *Carousel) ActiveIndex() int {
	return c.active
}

func (c *Carousel) Count() int {
	return c.count
}

// Next advances to the following image, wrapping to 0 past the end.
func (c *Carousel) Next() int {
	c.active = (c.active + 1) % c.count
	return c.active
}

// Prev steps back one image, wrapping to the last from 0.
func (c *Carousel) Prev() int {
	c.active = (c.active - 1 + c.count) % c.count
	return c.active
}

// Select jumps to a thumbnail's index directly.
func (c *Carousel) Select(i int) error {
	if i < 0 || i >= c.count {
		return fmt.Errorf("gallery: index %d out of range [0, %d)", i, c.count)
	}
	c.active = i
	return nil
}

// Similar picks up to limit properties of the same category as current,
// excluding current itself, in catalog order. It never pads when fewer exist.
func Similar(properties []models.Property, current models.Property, limit int) []models.Property {
	var out []models.Property
	for _, p := range properties {
		if len(out) == limit {
			break
		}
		if p.ID != current.ID && p.Category == current.Category {
			out = append(out, p)
		}
	}
	return out
}

// PricePerSqft is the user-visible price-per-area figure, rounded half up.
func PricePerSqft(p models.Property) int {
	return int(math.Round(float64(p.PriceValue) / float64(p.Sqft)))
}
