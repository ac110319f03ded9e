package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/luxeestate/luxeestate_site/search"
)

type filterOptionsResponse struct {
	Locations     []string           `json:"locations"`
	PropertyTypes []string           `json:"propertyTypes"`
	PriceBands    []search.PriceBand `json:"priceBands"`
}

// GetFilterOptions serves the fixed enumerations that drive the listings-page
// dropdowns.
func GetFilterOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := filterOptionsResponse{
			Locations:     search.Locations,
			PropertyTypes: search.PropertyTypes,
			PriceBands:    search.PriceBands,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
