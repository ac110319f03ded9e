package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/luxeestate/luxeestate_site/catalog"
	"github.com/luxeestate/luxeestate_site/gallery"
	"github.com/luxeestate/luxeestate_site/models"
	"github.com/luxeestate/luxeestate_site/search"
)

// FeaturedCap is how many curated properties the home page shows.
const FeaturedCap = 3

type propertyListResponse struct {
	Count      int               `json:"count"`
	Properties []models.Property `json:"properties"`
}

type propertyDetailResponse struct {
	Property     models.Property   `json:"property"`
	PricePerSqft int               `json:"pricePerSqft"`
	Similar      []models.Property `json:"similar"`
}

type notFoundResponse struct {
	Message string `json:"message"`
	BackTo  string `json:"backTo"`
}

// GetProperties serves the listings page data: the catalog filtered by the
// search/location/type/price query params, in catalog order. An empty match is
// a 200 with an empty list.
func GetProperties(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria := search.FromQuery(r.URL.Query())
		matched := search.Apply(store.ListAll(), criteria)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(propertyListResponse{Count: len(matched), Properties: matched})
	}
}

// GetFeaturedProperties serves the curated home-page subset, capped to
// FeaturedCap unless a smaller limit is asked for.
func GetFeaturedProperties(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := FeaturedCap
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				slog.Info("invalid featured limit", "value", raw)
				http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
				return
			}
			limit = n
		}

		featured := store.ListFeatured()
		if len(featured) > limit {
			featured = featured[:limit]
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(propertyListResponse{Count: len(featured), Properties: featured})
	}
}

// GetPropertyByID serves one detail view: the record plus its derived data
// (price per square foot and up to three same-category properties).
func GetPropertyByID(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		property, err := store.FindByID(id)
		if errors.Is(err, catalog.ErrNotFound) {
			slog.Info("property not found", "id", id)
			writeNotFound(w, "Property Not Found")
			return
		}

		resp := propertyDetailResponse{
			Property:     property,
			PricePerSqft: gallery.PricePerSqft(property),
			Similar:      gallery.Similar(store.ListAll(), property, gallery.SimilarCap),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func writeNotFound(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(notFoundResponse{Message: message, BackTo: "/properties"})
}
