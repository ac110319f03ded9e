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
)

type galleryResponse struct {
	ActiveIndex int    `json:"activeIndex"`
	Count       int    `json:"count"`
	Image       string `json:"image"`
}

// NavigateGallery resolves one carousel command against a property's image
// list: starting from the "active" index (default 0, the view-entry state) it
// applies next, prev or select and reports the resulting state.
func NavigateGallery(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		property, err := store.FindByID(id)
		if errors.Is(err, catalog.ErrNotFound) {
			slog.Info("property not found for gallery", "id", id)
			writeNotFound(w, "Property Not Found")
			return
		}

		carousel, err := gallery.NewCarousel(len(property.Images))
		if err != nil {
			slog.Error("property has no images", "id", id)
			http.Error(w, "Property has no images", http.StatusInternalServerError)
			return
		}

		q := r.URL.Query()
		if raw := q.Get("active"); raw != "" {
			i, convErr := strconv.Atoi(raw)
			if convErr != nil || carousel.Select(i) != nil {
				http.Error(w, "Invalid active index", http.StatusBadRequest)
				return
			}
		}

		switch action := q.Get("action"); action {
		case "", "none":
		case "next":
			carousel.Next()
		case "prev":
			carousel.Prev()
		case "select":
			i, convErr := strconv.Atoi(q.Get("index"))
			if convErr != nil || carousel.Select(i) != nil {
				http.Error(w, "Invalid thumbnail index", http.StatusBadRequest)
				return
			}
		default:
			http.Error(w, "Unknown gallery action", http.StatusBadRequest)
			return
		}

		resp := galleryResponse{
			ActiveIndex: carousel.ActiveIndex(),
			Count:       carousel.Count(),
			Image:       property.Images[carousel.ActiveIndex()],
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
