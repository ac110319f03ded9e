package routes

import (
	"github.com/gorilla/mux"

	"github.com/luxeestate/luxeestate_site/catalog"
	"github.com/luxeestate/luxeestate_site/content"
	"github.com/luxeestate/luxeestate_site/controllers"
	"github.com/luxeestate/luxeestate_site/inquiry"
	"github.com/luxeestate/luxeestate_site/middleware"
)

func Routes(router *mux.Router, store *catalog.Store, pages *content.Pages, inquiries *inquiry.Service) {
	router.Use(middleware.Logging)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", controllers.Health()).Methods("GET")

	// Property routes; /featured must register before /{id}
	api.HandleFunc("/properties", controllers.GetProperties(store)).Methods("GET")
	api.HandleFunc("/properties/featured", controllers.GetFeaturedProperties(store)).Methods("GET")
	api.HandleFunc("/properties/{id}", controllers.GetPropertyByID(store)).Methods("GET")
	api.HandleFunc("/properties/{id}/gallery", controllers.NavigateGallery(store)).Methods("GET")
	api.HandleFunc("/properties/{id}/inquiry", controllers.SubmitPropertyInquiry(store, inquiries)).Methods("POST")

	// Filter dropdown enumerations
	api.HandleFunc("/filters", controllers.GetFilterOptions()).Methods("GET")

	// Contact form
	api.HandleFunc("/contact", controllers.SubmitContact(inquiries)).Methods("POST")

	// Informational pages
	api.HandleFunc("/pages/{slug}", controllers.GetPage(pages)).Methods("GET")
}
