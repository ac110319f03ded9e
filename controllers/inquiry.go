package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/luxeestate/luxeestate_site/catalog"
	"github.com/luxeestate/luxeestate_site/inquiry"
	"github.com/luxeestate/luxeestate_site/models"
)

type submissionResponse struct {
	Title   string           `json:"title"`
	Detail  string           `json:"detail"`
	Receipt *inquiry.Receipt `json:"receipt"`
}

// SubmitContact handles the general contact form. On acceptance it answers
// with the contact-page confirmation copy after the simulated delay.
func SubmitContact(inquiries *inquiry.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submitForm(w, r, inquiries,
			"Message Sent Successfully!",
			"Thank you for reaching out. We'll respond within 24 hours.")
	}
}

// SubmitPropertyInquiry handles the detail-page inquiry sidebar. The property
// must exist; the form rules are the same as the contact page.
func SubmitPropertyInquiry(store *catalog.Store, inquiries *inquiry.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if _, err := store.FindByID(id); errors.Is(err, catalog.ErrNotFound) {
			slog.Info("inquiry for unknown property", "id", id)
			writeNotFound(w, "Property Not Found")
			return
		}

		submitForm(w, r, inquiries,
			"Inquiry Sent!",
			"We'll get back to you shortly.")
	}
}

func submitForm(w http.ResponseWriter, r *http.Request, inquiries *inquiry.Service, title, detail string) {
	var form models.InquiryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		slog.Info("invalid inquiry payload", "err", err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	receipt, err := inquiries.Submit(r.Context(), &form)
	if err != nil {
		var ferr *inquiry.FieldError
		if errors.As(err, &ferr) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ferr)
			return
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Requester went away mid-delay; the pending acceptance is dropped.
			slog.Info("inquiry abandoned before acceptance", "path", r.URL.Path)
			return
		}
		slog.Error("inquiry submission failed", "err", err)
		http.Error(w, "Failed to submit inquiry", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(submissionResponse{Title: title, Detail: detail, Receipt: receipt})
}
