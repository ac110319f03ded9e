package catalog

import (
	"errors"
	"testing"
)

func TestLoad(t *testing.T) {
	store, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if store.Len() != 6 {
		t.Errorf("expected 6 properties, got %d", store.Len())
	}

	all := store.ListAll()
	wantIDs := []string{"1", "2", "3", "4", "5", "6"}
	for i, id := range wantIDs {
		if all[i].ID != id {
			t.Errorf("catalog order: position %d = %q, want %q", i, all[i].ID, id)
		}
	}
}

func TestFindByID(t *testing.T) {
	store, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	property, err := store.FindByID("2")
	if err != nil {
		t.Fatalf("FindByID(2) error = %v", err)
	}
	if property.Title != "Oceanfront Penthouse" {
		t.Errorf("expected Oceanfront Penthouse, got %q", property.Title)
	}
	if property.Location != "Malibu, CA" {
		t.Errorf("expected Malibu, CA, got %q", property.Location)
	}

	_, err = store.FindByID("999")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID(999) error = %v, want ErrNotFound", err)
	}
}

func TestListFeatured(t *testing.T) {
	store, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	featured := store.ListFeatured()
	wantIDs := []string{"1", "2", "4"}
	if len(featured) != len(wantIDs) {
		t.Fatalf("expected %d featured properties, got %d", len(wantIDs), len(featured))
	}
	for i, id := range wantIDs {
		if featured[i].ID != id {
			t.Errorf("featured position %d = %q, want %q", i, featured[i].ID, id)
		}
		if !featured[i].Featured {
			t.Errorf("property %q returned by ListFeatured but not flagged", featured[i].ID)
		}
	}
}

func TestLoadEnforcesInvariants(t *testing.T) {
	store, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Load already rejects inconsistent price strings and zero-image records;
	// spot-check the shipped asset satisfies what downstream code relies on.
	for _, p := range store.ListAll() {
		if len(p.Images) == 0 {
			t.Errorf("property %q has no images", p.ID)
		}
		if p.Sqft <= 0 {
			t.Errorf("property %q has non-positive sqft", p.ID)
		}
		if p.PriceValue <= 0 {
			t.Errorf("property %q has non-positive price value", p.ID)
		}
	}
}

func TestListAllReturnsCopy(t *testing.T) {
	store, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	all := store.ListAll()
	all[0].Title = "mutated"

	again, _ := store.FindByID("1")
	if again.Title == "mutated" {
		t.Error("mutating ListAll result changed the store")
	}
}
