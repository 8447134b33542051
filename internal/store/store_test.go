package store

import (
	"testing"

	"example.com/knoxnights/backend/internal/models"
)

// TestSearchBarsByTag verifies case-insensitive matching on tags.
func TestSearchBarsByTag(t *testing.T) {
	s := NewMemoryStore(DemoSeed())

	got := s.SearchBars("rooftop")
	if len(got) != 2 {
		t.Fatalf("expected 2 rooftop bars, got %d", len(got))
	}
	if got[0].Name != "Preservation Pub" || got[1].Name != "Bernadette's Crystal Gardens" {
		t.Fatalf("unexpected order: %s, %s", got[0].Name, got[1].Name)
	}
}

// TestSearchBarsByName verifies case-insensitive matching on names.
func TestSearchBarsByName(t *testing.T) {
	s := NewMemoryStore(DemoSeed())

	got := s.SearchBars("SUTTREE")
	if len(got) != 1 || got[0].ID != "b2" {
		t.Fatalf("expected suttree's only, got %v", got)
	}
}

// TestSearchBarsEmptyQuery verifies that an empty query returns the
// whole catalog in seed order.
func TestSearchBarsEmptyQuery(t *testing.T) {
	s := NewMemoryStore(DemoSeed())

	got := s.SearchBars("  ")
	if len(got) != 6 {
		t.Fatalf("expected 6 bars, got %d", len(got))
	}
	if got[0].ID != "b1" || got[5].ID != "b6" {
		t.Fatalf("expected seed order, got %s..%s", got[0].ID, got[5].ID)
	}
}

// TestSearchDeals verifies matching on deal title or bar name.
func TestSearchDeals(t *testing.T) {
	s := NewMemoryStore(DemoSeed())

	byTitle := s.SearchDeals("tiki")
	if len(byTitle) != 1 || byTitle[0].ID != "d3" {
		t.Fatalf("expected tiki tuesday, got %v", byTitle)
	}

	byBar := s.SearchDeals("preservation")
	if len(byBar) != 1 || byBar[0].ID != "d1" {
		t.Fatalf("expected preservation pub deal, got %v", byBar)
	}

	none := s.SearchDeals("karaoke")
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %v", none)
	}
}

// TestTargetedCoupons verifies exact audience membership filtering.
func TestTargetedCoupons(t *testing.T) {
	s := NewMemoryStore(DemoSeed())
	s.AddCoupon(models.Coupon{
		ID:             "c3",
		Title:          "Game Day Pitchers",
		TargetAudience: models.AudienceSportsFans,
	})

	got := s.TargetedCoupons(s.CurrentUser())
	if len(got) != 2 {
		t.Fatalf("expected 2 targeted coupons, got %d", len(got))
	}
	for _, coupon := range got {
		if coupon.TargetAudience == models.AudienceSportsFans {
			t.Fatalf("sports fans coupon should not be targeted at %v", s.CurrentUser().Preferences)
		}
	}
}

// TestAddDealPrepends verifies newest-first ordering and that existing
// deals survive untouched.
func TestAddDealPrepends(t *testing.T) {
	s := NewMemoryStore(DemoSeed())
	before := s.Deals()

	s.AddDeal(models.Deal{ID: "d-new", Title: "Trivia Night Pints"})

	after := s.Deals()
	if len(after) != len(before)+1 {
		t.Fatalf("expected %d deals, got %d", len(before)+1, len(after))
	}
	if after[0].ID != "d-new" {
		t.Fatalf("expected new deal first, got %s", after[0].ID)
	}
	for i, deal := range before {
		if after[i+1].ID != deal.ID {
			t.Fatalf("existing deal order changed at %d: %s != %s", i, after[i+1].ID, deal.ID)
		}
	}
}

// TestBarByID verifies lookup and the not-found sentinel.
func TestBarByID(t *testing.T) {
	s := NewMemoryStore(DemoSeed())

	bar, err := s.BarByID("b1")
	if err != nil || bar.Name != "Preservation Pub" {
		t.Fatalf("expected preservation pub, got %v (%v)", bar, err)
	}

	if _, err := s.BarByID("b99"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestAccessorsReturnCopies verifies callers cannot mutate store state
// through returned slices.
func TestAccessorsReturnCopies(t *testing.T) {
	s := NewMemoryStore(DemoSeed())

	bars := s.Bars()
	bars[0].Name = "mutated"

	if s.Bars()[0].Name != "Preservation Pub" {
		t.Fatal("store state leaked through accessor")
	}
}
