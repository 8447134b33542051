package store

import (
	"errors"
	"strings"
	"sync"

	"example.com/knoxnights/backend/internal/models"
)

var ErrNotFound = errors.New("not found")

// MemoryStore owns the session collections for the lifetime of the
// process. Bars and the user profile are read-only after seeding; deals
// and coupons only grow, newest first.
type MemoryStore struct {
	mu      sync.RWMutex
	bars    []models.Bar
	deals   []models.Deal
	coupons []models.Coupon
	user    models.UserProfile
}

// NewMemoryStore creates a store preloaded with the given seed.
func NewMemoryStore(seed Seed) *MemoryStore {
	return &MemoryStore{
		bars:    append([]models.Bar(nil), seed.Bars...),
		deals:   append([]models.Deal(nil), seed.Deals...),
		coupons: append([]models.Coupon(nil), seed.Coupons...),
		user:    seed.User,
	}
}

// Bars returns a copy of the bar catalog in seed order.
func (s *MemoryStore) Bars() []models.Bar {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Bar(nil), s.bars...)
}

// BarByID looks a bar up by its identifier.
func (s *MemoryStore) BarByID(id string) (models.Bar, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, bar := range s.bars {
		if bar.ID == id {
			return bar, nil
		}
	}

	return models.Bar{}, ErrNotFound
}

// Deals returns a copy of the deal collection, newest first.
func (s *MemoryStore) Deals() []models.Deal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Deal(nil), s.deals...)
}

// Coupons returns a copy of the coupon collection, newest first.
func (s *MemoryStore) Coupons() []models.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Coupon(nil), s.coupons...)
}

// CurrentUser returns the session user profile.
func (s *MemoryStore) CurrentUser() models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user
}

// AddDeal prepends a deal so the collection stays newest first.
// Existing deals are never mutated or removed.
func (s *MemoryStore) AddDeal(deal models.Deal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deals = append([]models.Deal{deal}, s.deals...)
}

// AddCoupon prepends a coupon so the collection stays newest first.
func (s *MemoryStore) AddCoupon(coupon models.Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.coupons = append([]models.Coupon{coupon}, s.coupons...)
}

// SearchBars filters bars by a case-insensitive substring match against
// the name or any tag. An empty query returns the whole catalog; relative
// order is preserved.
func (s *MemoryStore) SearchBars(query string) []models.Bar {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Bar, 0, len(s.bars))
	for _, bar := range s.bars {
		if needle == "" || barMatches(bar, needle) {
			out = append(out, bar)
		}
	}

	return out
}

// SearchDeals filters deals by a case-insensitive substring match against
// the title or the bar name.
func (s *MemoryStore) SearchDeals(query string) []models.Deal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Deal, 0, len(s.deals))
	for _, deal := range s.deals {
		if needle == "" || dealMatches(deal, needle) {
			out = append(out, deal)
		}
	}

	return out
}

// TargetedCoupons returns the coupons whose target audience is a member
// of the user's preference list. Membership is exact, and expiry strings
// are never evaluated.
func (s *MemoryStore) TargetedCoupons(user models.UserProfile) []models.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefs := make(map[models.TargetAudience]struct{}, len(user.Preferences))
	for _, pref := range user.Preferences {
		prefs[pref] = struct{}{}
	}

	out := make([]models.Coupon, 0, len(s.coupons))
	for _, coupon := range s.coupons {
		if _, ok := prefs[coupon.TargetAudience]; ok {
			out = append(out, coupon)
		}
	}

	return out
}

func barMatches(bar models.Bar, needle string) bool {
	if strings.Contains(strings.ToLower(bar.Name), needle) {
		return true
	}

	for _, tag := range bar.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}

	return false
}

func dealMatches(deal models.Deal, needle string) bool {
	return strings.Contains(strings.ToLower(deal.Title), needle) ||
		strings.Contains(strings.ToLower(deal.BarName), needle)
}
