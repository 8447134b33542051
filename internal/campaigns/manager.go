package campaigns

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"

	"example.com/knoxnights/backend/internal/ai"
	"example.com/knoxnights/backend/internal/audience"
	"example.com/knoxnights/backend/internal/models"
	"example.com/knoxnights/backend/internal/notifications"
	"example.com/knoxnights/backend/internal/store"
)

type State string

const (
	StateIdle      State = "idle"
	StateAwaiting  State = "awaiting"
	StatePresented State = "presented"
	StateSelected  State = "selected"
)

type Kind string

const (
	KindDeal   Kind = "deal"
	KindCoupon Kind = "coupon"
)

var (
	ErrEmptyInput   = errors.New("product and goal are required")
	ErrSuperseded   = errors.New("request superseded by a newer one")
	ErrNoIdeas      = errors.New("no ideas presented")
	ErrInvalidIndex = errors.New("idea index out of range")
	ErrNoSelection  = errors.New("no idea selected")
	ErrInvalidKind  = errors.New("unknown campaign kind")
)

// Fixed draft values for published campaigns; the demo fabricates
// pricing, windows and discounts rather than asking the owner.
const (
	dealPrice      = "$5.00"
	dealStartTime  = "18:00"
	dealEndTime    = "21:00"
	couponDiscount = "15% OFF"
	couponExpiry   = "24h"
	couponPrefix   = "KNOX"
)

// Manager drives the owner's campaign draft through its states:
// idle -> awaiting -> presented -> selected -> (publish) -> idle.
// Each generation carries a sequence number; a response that is no
// longer the latest issued is discarded instead of overwriting newer
// results.
type Manager struct {
	service *ai.Service
	store   *store.MemoryStore
	hub     *notifications.Hub
	bar     models.Bar

	mu       sync.Mutex
	seq      uint64
	state    State
	ideas    []ai.CampaignIdea
	selected int
	fallback bool
}

// Snapshot is a read-only view of the draft for the owner dashboard.
type Snapshot struct {
	State         State             `json:"state"`
	Ideas         []ai.CampaignIdea `json:"ideas"`
	SelectedIndex int               `json:"selected_index"`
	Fallback      bool              `json:"fallback"`
}

// Publication is the result of converting a selected idea.
type Publication struct {
	Kind   Kind           `json:"kind"`
	Deal   *models.Deal   `json:"deal,omitempty"`
	Coupon *models.Coupon `json:"coupon,omitempty"`
}

// NewManager creates a draft manager for the given owner bar.
func NewManager(service *ai.Service, st *store.MemoryStore, hub *notifications.Hub, bar models.Bar) *Manager {
	return &Manager{
		service:  service,
		store:    st,
		hub:      hub,
		bar:      bar,
		state:    StateIdle,
		selected: -1,
	}
}

// Bar returns the owner bar this manager publishes for.
func (m *Manager) Bar() models.Bar {
	return m.bar
}

// Generate requests campaign ideas for the product and goal. The AI call
// runs without the draft lock; only the latest issued request may store
// its result. Any AI failure degrades to a single generic fallback idea,
// so a presented list is never empty.
func (m *Manager) Generate(ctx context.Context, product, goal string) ([]ai.CampaignIdea, bool, error) {
	product = strings.TrimSpace(product)
	goal = strings.TrimSpace(goal)
	if product == "" || goal == "" {
		return nil, false, ErrEmptyInput
	}

	m.mu.Lock()
	m.seq++
	seq := m.seq
	m.state = StateAwaiting
	m.ideas = nil
	m.selected = -1
	m.fallback = false
	m.mu.Unlock()

	ideas, _, _, err := m.service.GenerateCampaignIdeas(ctx, ai.CampaignInput{
		BarName:     m.bar.Name,
		ProductName: product,
		Goal:        goal,
	})

	usedFallback := false
	if err != nil {
		slog.Warn("campaign ideas fallback used",
			slog.String("bar_id", m.bar.ID),
			slog.String("product", product),
			slog.String("error", err.Error()))
		ideas = fallbackIdeas(product)
		usedFallback = true
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if seq != m.seq {
		return nil, false, ErrSuperseded
	}

	m.state = StatePresented
	m.ideas = ideas
	m.fallback = usedFallback

	return append([]ai.CampaignIdea(nil), ideas...), usedFallback, nil
}

// Select marks one presented idea as the publication candidate,
// replacing any prior selection.
func (m *Manager) Select(index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StatePresented && m.state != StateSelected {
		return ErrNoIdeas
	}
	if index < 0 || index >= len(m.ideas) {
		return ErrInvalidIndex
	}

	m.selected = index
	m.state = StateSelected

	return nil
}

// Publish converts the selected idea into a deal or a targeted coupon,
// prepends it to the session catalog and resets the draft to idle.
func (m *Manager) Publish(kind Kind) (Publication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateSelected || m.selected < 0 || m.selected >= len(m.ideas) {
		return Publication{}, ErrNoSelection
	}

	idea := m.ideas[m.selected]

	var publication Publication
	switch kind {
	case KindDeal:
		deal := models.Deal{
			ID:          uuid.NewString(),
			BarID:       m.bar.ID,
			BarName:     m.bar.Name,
			Title:       idea.Title,
			Description: idea.Description,
			Price:       dealPrice,
			ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/400/300", uuid.NewString()[:8]),
			StartTime:   dealStartTime,
			EndTime:     dealEndTime,
			Tags:        []string{idea.SuggestedAudience},
		}
		m.store.AddDeal(deal)
		publication = Publication{Kind: KindDeal, Deal: &deal}
		publishEvent(m.hub, notifications.EventDealPublished, deal.ID, deal.Title, m.bar.Name)
	case KindCoupon:
		coupon := models.Coupon{
			ID:             uuid.NewString(),
			BarID:          m.bar.ID,
			BarName:        m.bar.Name,
			Title:          idea.Title,
			Description:    idea.Description,
			Code:           fmt.Sprintf("%s%d", couponPrefix, rand.Intn(1000)),
			DiscountAmount: couponDiscount,
			TargetAudience: audience.Classify(idea.SuggestedAudience),
			Expiry:         couponExpiry,
		}
		m.store.AddCoupon(coupon)
		publication = Publication{Kind: KindCoupon, Coupon: &coupon}
		publishEvent(m.hub, notifications.EventCouponPublished, coupon.ID, coupon.Title, m.bar.Name)
	default:
		return Publication{}, ErrInvalidKind
	}

	m.state = StateIdle
	m.ideas = nil
	m.selected = -1
	m.fallback = false

	return publication, nil
}

// Snapshot returns the current draft state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		State:         m.state,
		Ideas:         append([]ai.CampaignIdea(nil), m.ideas...),
		SelectedIndex: m.selected,
		Fallback:      m.fallback,
	}
}

// ParseKind maps a request string onto a campaign kind.
func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(KindDeal):
		return KindDeal, nil
	case string(KindCoupon):
		return KindCoupon, nil
	default:
		return "", ErrInvalidKind
	}
}

func fallbackIdeas(product string) []ai.CampaignIdea {
	return []ai.CampaignIdea{
		{
			Title:             "Flash Sale!",
			Description:       fmt.Sprintf("Come try our amazing %s today!", product),
			SuggestedAudience: "Everyone",
		},
	}
}

func publishEvent(hub *notifications.Hub, eventType, id, title, barName string) {
	if hub == nil {
		return
	}

	hub.Publish(notifications.Event{
		Type: eventType,
		Data: map[string]interface{}{
			"id":       id,
			"title":    title,
			"bar_name": barName,
		},
	})
}
