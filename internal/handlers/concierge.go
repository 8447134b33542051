package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/knoxnights/backend/internal/ai"
	"example.com/knoxnights/backend/internal/store"
)

// ConciergeHandler turns a free-text mood into a night-out itinerary
// grounded on the current catalog.
type ConciergeHandler struct {
	Service *ai.Service
	Store   *store.MemoryStore
}

func NewConciergeHandler(service *ai.Service, st *store.MemoryStore) *ConciergeHandler {
	return &ConciergeHandler{Service: service, Store: st}
}

type PlanNightRequest struct {
	Query string `json:"query" validate:"required,max=500"`
}

type PlanNightResponse struct {
	Plan *ai.NightPlan `json:"plan"`
}

// Plan asks the concierge for an itinerary. A failed or unusable AI
// response yields an absent plan, not an error status: the client
// renders "no plan" the same way regardless of the failure kind.
func (h *ConciergeHandler) Plan(c echo.Context) error {
	var req PlanNightRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "query is required")
	}

	input := ai.NightOutInput{
		Query: req.Query,
		Bars:  barContext(h.Store),
		Deals: dealContext(h.Store),
	}

	plan, _, _, err := h.Service.PlanNightOut(c.Request().Context(), input)
	if err != nil {
		slog.Warn("night plan unavailable", slog.String("query", req.Query), slog.String("error", err.Error()))
		return c.JSON(http.StatusOK, PlanNightResponse{Plan: nil})
	}

	return c.JSON(http.StatusOK, PlanNightResponse{Plan: &plan})
}

func barContext(st *store.MemoryStore) []ai.BarContext {
	bars := st.Bars()
	out := make([]ai.BarContext, 0, len(bars))
	for _, bar := range bars {
		out = append(out, ai.BarContext{
			Name: bar.Name,
			Vibe: string(bar.Vibe),
			Tags: bar.Tags,
		})
	}
	return out
}

func dealContext(st *store.MemoryStore) []ai.DealContext {
	deals := st.Deals()
	out := make([]ai.DealContext, 0, len(deals))
	for _, deal := range deals {
		out = append(out, ai.DealContext{
			Title:       deal.Title,
			BarName:     deal.BarName,
			Description: deal.Description,
		})
	}
	return out
}
