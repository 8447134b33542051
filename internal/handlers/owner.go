package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/knoxnights/backend/internal/ai"
	"example.com/knoxnights/backend/internal/campaigns"
	"example.com/knoxnights/backend/internal/models"
)

// OwnerHandler serves the bar-owner dashboard: the campaign draft flow
// and the demo analytics snapshot.
type OwnerHandler struct {
	Manager *campaigns.Manager
}

func NewOwnerHandler(manager *campaigns.Manager) *OwnerHandler {
	return &OwnerHandler{Manager: manager}
}

type GenerateCampaignRequest struct {
	Product string `json:"product" validate:"required,max=200"`
	Goal    string `json:"goal" validate:"required,max=200"`
}

type GenerateCampaignResponse struct {
	Ideas    []ai.CampaignIdea `json:"ideas"`
	Fallback bool              `json:"fallback"`
}

type SelectIdeaRequest struct {
	Index *int `json:"index" validate:"required"`
}

type PublishCampaignRequest struct {
	Type string `json:"type" validate:"required"`
}

// Bar returns the owner's bar.
func (h *OwnerHandler) Bar(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]models.Bar{"bar": h.Manager.Bar()})
}

// Campaigns returns the current draft snapshot.
func (h *OwnerHandler) Campaigns(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Manager.Snapshot())
}

// Generate requests campaign ideas for a product and goal. The response
// always carries at least one idea; the fallback flag tells the client
// a generic idea was substituted for a failed AI call.
func (h *OwnerHandler) Generate(c echo.Context) error {
	var req GenerateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "product and goal are required")
	}

	ideas, fallback, err := h.Manager.Generate(c.Request().Context(), req.Product, req.Goal)
	if err != nil {
		switch {
		case errors.Is(err, campaigns.ErrEmptyInput):
			return badRequest(c, "product and goal are required")
		case errors.Is(err, campaigns.ErrSuperseded):
			return conflict(c, "superseded by a newer request")
		default:
			return serverError(c)
		}
	}

	return c.JSON(http.StatusOK, GenerateCampaignResponse{Ideas: ideas, Fallback: fallback})
}

// Select marks one presented idea for publication.
func (h *OwnerHandler) Select(c echo.Context) error {
	var req SelectIdeaRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "index is required")
	}

	if err := h.Manager.Select(*req.Index); err != nil {
		switch {
		case errors.Is(err, campaigns.ErrNoIdeas):
			return conflict(c, "no ideas to select from")
		case errors.Is(err, campaigns.ErrInvalidIndex):
			return badRequest(c, "idea index out of range")
		default:
			return serverError(c)
		}
	}

	return c.JSON(http.StatusOK, h.Manager.Snapshot())
}

// Publish converts the selected idea into a deal or coupon and appends
// it to the session catalog.
func (h *OwnerHandler) Publish(c echo.Context) error {
	var req PublishCampaignRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "type is required")
	}

	kind, err := campaigns.ParseKind(req.Type)
	if err != nil {
		return badRequest(c, "type must be deal or coupon")
	}

	publication, err := h.Manager.Publish(kind)
	if err != nil {
		if errors.Is(err, campaigns.ErrNoSelection) {
			return conflict(c, "no idea selected")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, publication)
}

type AnalyticsResponse struct {
	ActiveCoupons   int    `json:"active_coupons"`
	DealImpressions string `json:"deal_impressions"`
	RedemptionRate  string `json:"redemption_rate"`
	AreaAverage     string `json:"area_average"`
}

// Analytics returns the static demo dashboard numbers.
func (h *OwnerHandler) Analytics(c echo.Context) error {
	return c.JSON(http.StatusOK, AnalyticsResponse{
		ActiveCoupons:   124,
		DealImpressions: "2.4k",
		RedemptionRate:  "18%",
		AreaAverage:     "15%",
	})
}
