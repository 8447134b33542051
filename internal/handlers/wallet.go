package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/knoxnights/backend/internal/models"
	"example.com/knoxnights/backend/internal/store"
)

// WalletHandler serves the session user's profile and targeted coupons.
type WalletHandler struct {
	Store *store.MemoryStore
}

func NewWalletHandler(st *store.MemoryStore) *WalletHandler {
	return &WalletHandler{Store: st}
}

// Me returns the session user profile.
func (h *WalletHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]models.UserProfile{"user": h.Store.CurrentUser()})
}

// Coupons returns the coupons whose target audience matches one of the
// session user's preferences.
func (h *WalletHandler) Coupons(c echo.Context) error {
	user := h.Store.CurrentUser()
	coupons := h.Store.TargetedCoupons(user)

	return c.JSON(http.StatusOK, WalletResponse{
		Preferences: user.Preferences,
		Coupons:     coupons,
	})
}

type WalletResponse struct {
	Preferences []models.TargetAudience `json:"preferences"`
	Coupons     []models.Coupon         `json:"coupons"`
}
