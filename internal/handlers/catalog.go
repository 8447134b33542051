package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"example.com/knoxnights/backend/internal/models"
	"example.com/knoxnights/backend/internal/store"
)

// CatalogHandler serves the patron-facing bar and deal listings.
type CatalogHandler struct {
	Store *store.MemoryStore
}

func NewCatalogHandler(st *store.MemoryStore) *CatalogHandler {
	return &CatalogHandler{Store: st}
}

// ListBars returns the bar catalog, optionally filtered by ?q= against
// bar names and tags.
func (h *CatalogHandler) ListBars(c echo.Context) error {
	bars := h.Store.SearchBars(c.QueryParam("q"))
	return c.JSON(http.StatusOK, map[string][]models.Bar{"bars": bars})
}

// GetBar returns a single bar by id.
func (h *CatalogHandler) GetBar(c echo.Context) error {
	bar, err := h.Store.BarByID(c.Param("id"))
	if err != nil {
		return notFound(c, "bar not found")
	}

	return c.JSON(http.StatusOK, map[string]models.Bar{"bar": bar})
}

// ListDeals returns the deal collection, newest first, optionally
// filtered by ?q= against titles and bar names.
func (h *CatalogHandler) ListDeals(c echo.Context) error {
	deals := h.Store.SearchDeals(c.QueryParam("q"))
	return c.JSON(http.StatusOK, map[string][]models.Deal{"deals": deals})
}
