package handler

import (
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/reference"

	"github.com/labstack/echo/v4"
)

// ReferenceHandler serves the static scheme and guidance content.
type ReferenceHandler struct{}

// NewReferenceHandler is the constructor for ReferenceHandler, injected by Fx.
func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

// ListSchemes returns the government scheme catalog.
func (h *ReferenceHandler) ListSchemes(c echo.Context) error {
	return response.Success(c, http.StatusOK, reference.Schemes(), "Schemes retrieved successfully")
}

type guidanceResponse struct {
	Categories []string                `json:"categories"`
	Tips       []reference.GuidanceTip `json:"tips"`
}

// ListGuidance returns guidance tips, optionally filtered by category.
func (h *ReferenceHandler) ListGuidance(c echo.Context) error {
	category := c.QueryParam("category")

	out := guidanceResponse{
		Categories: reference.GuidanceCategories(),
		Tips:       reference.GuidanceTips(category),
	}

	return response.Success(c, http.StatusOK, out, "Guidance retrieved successfully")
}
