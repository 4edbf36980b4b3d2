package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/stayhub/listings-service/internal/dto"
	"github.com/stayhub/listings-service/internal/service"
)

type ListingHandler struct {
	svc service.ListingService
}

func NewListingHandler(svc service.ListingService) *ListingHandler {
	return &ListingHandler{svc: svc}
}

func (h *ListingHandler) RegisterRoutes(e *echo.Echo) {
	listings := e.Group("/api/v1/listings")
	listings.POST("", h.CreateListing)
	listings.GET("", h.ListListings)
	listings.GET("/:id", h.GetListing)
	listings.PUT("/:id", h.UpdateListing)
	listings.DELETE("/:id", h.DeleteListing)
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req dto.CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	listing, err := req.ToModel()
	if err != nil {
		return httpError(err)
	}

	if err := h.svc.CreateListing(c.Request().Context(), listing); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToListingResponse(listing))
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid listing id")
	}

	listing, err := h.svc.GetListing(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

func (h *ListingHandler) ListListings(c echo.Context) error {
	listings, err := h.svc.ListListings(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	resp := make([]dto.ListingResponse, len(listings))
	for i, l := range listings {
		resp[i] = dto.ToListingResponse(&l)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid listing id")
	}

	var req dto.CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := req.ToModel()
	if err != nil {
		return httpError(err)
	}

	listing, err := h.svc.UpdateListing(c.Request().Context(), id, updated)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid listing id")
	}

	if err := h.svc.DeleteListing(c.Request().Context(), id); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
