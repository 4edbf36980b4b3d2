package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/stayhub/listings-service/internal/dto"
	"github.com/stayhub/listings-service/internal/service"
)

type ReviewHandler struct {
	svc service.ReviewService
}

func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/reviews", h.CreateReview)
	e.GET("/api/v1/reviews/:id", h.GetReview)
	e.GET("/api/v1/listings/:id/reviews", h.ListReviewsByListing)
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req dto.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	review, err := req.ToModel()
	if err != nil {
		return httpError(err)
	}

	if err := h.svc.CreateReview(c.Request().Context(), review); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *ReviewHandler) GetReview(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid review id")
	}

	review, err := h.svc.GetReview(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

func (h *ReviewHandler) ListReviewsByListing(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid listing id")
	}

	reviews, err := h.svc.ListReviewsByListing(c.Request().Context(), listingID)
	if err != nil {
		return httpError(err)
	}

	resp := make([]dto.ReviewResponse, len(reviews))
	for i, r := range reviews {
		resp[i] = dto.ToReviewResponse(&r)
	}

	return c.JSON(http.StatusOK, resp)
}
