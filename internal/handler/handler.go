package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayhub/listings-service/internal/apperrors"
)

// httpError maps service errors onto HTTP statuses: validation failures are
// 400, dangling references 404, anything from storage 500.
func httpError(err error) *echo.HTTPError {
	switch {
	case apperrors.IsValidation(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case apperrors.IsReference(err):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
