package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayhub/listings-service/internal/apperrors"
	"github.com/stayhub/listings-service/internal/dto"
)

// ErrorHandler renders every error as a dto.ErrorResponse body. Service
// errors that reach echo unmapped still land on the status their kind
// implies; anything else is a storage-layer failure.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	switch {
	case apperrors.IsValidation(err):
		code = http.StatusBadRequest
	case apperrors.IsReference(err):
		code = http.StatusNotFound
	}

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg})
}
