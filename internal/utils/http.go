package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/gamestore-webhook/internal/pkg/models"
)

// ErrorResponseHandler sends the plain {"error": ...} body expected by the conversational platform
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, models.WebhookError{Error: errorMessage})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}
