package utils

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/amigotrunfo/trunfo/backend/models"
	"github.com/amigotrunfo/trunfo/trunfo/battle"
	"github.com/amigotrunfo/trunfo/trunfo/database"
	"github.com/amigotrunfo/trunfo/trunfo/onboarding"
	"github.com/amigotrunfo/trunfo/trunfo/packs"
)

// SendJSON sends a JSON response using Fiber
func SendJSON(c *fiber.Ctx, statusCode int, data any) error {
	return c.Status(statusCode).JSON(data)
}

// SendSuccess sends a successful JSON response
func SendSuccess(c *fiber.Ctx, data any, message string) error {
	return SendJSON(c, http.StatusOK, models.NewSuccessResponse(data, message))
}

// SendCreated sends a created resource JSON response
func SendCreated(c *fiber.Ctx, data any, message string) error {
	return SendJSON(c, http.StatusCreated, models.NewSuccessResponse(data, message))
}

// SendError sends an error JSON response
func SendError(c *fiber.Ctx, statusCode int, code, message string, details map[string]string) error {
	return SendJSON(c, statusCode, models.NewErrorResponse(code, message, details))
}

func SendBadRequest(c *fiber.Ctx, message string, details map[string]string) error {
	return SendError(c, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

func SendNotFound(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusNotFound, "NOT_FOUND", message, nil)
}

func SendInternalServerError(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message, nil)
}

func SendUnprocessableEntity(c *fiber.Ctx, message string, details map[string]string) error {
	return SendError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", message, details)
}

// HandleValidationErrors converts validation errors to API response
func HandleValidationErrors(c *fiber.Ctx, errs []models.ValidationError) error {
	details := make(map[string]string, len(errs))
	for _, e := range errs {
		details[e.Field] = e.Description
	}
	return SendUnprocessableEntity(c, "Validation failed", details)
}

var serviceErrors = []struct {
	err    error
	status int
	code   string
}{
	{packs.ErrNoPacksAvailable, http.StatusConflict, "NO_PACKS_AVAILABLE"},
	{packs.ErrDrawInProgress, http.StatusConflict, "DRAW_IN_PROGRESS"},
	{packs.ErrEmptyPool, http.StatusServiceUnavailable, "EMPTY_POOL"},
	{battle.ErrEmptyPool, http.StatusServiceUnavailable, "EMPTY_POOL"},
	{battle.ErrInvalidAttribute, http.StatusBadRequest, "INVALID_ATTRIBUTE"},
	{battle.ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION"},
	{battle.ErrNotFound, http.StatusNotFound, "BATTLE_NOT_FOUND"},
	{battle.ErrCardNotOwned, http.StatusForbidden, "CARD_NOT_OWNED"},
	{onboarding.ErrAlreadyOnboarded, http.StatusConflict, "ALREADY_ONBOARDED"},
	{onboarding.ErrInvalidProfile, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
	{database.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
}

// SendServiceError maps engine errors to status codes. Unknown errors
// are logged and hidden behind a 500.
func SendServiceError(c *fiber.Ctx, err error) error {
	for _, se := range serviceErrors {
		if errors.Is(err, se.err) {
			return SendError(c, se.status, se.code, err.Error(), nil)
		}
	}
	slog.Error("Request failed",
		slog.String("type", "http"),
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.Any("error", err))
	return SendInternalServerError(c, "Internal Server Error")
}

// GetIPAddress extracts the client IP address
func GetIPAddress(c *fiber.Ctx) string {
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := c.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.IP()
}

// GetUserAgent extracts the user agent
func GetUserAgent(c *fiber.Ctx) string {
	return c.Get("User-Agent")
}
