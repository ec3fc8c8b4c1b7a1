package server

import (
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/vizigr0u/sugarcube/pkg/ingredient"
	"github.com/vizigr0u/sugarcube/pkg/quantity"
	"github.com/vizigr0u/sugarcube/pkg/unit"
)

// ErrorResponse is the JSON error envelope returned by all API endpoints.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// HealthResponse represents health and readiness check responses.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason,omitempty"`
}

// ConvertResponse is the payload returned by /v1/convert.
type ConvertResponse struct {
	Request ConvertRequest    `json:"request"`
	Result  quantity.Quantity `json:"result"`
}

// ConvertRequest echoes the parsed query parameters of a conversion call.
type ConvertRequest struct {
	Amount     float64 `json:"amount"`
	From       string  `json:"from"`
	To         string  `json:"to"`
	Ingredient string  `json:"ingredient,omitempty"`
}

// UnitsResponse is the payload returned by /v1/units.
type UnitsResponse struct {
	Units []unit.Unit `json:"units"`
}

// IngredientsResponse is the payload returned by /v1/ingredients.
type IngredientsResponse struct {
	Ingredients []ingredient.Ingredient `json:"ingredients"`
}

// Config holds server configuration.
type Config struct {
	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Logging
	LogLevel slog.Level
}
