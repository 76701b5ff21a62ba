package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Amounts travel as JSON numbers.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// APIResponse is the envelope of every response. Data is set on success, Error on failure.
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2024-06-01T09:30:00Z"`
}

// NewAPIResponse wraps data in a success envelope
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// MessageResponse is returned by operations that have nothing else to report
type MessageResponse struct {
	Message string `json:"message" example:"Password updated"`
}
