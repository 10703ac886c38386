package models

import "fmt"

// ErrorDetail is a single issue within an ErrorResponse
type ErrorDetail struct {
	Field       string `json:"field,omitempty"`
	Value       string `json:"value,omitempty"`
	Location    string `json:"location,omitempty"`
	Issue       string `json:"issue,omitempty"`
	Description string `json:"description,omitempty"`
}

// ErrorResponse is the structured error body PayPal returns with a non-2xx
// status. It is surfaced to callers as a distinct error type so provider
// rejections can be told apart from transport failures with errors.As.
type ErrorResponse struct {
	Name    string            `json:"name" validate:"required"`
	Message string            `json:"message"`
	DebugID string            `json:"debug_id,omitempty"`
	Details []ErrorDetail     `json:"details,omitempty"`
	Links   []LinkDescription `json:"links,omitempty"`

	// StatusCode carries the HTTP status of the response; it is not part of
	// the error body itself.
	StatusCode int `json:"-"`
}

// Error satisfies the error interface
func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("error status [%v] back from PayPal: [%s: %s]", e.StatusCode, e.Name, e.Message)
}
