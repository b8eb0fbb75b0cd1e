package dto

// ErrorResponse is the wire shape of every failure response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// NewErrorResponse creates an error response with the given user-facing message.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// WithDetails attaches diagnostic details to the error response.
func (e ErrorResponse) WithDetails(details string) ErrorResponse {
	e.Details = details
	return e
}
