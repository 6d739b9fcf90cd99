package dto

import "time"

// ErrorResponse is the standard JSON body returned on failures.
//
// Fields:
//   - Message: human readable summary.
//   - ErrorDetails: underlying error text, omitted when there is none.
//   - Timestamp: moment the error response was built (UTC).
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid startDate format, expected YYYY-MM-DD"`
	ErrorDetails string    `json:"error,omitempty" example:"parsing time \"2024/01/01\""`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so responses can travel through c.Error.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse. err may be nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
