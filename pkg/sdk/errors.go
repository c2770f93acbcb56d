package trustsearch

import "fmt"

// Error codes returned by the API.
const (
	CodeMissingQuery      = "MISSING_QUERY"
	CodeInvalidParameters = "INVALID_PARAMETERS"
	CodeInvalidFilters    = "INVALID_FILTERS"
	CodeInvalidLimit      = "INVALID_LIMIT"
	CodeValidationError   = "VALIDATION_ERROR"
	CodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	CodeInternalError     = "INTERNAL_ERROR"
)

// APIError is a structured error returned by the trustsearch API.
// Use errors.As to recover it and inspect the Code.
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
	RequestID  string `json:"requestId"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("trustsearch: %s (%s, request %s)", e.Message, e.Code, e.RequestID)
}
