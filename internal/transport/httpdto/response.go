package httpdto

// ErrorResponse is the uniform error payload. Registration failures carry
// the full list of violated rules in Errors; everything else uses Error.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func NewErrorResponse(err string) ErrorResponse {
	return ErrorResponse{Success: false, Error: err}
}

func NewValidationErrorResponse(errs []string) ErrorResponse {
	return ErrorResponse{Success: false, Errors: errs}
}
