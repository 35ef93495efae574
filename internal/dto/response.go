package dto

// APIResponse is the envelope for every successful response.
type APIResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorResponse is the envelope for every failed response.
type ErrorResponse struct {
	Error      bool   `json:"error" example:"true"`
	Message    string `json:"message" example:"Transaction not found"`
	StatusCode int    `json:"statusCode" example:"404"`
}

// NewAPIResponse wraps data in a success envelope.
func NewAPIResponse(message string, data any) APIResponse {
	return APIResponse{Error: false, Message: message, Data: data}
}

// NewErrorResponse builds an error envelope.
func NewErrorResponse(statusCode int, message string) ErrorResponse {
	return ErrorResponse{Error: true, Message: message, StatusCode: statusCode}
}
