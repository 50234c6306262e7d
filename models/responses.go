package models

// SuccessResponse is the envelope every successful API answer uses.
type SuccessResponse struct {
	Status  string         `json:"status"`
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// ErrorResponse is the envelope every failed API answer uses.
type ErrorResponse struct {
	Status  string         `json:"status"`
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthResponse answers the liveness probe.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewSuccessResponse(code int, message string, data map[string]any) SuccessResponse {
	return SuccessResponse{Status: "success", Code: code, Message: message, Data: data}
}

func NewErrorResponse(code int, message string, details map[string]any) ErrorResponse {
	return ErrorResponse{Status: "error", Code: code, Message: message, Details: details}
}
