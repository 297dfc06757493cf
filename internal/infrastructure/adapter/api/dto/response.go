package dto

// Response is the envelope every endpoint answers with
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// OK wraps a successful payload
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKMessage wraps a successful operation that has no payload
func OKMessage(message string) Response {
	return Response{Success: true, Message: message}
}

// Fail wraps an error message with its stable code
func Fail(code int, message string) Response {
	return Response{Success: false, Error: message, Code: code}
}
