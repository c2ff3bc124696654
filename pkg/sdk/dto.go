package sdk

// ChatRequest is the request body for POST /chat
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the success response body for POST /chat
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ErrorResponse is the error response body for POST /chat
type ErrorResponse struct {
	Error string `json:"error"`
}
