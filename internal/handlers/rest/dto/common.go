package dto

type ErrorResponse struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
