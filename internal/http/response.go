package http

// Response es el sobre uniforme de todas las respuestas de la API.
type Response struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
}
