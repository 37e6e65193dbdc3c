package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler    authHandler
	projectHandler projectHandler
	resumeHandler  resumeHandler
	uploadHandler  uploadHandler
	contactHandler contactHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Internal Server Error"`
	Field   string `json:"field,omitempty" example:"title"`
}
