package dto

// DocumentRequest is the body of both document-generation endpoints.
// All three fields are required; dob uses the YYYY-MM-DD format.
type DocumentRequest struct {
	Name           string `json:"name" example:"Asha Kumar"`
	RegistrationID string `json:"regId" example:"NAF-2024-001"`
	DateOfBirth    string `json:"dob" example:"2001-05-10"`
}

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON body returned on any failure. Internal detail is
// logged server-side; only the short message reaches the client.
type ErrorResponse struct {
	Message string `json:"message" example:"Student not found. Please verify your credentials."`
}
