// Package web provides HTTP request and response types for the settings API.
package web

// CreateProfileRequest represents the request body for creating a new profile.
type CreateProfileRequest struct {
	Name     string `json:"name"     validate:"required,min=1"`
	IsActive bool   `json:"isActive"`
}

// CreateTargetRequest represents the request body for adding a target to a profile.
type CreateTargetRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

// GlobalActiveRequest toggles the process-wide automation switch.
// Active is a pointer so a missing field is rejected instead of read as false.
type GlobalActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type GlobalActiveResponse struct {
	Active bool `json:"active"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
