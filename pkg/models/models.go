package models

// ErrorResponse is the JSON body returned for every error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries a freshly issued JWT
type TokenResponse struct {
	Token string `json:"token"`
}

// CreateExperimentRequest represents an experiment creation request
type CreateExperimentRequest struct {
	Name string `json:"name" validate:"required,max=128"`
}

// CreateExposureRequest represents an exposure tracking call
type CreateExposureRequest struct {
	Experiment string `json:"experiment" validate:"required,max=128"`
	Subject    string `json:"subject" validate:"required,max=128"`
	Cohort     string `json:"cohort" validate:"required,max=128"`
	Scope      string `json:"scope" validate:"required,oneof=production staging"`
}

// CreateConversionRequest represents a conversion tracking call
type CreateConversionRequest struct {
	Experiment string   `json:"experiment" validate:"required,max=128"`
	Subject    string   `json:"subject" validate:"required,max=128"`
	Scope      string   `json:"scope" validate:"required,oneof=production staging"`
	Value      *float64 `json:"value,omitempty"`
}

// RunResultRequest represents a result computation request
type RunResultRequest struct {
	Experiment string `json:"experiment" validate:"required,max=128"`
	Scope      string `json:"scope" validate:"required,oneof=production staging"`
}
