package models

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ErrorResponse is the body written by the global error handler.
//
// Status is "fail" for client errors and "error" for server errors.
// Error carries the wrapped error chain and is only filled in
// development mode.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	// Status is "ok" when the datastore is ready and "degraded" otherwise.
	Status   string `json:"status"`
	Phase    string `json:"phase"`
	Database string `json:"database"`
	Version  string `json:"version,omitempty"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate"`
	BuildCommit string `json:"buildCommit"`
}
