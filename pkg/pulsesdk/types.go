package pulsesdk

import "time"

// ErrorResponse is the uniform JSON error body.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g. "invalid_request")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description,omitempty"`
}

// ProjectInfo is the public view of one project. The access token is only
// echoed on surfaces that already hold it (creation response, pro listing);
// the tracking view identifies the project by the token in the URL.
type ProjectInfo struct {
	ID              string    `json:"id"`
	AccessToken     string    `json:"access_token,omitempty"`
	ClientName      string    `json:"client_name"`
	Category        string    `json:"category"`
	ProgressPercent int       `json:"progress_percent"`
	StatusText      string    `json:"status_text"`
	DriveFolder     string    `json:"drive_folder,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// StepInfo is one milestone in a project's ordered template.
type StepInfo struct {
	Step        int        `json:"step"`
	Label       string     `json:"label"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// DocumentInfo describes one client-uploaded file.
type DocumentInfo struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateProjectRequest creates a project from a category's step template.
type CreateProjectRequest struct {
	// ClientName is the end client the project tracks (required)
	ClientName string `json:"client_name"`

	// BrokerEmail is the responsible professional (required)
	BrokerEmail string `json:"broker_email"`

	// PropertyName optionally seeds the access token slug
	PropertyName string `json:"property_name,omitempty"`

	// Category selects the step template ("real-estate", "training")
	Category string `json:"category"`

	// DriveFolder is an optional external document folder link shown on the
	// tracking page
	DriveFolder string `json:"drive_folder,omitempty"`
}

// CreateProjectResponse returns the created project; the access token is the
// piece the caller hands to the client.
type CreateProjectResponse struct {
	Project  ProjectInfo `json:"project"`
	Steps    []StepInfo  `json:"steps"`
	TrackURL string      `json:"track_url"`
}

// TrackResponse is the read-only tracking view behind one access token.
type TrackResponse struct {
	Project   ProjectInfo    `json:"project"`
	Steps     []StepInfo     `json:"steps"`
	Documents []DocumentInfo `json:"documents"`
}

// AdvanceResponse is the post-advance state, returned when the advance link
// is called with an Accept: application/json header.
type AdvanceResponse struct {
	Project ProjectInfo `json:"project"`
	Steps   []StepInfo  `json:"steps"`
}

// PortfolioResponse is the professional dashboard listing.
type PortfolioResponse struct {
	Projects []ProjectInfo `json:"projects"`
	Credits  int           `json:"credits"`
}

// GrantCreditsRequest tops up a professional's wallet.
type GrantCreditsRequest struct {
	BrokerEmail string `json:"broker_email"`
	Credits     int    `json:"credits"`
}

// ReminderOutcome is the per-recipient result of one reminder run.
type ReminderOutcome struct {
	Recipient string `json:"recipient"`
	Projects  int    `json:"projects"`
	OK        bool   `json:"ok"`
	Retried   bool   `json:"retried,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// RemindResponse summarizes one reminder run.
type RemindResponse struct {
	Recipients int               `json:"recipients"`
	Sent       int               `json:"sent"`
	Outcomes   []ReminderOutcome `json:"outcomes"`
}

// HealthResponse is returned by the livez and readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}
