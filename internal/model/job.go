package model

import "time"

// JobType distinguishes background job kinds.
type JobType string

const (
	JobExport JobType = "export"
	JobImport JobType = "import"
)

// JobStatus represents the server-side state of a background job.
type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobSucceeded JobStatus = "succeeded"
	JobFailed    JobStatus = "failed"
)

// String returns the string representation of the job status.
func (s JobStatus) String() string {
	return string(s)
}

// Terminal reports whether the job has finished, successfully or not.
func (s JobStatus) Terminal() bool {
	return s == JobSucceeded || s == JobFailed
}

// Job is a background import/export job. The client never runs these; it
// creates them and polls until the status turns terminal.
type Job struct {
	ID        string    `json:"id"`
	Type      JobType   `json:"type"`
	Resource  string    `json:"resource"`
	Status    JobStatus `json:"status"`
	Processed int       `json:"processed,omitempty"`
	Total     int       `json:"total,omitempty"`
	FileURL   string    `json:"file_url,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
