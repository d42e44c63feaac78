package model

import "time"

// EmailStatus describes the deliverability state of a contact's email address.
type EmailStatus string

const (
	EmailVerified   EmailStatus = "verified"
	EmailUnverified EmailStatus = "unverified"
	EmailBounced    EmailStatus = "bounced"
	EmailCatchAll   EmailStatus = "catch_all"
)

// String returns the string representation of the email status.
func (s EmailStatus) String() string {
	return string(s)
}

// IsValid checks whether the email status is a known value.
func (s EmailStatus) IsValid() bool {
	switch s {
	case EmailVerified, EmailUnverified, EmailBounced, EmailCatchAll:
		return true
	}
	return false
}

// Stage represents where a record sits in the pipeline.
// Well-known constants are provided below, but stages are configurable
// server-side; custom values are valid.
type Stage string

const (
	StageLead        Stage = "lead"
	StageProspect    Stage = "prospect"
	StageEngaged     Stage = "engaged"
	StageCustomer    Stage = "customer"
	StageChurned     Stage = "churned"
	StageUnqualified Stage = "unqualified"
)

// String returns the string representation of the stage.
func (s Stage) String() string {
	return string(s)
}

// Contact is a person record as returned by the CRM API.
type Contact struct {
	ID          string      `json:"id"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Title       string      `json:"title,omitempty"`
	Seniority   string      `json:"seniority,omitempty"`
	Department  string      `json:"department,omitempty"`
	Company     string      `json:"company,omitempty"`
	CompanyID   string      `json:"company_id,omitempty"`
	Email       string      `json:"email,omitempty"`
	EmailStatus EmailStatus `json:"email_status,omitempty"`
	Phone       string      `json:"phone,omitempty"`
	Stage       Stage       `json:"stage,omitempty"`
	Industry    string      `json:"industry,omitempty"`
	Keywords    []string    `json:"keywords,omitempty"`
	City        string      `json:"city,omitempty"`
	State       string      `json:"state,omitempty"`
	Country     string      `json:"country,omitempty"`
	LinkedinURL string      `json:"linkedin_url,omitempty"`

	LastContactedAt *time.Time `json:"last_contacted_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// FullName returns the display name for a contact.
func (c *Contact) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
