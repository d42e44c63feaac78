package model

import "time"

// Company is an organization record as returned by the CRM API.
type Company struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Domain       string   `json:"domain,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Stage        Stage    `json:"stage,omitempty"`
	Industry     string   `json:"industry,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Employees    int      `json:"employees,omitempty"`
	Revenue      int64    `json:"revenue,omitempty"`
	FoundedYear  int      `json:"founded_year,omitempty"`
	City         string   `json:"city,omitempty"`
	State        string   `json:"state,omitempty"`
	Country      string   `json:"country,omitempty"`
	LinkedinURL  string   `json:"linkedin_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
