// Package client provides a typed interface to the CRM REST API and an
// HTTP/JSON implementation of it.
//
// The client owns the wire contract only: paths, query serialization,
// envelope decoding and the error taxonomy. Filter state, pagination
// strategy and count caching live above it (internal/query,
// internal/pagination, internal/list); retry and timeout policy live
// below it, in the injected *http.Client.
package client

import (
	"context"
	"io"
	"net/url"

	"github.com/groundswellhq/rolodex/internal/model"
)

// CRMClient is the interface all rx commands use to talk to the CRM
// service. It is implemented by HTTPClient and can be faked in tests.
type CRMClient interface {
	// Contacts
	ListContacts(ctx context.Context, params url.Values) (*Page[model.Contact], error)
	CountContacts(ctx context.Context, params url.Values) (int, error)
	GetContact(ctx context.Context, id string) (*model.Contact, error)
	CreateContact(ctx context.Context, req *ContactUpsert) (*model.Contact, error)
	UpdateContact(ctx context.Context, id string, req *ContactUpsert) (*model.Contact, error)
	DeleteContact(ctx context.Context, id string) error
	GetContactByLinkedin(ctx context.Context, linkedinURL string) (*model.Contact, error)

	// Companies
	ListCompanies(ctx context.Context, params url.Values) (*Page[model.Company], error)
	CountCompanies(ctx context.Context, params url.Values) (int, error)
	GetCompany(ctx context.Context, id string) (*model.Company, error)
	CreateCompany(ctx context.Context, req *CompanyUpsert) (*model.Company, error)
	UpdateCompany(ctx context.Context, id string, req *CompanyUpsert) (*model.Company, error)
	DeleteCompany(ctx context.Context, id string) error
	GetCompanyByLinkedin(ctx context.Context, linkedinURL string) (*model.Company, error)

	// Lookups (typeahead value lists; each endpoint declares its display field)
	LookupValues(ctx context.Context, endpoint, search string) ([]string, error)

	// Background jobs (created server-side; the client only polls)
	CreateExportJob(ctx context.Context, resource string, params url.Values) (*model.Job, error)
	CreateImportJob(ctx context.Context, resource, filename string, data io.Reader) (*model.Job, error)
	GetJob(ctx context.Context, id string) (*model.Job, error)
	DownloadFile(ctx context.Context, fileURL string, w io.Writer) error

	// Lifecycle
	Close() error
}

// ContactUpsert holds parameters for creating or updating a contact.
// Nil pointer fields mean "don't change" on update.
type ContactUpsert struct {
	FirstName   *string  `json:"first_name,omitempty"`
	LastName    *string  `json:"last_name,omitempty"`
	Title       *string  `json:"title,omitempty"`
	Seniority   *string  `json:"seniority,omitempty"`
	Department  *string  `json:"department,omitempty"`
	Company     *string  `json:"company,omitempty"`
	CompanyID   *string  `json:"company_id,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Stage       *string  `json:"stage,omitempty"`
	Industry    *string  `json:"industry,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	City        *string  `json:"city,omitempty"`
	State       *string  `json:"state,omitempty"`
	Country     *string  `json:"country,omitempty"`
	LinkedinURL *string  `json:"linkedin_url,omitempty"`
}

// CompanyUpsert holds parameters for creating or updating a company.
// Nil pointer fields mean "don't change" on update.
type CompanyUpsert struct {
	Name         *string  `json:"name,omitempty"`
	Domain       *string  `json:"domain,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	Stage        *string  `json:"stage,omitempty"`
	Industry     *string  `json:"industry,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Employees    *int     `json:"employees,omitempty"`
	Revenue      *int64   `json:"revenue,omitempty"`
	FoundedYear  *int     `json:"founded_year,omitempty"`
	City         *string  `json:"city,omitempty"`
	State        *string  `json:"state,omitempty"`
	Country      *string  `json:"country,omitempty"`
	LinkedinURL  *string  `json:"linkedin_url,omitempty"`
}
