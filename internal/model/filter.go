package model

import (
	"strings"

	"github.com/groundswellhq/rolodex/internal/query"
)

// ContactFilter holds the full declared field set for contact list views.
// Every field is always present; "not set" is expressed in-band: empty
// string for text and range bounds, query.Unset for dropdowns, an empty
// list for multi-value fields. Consumers iterate Fields() and never probe
// for presence.
//
// Range bounds are string-encoded numbers (employeesMin) or ISO-8601
// datetimes (createdAfter); an empty string leaves that side unbounded.
type ContactFilter struct {
	FirstName   string
	LastName    string
	Title       string
	Company     string
	Email       string
	EmailStatus string // query.Unset when not set
	Status      string // query.Unset when not set; wire name "stage"
	City        string
	State       string
	Country     string
	LinkedinURL string

	Seniority    []string
	Department   []string
	Industry     []string
	Tags         []string // wire name "keywords"
	Technologies []string

	ExcludeTitles      []string
	ExcludeCompanies   []string
	ExcludeIndustries  []string
	ExcludeSeniorities []string
	ExcludeDepartments []string
	ExcludeTags        []string // wire name "exclude_keywords"
	ExcludeCities      []string

	EmployeesMin string
	EmployeesMax string
	RevenueMin   string
	RevenueMax   string

	CreatedAfter        string
	CreatedBefore       string
	UpdatedAfter        string
	UpdatedBefore       string
	LastContactedAfter  string
	LastContactedBefore string
}

// NewContactFilter returns a filter with every field at its unset value.
func NewContactFilter() ContactFilter {
	return ContactFilter{
		EmailStatus: query.Unset,
		Status:      query.Unset,
	}
}

// Fields enumerates the declared field set in declared order.
func (f ContactFilter) Fields() []query.Field {
	return []query.Field{
		{Name: "firstName", Value: f.FirstName},
		{Name: "lastName", Value: f.LastName},
		{Name: "title", Value: f.Title},
		{Name: "company", Value: f.Company},
		{Name: "email", Value: f.Email},
		{Name: "emailStatus", Value: f.EmailStatus},
		{Name: "status", Value: f.Status},
		{Name: "city", Value: f.City},
		{Name: "state", Value: f.State},
		{Name: "country", Value: f.Country},
		{Name: "linkedinURL", Value: f.LinkedinURL},
		{Name: "seniority", Values: f.Seniority},
		{Name: "department", Values: f.Department},
		{Name: "industry", Values: f.Industry},
		{Name: "tags", Values: f.Tags},
		{Name: "technologies", Values: f.Technologies},
		{Name: "excludeTitles", Values: f.ExcludeTitles},
		{Name: "excludeCompanies", Values: f.ExcludeCompanies},
		{Name: "excludeIndustries", Values: f.ExcludeIndustries},
		{Name: "excludeSeniorities", Values: f.ExcludeSeniorities},
		{Name: "excludeDepartments", Values: f.ExcludeDepartments},
		{Name: "excludeTags", Values: f.ExcludeTags},
		{Name: "excludeCities", Values: f.ExcludeCities},
		{Name: "employeesMin", Value: f.EmployeesMin},
		{Name: "employeesMax", Value: f.EmployeesMax},
		{Name: "revenueMin", Value: f.RevenueMin},
		{Name: "revenueMax", Value: f.RevenueMax},
		{Name: "createdAfter", Value: f.CreatedAfter},
		{Name: "createdBefore", Value: f.CreatedBefore},
		{Name: "updatedAfter", Value: f.UpdatedAfter},
		{Name: "updatedBefore", Value: f.UpdatedBefore},
		{Name: "lastContactedAfter", Value: f.LastContactedAfter},
		{Name: "lastContactedBefore", Value: f.LastContactedBefore},
	}
}

// CompanyFilter holds the full declared field set for company list views.
// The unset conventions are the same as ContactFilter's.
type CompanyFilter struct {
	Name    string
	Domain  string
	Phone   string
	Status  string // query.Unset when not set; wire name "stage"
	City    string
	State   string
	Country string

	Industry     []string
	Technologies []string
	Tags         []string // wire name "keywords"

	ExcludeIndustries   []string
	ExcludeDomains      []string
	ExcludeTechnologies []string

	EmployeesMin string
	EmployeesMax string
	RevenueMin   string
	RevenueMax   string
	FoundedMin   string
	FoundedMax   string

	CreatedAfter  string
	CreatedBefore string
	UpdatedAfter  string
	UpdatedBefore string
}

// NewCompanyFilter returns a filter with every field at its unset value.
func NewCompanyFilter() CompanyFilter {
	return CompanyFilter{Status: query.Unset}
}

// Fields enumerates the declared field set in declared order.
func (f CompanyFilter) Fields() []query.Field {
	return []query.Field{
		{Name: "name", Value: f.Name},
		{Name: "domain", Value: f.Domain},
		{Name: "phone", Value: f.Phone},
		{Name: "status", Value: f.Status},
		{Name: "city", Value: f.City},
		{Name: "state", Value: f.State},
		{Name: "country", Value: f.Country},
		{Name: "industry", Values: f.Industry},
		{Name: "technologies", Values: f.Technologies},
		{Name: "tags", Values: f.Tags},
		{Name: "excludeIndustries", Values: f.ExcludeIndustries},
		{Name: "excludeDomains", Values: f.ExcludeDomains},
		{Name: "excludeTechnologies", Values: f.ExcludeTechnologies},
		{Name: "employeesMin", Value: f.EmployeesMin},
		{Name: "employeesMax", Value: f.EmployeesMax},
		{Name: "revenueMin", Value: f.RevenueMin},
		{Name: "revenueMax", Value: f.RevenueMax},
		{Name: "foundedMin", Value: f.FoundedMin},
		{Name: "foundedMax", Value: f.FoundedMax},
		{Name: "createdAfter", Value: f.CreatedAfter},
		{Name: "createdBefore", Value: f.CreatedBefore},
		{Name: "updatedAfter", Value: f.UpdatedAfter},
		{Name: "updatedBefore", Value: f.UpdatedBefore},
	}
}

// AddValue appends v to a multi-value filter list, trimming whitespace and
// rejecting blanks and values already present. Duplicate enforcement lives
// here, at the point of insertion, not in the model or the query builder.
func AddValue(list []string, v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return list
	}
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
