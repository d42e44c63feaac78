package main

import (
	"github.com/groundswellhq/rolodex/internal/model"
	"github.com/spf13/cobra"
)

// registerContactFilterFlags declares the full contact filter surface on a
// command. Flag names mirror the UI field names, kebab-cased.
func registerContactFilterFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("first-name", "", "filter by first name (substring)")
	f.String("last-name", "", "filter by last name (substring)")
	f.String("title", "", "filter by job title (substring)")
	f.String("company", "", "filter by company name (substring)")
	f.String("email", "", "filter by email (substring)")
	f.String("email-status", "", "filter by email status (verified, unverified, bounced, catch_all)")
	f.String("status", "", "filter by pipeline stage")
	f.String("city", "", "filter by city")
	f.String("state", "", "filter by state")
	f.String("country", "", "filter by country")
	f.String("linkedin-url", "", "filter by LinkedIn URL")
	f.StringSlice("seniority", nil, "filter by seniority (repeatable)")
	f.StringSlice("department", nil, "filter by department (repeatable)")
	f.StringSlice("industry", nil, "filter by industry (repeatable)")
	f.StringSlice("tag", nil, "filter by tag (repeatable)")
	f.StringSlice("technology", nil, "filter by technology (repeatable)")
	f.StringSlice("exclude-title", nil, "exclude job titles (repeatable)")
	f.StringSlice("exclude-company", nil, "exclude companies (repeatable)")
	f.StringSlice("exclude-industry", nil, "exclude industries (repeatable)")
	f.StringSlice("exclude-seniority", nil, "exclude seniorities (repeatable)")
	f.StringSlice("exclude-department", nil, "exclude departments (repeatable)")
	f.StringSlice("exclude-tag", nil, "exclude tags (repeatable)")
	f.StringSlice("exclude-city", nil, "exclude cities (repeatable)")
	f.String("employees-min", "", "minimum company headcount")
	f.String("employees-max", "", "maximum company headcount")
	f.String("revenue-min", "", "minimum company revenue")
	f.String("revenue-max", "", "maximum company revenue")
	f.String("created-after", "", "created after (ISO-8601)")
	f.String("created-before", "", "created before (ISO-8601)")
	f.String("updated-after", "", "updated after (ISO-8601)")
	f.String("updated-before", "", "updated before (ISO-8601)")
	f.String("last-contacted-after", "", "last contacted after (ISO-8601)")
	f.String("last-contacted-before", "", "last contacted before (ISO-8601)")
}

// contactFilterFromFlags builds a total filter from whatever flags were set.
func contactFilterFromFlags(cmd *cobra.Command) model.ContactFilter {
	f := cmd.Flags()
	str := func(name string) string { v, _ := f.GetString(name); return v }
	filter := model.NewContactFilter()

	filter.FirstName = str("first-name")
	filter.LastName = str("last-name")
	filter.Title = str("title")
	filter.Company = str("company")
	filter.Email = str("email")
	if v := str("email-status"); v != "" {
		filter.EmailStatus = v
	}
	if v := str("status"); v != "" {
		filter.Status = v
	}
	filter.City = str("city")
	filter.State = str("state")
	filter.Country = str("country")
	filter.LinkedinURL = str("linkedin-url")

	filter.Seniority = listFlag(cmd, "seniority")
	filter.Department = listFlag(cmd, "department")
	filter.Industry = listFlag(cmd, "industry")
	filter.Tags = listFlag(cmd, "tag")
	filter.Technologies = listFlag(cmd, "technology")
	filter.ExcludeTitles = listFlag(cmd, "exclude-title")
	filter.ExcludeCompanies = listFlag(cmd, "exclude-company")
	filter.ExcludeIndustries = listFlag(cmd, "exclude-industry")
	filter.ExcludeSeniorities = listFlag(cmd, "exclude-seniority")
	filter.ExcludeDepartments = listFlag(cmd, "exclude-department")
	filter.ExcludeTags = listFlag(cmd, "exclude-tag")
	filter.ExcludeCities = listFlag(cmd, "exclude-city")

	filter.EmployeesMin = str("employees-min")
	filter.EmployeesMax = str("employees-max")
	filter.RevenueMin = str("revenue-min")
	filter.RevenueMax = str("revenue-max")
	filter.CreatedAfter = str("created-after")
	filter.CreatedBefore = str("created-before")
	filter.UpdatedAfter = str("updated-after")
	filter.UpdatedBefore = str("updated-before")
	filter.LastContactedAfter = str("last-contacted-after")
	filter.LastContactedBefore = str("last-contacted-before")

	return filter
}

// registerCompanyFilterFlags declares the company filter surface.
func registerCompanyFilterFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("name", "", "filter by company name (substring)")
	f.String("domain", "", "filter by domain (substring)")
	f.String("phone", "", "filter by phone")
	f.String("status", "", "filter by pipeline stage")
	f.String("city", "", "filter by city")
	f.String("state", "", "filter by state")
	f.String("country", "", "filter by country")
	f.StringSlice("industry", nil, "filter by industry (repeatable)")
	f.StringSlice("technology", nil, "filter by technology (repeatable)")
	f.StringSlice("tag", nil, "filter by tag (repeatable)")
	f.StringSlice("exclude-industry", nil, "exclude industries (repeatable)")
	f.StringSlice("exclude-domain", nil, "exclude domains (repeatable)")
	f.StringSlice("exclude-technology", nil, "exclude technologies (repeatable)")
	f.String("employees-min", "", "minimum headcount")
	f.String("employees-max", "", "maximum headcount")
	f.String("revenue-min", "", "minimum revenue")
	f.String("revenue-max", "", "maximum revenue")
	f.String("founded-min", "", "founded no earlier than (year)")
	f.String("founded-max", "", "founded no later than (year)")
	f.String("created-after", "", "created after (ISO-8601)")
	f.String("created-before", "", "created before (ISO-8601)")
	f.String("updated-after", "", "updated after (ISO-8601)")
	f.String("updated-before", "", "updated before (ISO-8601)")
}

// companyFilterFromFlags builds a total filter from whatever flags were set.
func companyFilterFromFlags(cmd *cobra.Command) model.CompanyFilter {
	f := cmd.Flags()
	str := func(name string) string { v, _ := f.GetString(name); return v }
	filter := model.NewCompanyFilter()

	filter.Name = str("name")
	filter.Domain = str("domain")
	filter.Phone = str("phone")
	if v := str("status"); v != "" {
		filter.Status = v
	}
	filter.City = str("city")
	filter.State = str("state")
	filter.Country = str("country")

	filter.Industry = listFlag(cmd, "industry")
	filter.Technologies = listFlag(cmd, "technology")
	filter.Tags = listFlag(cmd, "tag")
	filter.ExcludeIndustries = listFlag(cmd, "exclude-industry")
	filter.ExcludeDomains = listFlag(cmd, "exclude-domain")
	filter.ExcludeTechnologies = listFlag(cmd, "exclude-technology")

	filter.EmployeesMin = str("employees-min")
	filter.EmployeesMax = str("employees-max")
	filter.RevenueMin = str("revenue-min")
	filter.RevenueMax = str("revenue-max")
	filter.FoundedMin = str("founded-min")
	filter.FoundedMax = str("founded-max")
	filter.CreatedAfter = str("created-after")
	filter.CreatedBefore = str("created-before")
	filter.UpdatedAfter = str("updated-after")
	filter.UpdatedBefore = str("updated-before")

	return filter
}

// listFlag reads a repeatable flag through model.AddValue so duplicates
// are rejected at insertion, matching the UI's behavior.
func listFlag(cmd *cobra.Command, name string) []string {
	raw, _ := cmd.Flags().GetStringSlice(name)
	var out []string
	for _, v := range raw {
		out = model.AddValue(out, v)
	}
	return out
}
