package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/groundswellhq/rolodex/internal/model"
	"github.com/groundswellhq/rolodex/internal/selection"
	"github.com/groundswellhq/rolodex/internal/ui"
)

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

// cloneValues deep-copies query parameters so pagination can be applied
// to a copy while the filters-only original keys the count cache.
func cloneValues(v url.Values) url.Values {
	out := url.Values{}
	for key, vals := range v {
		out[key] = append([]string(nil), vals...)
	}
	return out
}

// resolveCount applies the count policy for one-shot lists: cached value
// first, then the count endpoint, then the page envelope's total, then
// unknown. The second return is false only when no trustworthy total
// exists (cursor mode with the count endpoint down).
func resolveCount(ctx context.Context, countParams url.Values, hasEnvelope bool, envelopeCount int, countFn func(context.Context, url.Values) (int, error)) (int, bool) {
	key := countParams.Encode()
	if n, ok := countCache.Get(key); ok {
		return n, true
	}
	if n, err := countFn(ctx, countParams); err == nil {
		countCache.Set(key, n)
		return n, true
	}
	if hasEnvelope {
		return envelopeCount, true
	}
	return 0, false
}

func printCursors(next, prev string) {
	if next == "" && prev == "" {
		return
	}
	if next != "" {
		fmt.Println(ui.RenderMuted("next:  --cursor " + next))
	}
	if prev != "" {
		fmt.Println(ui.RenderMuted("prev:  --cursor " + prev))
	}
}

func contactColumns() *selection.ColumnSet {
	cs := selection.NewColumnSet(selection.DefaultContactColumns)
	if path, err := columnsPath("contacts"); err == nil {
		if err := cs.Load(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	return cs
}

func companyColumns() *selection.ColumnSet {
	cs := selection.NewColumnSet(selection.DefaultCompanyColumns)
	if path, err := columnsPath("companies"); err == nil {
		if err := cs.Load(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	return cs
}

func printContactTable(contacts []model.Contact, total int, known bool) {
	cols := contactColumns().Visible()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.ToUpper(strings.Join(cols, "\t")))
	for i := range contacts {
		cells := make([]string, len(cols))
		for j, col := range cols {
			cells[j] = contactCell(&contacts[i], col)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
	fmt.Printf("\n%s contacts\n", ui.RenderCount(len(contacts), total, known))
}

// nameWidth shrinks the name column on narrow terminals so the other
// columns still fit.
func nameWidth() int {
	if ui.Width(120) < 100 {
		return 24
	}
	return 40
}

func contactCell(c *model.Contact, col string) string {
	switch col {
	case "name":
		return truncate(c.FullName(), nameWidth())
	case "title":
		return truncate(c.Title, 30)
	case "company":
		return truncate(c.Company, 30)
	case "email":
		return c.Email
	case "email_status":
		return ui.RenderEmailStatus(string(c.EmailStatus))
	case "stage":
		return string(c.Stage)
	case "seniority":
		return c.Seniority
	case "department":
		return c.Department
	case "industry":
		return c.Industry
	case "phone":
		return c.Phone
	case "city":
		return c.City
	case "country":
		return c.Country
	case "linkedin_url":
		return c.LinkedinURL
	case "last_contacted_at":
		if c.LastContactedAt == nil {
			return ""
		}
		return c.LastContactedAt.Format("2006-01-02")
	case "created_at":
		return c.CreatedAt.Format("2006-01-02")
	}
	return ""
}

func printCompanyTable(companies []model.Company, total int, known bool) {
	cols := companyColumns().Visible()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.ToUpper(strings.Join(cols, "\t")))
	for i := range companies {
		cells := make([]string, len(cols))
		for j, col := range cols {
			cells[j] = companyCell(&companies[i], col)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
	fmt.Printf("\n%s companies\n", ui.RenderCount(len(companies), total, known))
}

func companyCell(c *model.Company, col string) string {
	switch col {
	case "name":
		return truncate(c.Name, nameWidth())
	case "domain":
		return c.Domain
	case "industry":
		return c.Industry
	case "stage":
		return string(c.Stage)
	case "employees":
		if c.Employees == 0 {
			return ""
		}
		return strconv.Itoa(c.Employees)
	case "revenue":
		if c.Revenue == 0 {
			return ""
		}
		return strconv.FormatInt(c.Revenue, 10)
	case "founded_year":
		if c.FoundedYear == 0 {
			return ""
		}
		return strconv.Itoa(c.FoundedYear)
	case "city":
		return c.City
	case "country":
		return c.Country
	case "technologies":
		return truncate(strings.Join(c.Technologies, ", "), 40)
	case "created_at":
		return c.CreatedAt.Format("2006-01-02")
	}
	return ""
}

func printContactDetail(c *model.Contact) {
	fmt.Printf("ID:           %s\n", c.ID)
	fmt.Printf("Name:         %s\n", c.FullName())
	fmt.Printf("Title:        %s\n", c.Title)
	fmt.Printf("Company:      %s\n", c.Company)
	fmt.Printf("Email:        %s (%s)\n", c.Email, ui.RenderEmailStatus(string(c.EmailStatus)))
	fmt.Printf("Stage:        %s\n", c.Stage)
	if c.Seniority != "" {
		fmt.Printf("Seniority:    %s\n", c.Seniority)
	}
	if c.Department != "" {
		fmt.Printf("Department:   %s\n", c.Department)
	}
	if c.Industry != "" {
		fmt.Printf("Industry:     %s\n", c.Industry)
	}
	if len(c.Keywords) > 0 {
		fmt.Printf("Keywords:     %s\n", strings.Join(c.Keywords, ", "))
	}
	if c.City != "" || c.Country != "" {
		fmt.Printf("Location:     %s\n", strings.TrimPrefix(c.City+", "+c.Country, ", "))
	}
	if c.LinkedinURL != "" {
		fmt.Printf("LinkedIn:     %s\n", c.LinkedinURL)
	}
	if c.LastContactedAt != nil {
		fmt.Printf("Contacted:    %s\n", c.LastContactedAt.Format(time.RFC3339))
	}
	fmt.Printf("Created At:   %s\n", c.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated At:   %s\n", c.UpdatedAt.Format("2006-01-02 15:04:05"))
}

func printCompanyDetail(c *model.Company) {
	fmt.Printf("ID:           %s\n", c.ID)
	fmt.Printf("Name:         %s\n", c.Name)
	fmt.Printf("Domain:       %s\n", c.Domain)
	fmt.Printf("Stage:        %s\n", c.Stage)
	if c.Industry != "" {
		fmt.Printf("Industry:     %s\n", c.Industry)
	}
	if c.Employees > 0 {
		fmt.Printf("Employees:    %d\n", c.Employees)
	}
	if c.Revenue > 0 {
		fmt.Printf("Revenue:      %d\n", c.Revenue)
	}
	if c.FoundedYear > 0 {
		fmt.Printf("Founded:      %d\n", c.FoundedYear)
	}
	if len(c.Technologies) > 0 {
		fmt.Printf("Tech:         %s\n", strings.Join(c.Technologies, ", "))
	}
	if c.City != "" || c.Country != "" {
		fmt.Printf("Location:     %s\n", strings.TrimPrefix(c.City+", "+c.Country, ", "))
	}
	if c.LinkedinURL != "" {
		fmt.Printf("LinkedIn:     %s\n", c.LinkedinURL)
	}
	fmt.Printf("Created At:   %s\n", c.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated At:   %s\n", c.UpdatedAt.Format("2006-01-02 15:04:05"))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
