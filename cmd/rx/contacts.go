package main

import (
	"context"
	"fmt"
	"os"

	"github.com/groundswellhq/rolodex/internal/client"
	"github.com/groundswellhq/rolodex/internal/pagination"
	"github.com/groundswellhq/rolodex/internal/query"
	"github.com/spf13/cobra"
)

var contactsCmd = &cobra.Command{
	Use:     "contacts",
	Short:   "Browse and manage contacts",
	GroupID: "records",
}

var contactsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		filter := contactFilterFromFlags(cmd)
		page := paginationFromFlags(cmd)

		countParams := query.Build(filter, search)
		params := cloneValues(countParams)
		page.Apply(params)

		ctx := context.Background()
		resp, err := crm.ListContacts(ctx, params)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		total, known := resolveCount(ctx, countParams, resp.HasCount, resp.Count, crm.CountContacts)

		if jsonOutput {
			printJSON(resp.Records)
			return nil
		}
		printContactTable(resp.Records, total, known)
		printCursors(resp.NextCursor, resp.PrevCursor)
		return nil
	},
}

var contactsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contact, err := crm.GetContact(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(contact)
			return nil
		}
		printContactDetail(contact)
		return nil
	},
}

var contactsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a contact",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := contactUpsertFromFlags(cmd)
		contact, err := crm.CreateContact(context.Background(), req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		countCache.Clear()
		if jsonOutput {
			printJSON(contact)
			return nil
		}
		fmt.Printf("Created contact %s (%s)\n", contact.ID, contact.FullName())
		return nil
	},
}

var contactsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := contactUpsertFromFlags(cmd)
		contact, err := crm.UpdateContact(context.Background(), args[0], req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		countCache.Clear()
		if jsonOutput {
			printJSON(contact)
			return nil
		}
		fmt.Printf("Updated contact %s\n", contact.ID)
		return nil
	},
}

var contactsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := crm.DeleteContact(context.Background(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		countCache.Clear()
		fmt.Printf("Deleted contact %s\n", args[0])
		return nil
	},
}

// contactUpsertFromFlags builds an upsert from only the flags actually
// set, so updates leave untouched fields alone.
func contactUpsertFromFlags(cmd *cobra.Command) *client.ContactUpsert {
	f := cmd.Flags()
	req := &client.ContactUpsert{}
	set := func(name string, dst **string) {
		if f.Changed(name) {
			v, _ := f.GetString(name)
			*dst = &v
		}
	}
	set("first-name", &req.FirstName)
	set("last-name", &req.LastName)
	set("title", &req.Title)
	set("seniority", &req.Seniority)
	set("department", &req.Department)
	set("company", &req.Company)
	set("company-id", &req.CompanyID)
	set("email", &req.Email)
	set("phone", &req.Phone)
	set("stage", &req.Stage)
	set("industry", &req.Industry)
	set("city", &req.City)
	set("state", &req.State)
	set("country", &req.Country)
	set("linkedin-url", &req.LinkedinURL)
	if f.Changed("keyword") {
		req.Keywords = listFlag(cmd, "keyword")
	}
	return req
}

func registerContactUpsertFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("first-name", "", "first name")
	f.String("last-name", "", "last name")
	f.String("title", "", "job title")
	f.String("seniority", "", "seniority")
	f.String("department", "", "department")
	f.String("company", "", "company name")
	f.String("company-id", "", "company record ID")
	f.String("email", "", "email address")
	f.String("phone", "", "phone number")
	f.String("stage", "", "pipeline stage")
	f.String("industry", "", "industry")
	f.String("city", "", "city")
	f.String("state", "", "state")
	f.String("country", "", "country")
	f.String("linkedin-url", "", "LinkedIn profile URL")
	f.StringSlice("keyword", nil, "keyword (repeatable)")
}

func init() {
	registerContactFilterFlags(contactsListCmd)
	registerSearchAndPagingFlags(contactsListCmd)
	registerContactUpsertFlags(contactsCreateCmd)
	registerContactUpsertFlags(contactsUpdateCmd)

	contactsCmd.AddCommand(contactsListCmd)
	contactsCmd.AddCommand(contactsShowCmd)
	contactsCmd.AddCommand(contactsCreateCmd)
	contactsCmd.AddCommand(contactsUpdateCmd)
	contactsCmd.AddCommand(contactsDeleteCmd)
}

// registerSearchAndPagingFlags declares the shared list-view flags.
func registerSearchAndPagingFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("search", "", "free-text search")
	f.Int("page-size", 0, "records per page (default from config)")
	f.String("cursor", "", "opaque cursor token from a previous page")
	f.Int("offset", 0, "numeric offset (only with --sort)")
	f.String("sort", "", "sort column (switches to offset pagination)")
	f.Bool("desc", false, "sort descending (only with --sort)")
}

// paginationFromFlags assembles pagination state for a one-shot list.
func paginationFromFlags(cmd *cobra.Command) pagination.State {
	f := cmd.Flags()
	size, _ := f.GetInt("page-size")
	if size <= 0 {
		size = cfg.PageSize
	}
	st := pagination.NewState(size)

	sortCol, _ := f.GetString("sort")
	if sortCol != "" {
		st.SortColumn = sortCol
		st.SortDir = pagination.Asc
		if desc, _ := f.GetBool("desc"); desc {
			st.SortDir = pagination.Desc
		}
		st.Offset, _ = f.GetInt("offset")
		return st
	}
	st.Cursor, _ = f.GetString("cursor")
	return st
}
