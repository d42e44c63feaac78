package main

import (
	"context"
	"fmt"
	"os"

	"github.com/groundswellhq/rolodex/internal/client"
	"github.com/groundswellhq/rolodex/internal/query"
	"github.com/spf13/cobra"
)

var companiesCmd = &cobra.Command{
	Use:     "companies",
	Short:   "Browse and manage companies",
	GroupID: "records",
}

var companiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List companies",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		filter := companyFilterFromFlags(cmd)
		page := paginationFromFlags(cmd)

		countParams := query.Build(filter, search)
		params := cloneValues(countParams)
		page.Apply(params)

		ctx := context.Background()
		resp, err := crm.ListCompanies(ctx, params)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		total, known := resolveCount(ctx, countParams, resp.HasCount, resp.Count, crm.CountCompanies)

		if jsonOutput {
			printJSON(resp.Records)
			return nil
		}
		printCompanyTable(resp.Records, total, known)
		printCursors(resp.NextCursor, resp.PrevCursor)
		return nil
	},
}

var companiesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		company, err := crm.GetCompany(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(company)
			return nil
		}
		printCompanyDetail(company)
		return nil
	},
}

var companiesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a company",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := companyUpsertFromFlags(cmd)
		company, err := crm.CreateCompany(context.Background(), req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		countCache.Clear()
		if jsonOutput {
			printJSON(company)
			return nil
		}
		fmt.Printf("Created company %s (%s)\n", company.ID, company.Name)
		return nil
	},
}

var companiesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := companyUpsertFromFlags(cmd)
		company, err := crm.UpdateCompany(context.Background(), args[0], req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		countCache.Clear()
		if jsonOutput {
			printJSON(company)
			return nil
		}
		fmt.Printf("Updated company %s\n", company.ID)
		return nil
	},
}

var companiesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := crm.DeleteCompany(context.Background(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		countCache.Clear()
		fmt.Printf("Deleted company %s\n", args[0])
		return nil
	},
}

func companyUpsertFromFlags(cmd *cobra.Command) *client.CompanyUpsert {
	f := cmd.Flags()
	req := &client.CompanyUpsert{}
	set := func(name string, dst **string) {
		if f.Changed(name) {
			v, _ := f.GetString(name)
			*dst = &v
		}
	}
	set("name", &req.Name)
	set("domain", &req.Domain)
	set("phone", &req.Phone)
	set("stage", &req.Stage)
	set("industry", &req.Industry)
	set("city", &req.City)
	set("state", &req.State)
	set("country", &req.Country)
	set("linkedin-url", &req.LinkedinURL)
	if f.Changed("employees") {
		v, _ := f.GetInt("employees")
		req.Employees = &v
	}
	if f.Changed("revenue") {
		v, _ := f.GetInt64("revenue")
		req.Revenue = &v
	}
	if f.Changed("founded-year") {
		v, _ := f.GetInt("founded-year")
		req.FoundedYear = &v
	}
	if f.Changed("keyword") {
		req.Keywords = listFlag(cmd, "keyword")
	}
	if f.Changed("technology") {
		req.Technologies = listFlag(cmd, "technology")
	}
	return req
}

func registerCompanyUpsertFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("name", "", "company name")
	f.String("domain", "", "primary domain")
	f.String("phone", "", "phone number")
	f.String("stage", "", "pipeline stage")
	f.String("industry", "", "industry")
	f.String("city", "", "city")
	f.String("state", "", "state")
	f.String("country", "", "country")
	f.String("linkedin-url", "", "LinkedIn company URL")
	f.Int("employees", 0, "headcount")
	f.Int64("revenue", 0, "annual revenue")
	f.Int("founded-year", 0, "founding year")
	f.StringSlice("keyword", nil, "keyword (repeatable)")
	f.StringSlice("technology", nil, "technology (repeatable)")
}

func init() {
	registerCompanyFilterFlags(companiesListCmd)
	registerSearchAndPagingFlags(companiesListCmd)
	registerCompanyUpsertFlags(companiesCreateCmd)
	registerCompanyUpsertFlags(companiesUpdateCmd)

	companiesCmd.AddCommand(companiesListCmd)
	companiesCmd.AddCommand(companiesShowCmd)
	companiesCmd.AddCommand(companiesCreateCmd)
	companiesCmd.AddCommand(companiesUpdateCmd)
	companiesCmd.AddCommand(companiesDeleteCmd)
}
