package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/groundswellhq/rolodex/internal/client"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:     "lookup",
	Short:   "Query typeahead value lists and LinkedIn lookups",
	GroupID: "records",
}

var lookupValuesCmd = &cobra.Command{
	Use:   "values <endpoint>",
	Short: "List values from a typeahead endpoint",
	Long: "List values from a typeahead endpoint.\n\nEndpoints: " +
		strings.Join(sortedLookupEndpoints(), ", "),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		values, err := crm.LookupValues(context.Background(), args[0], search)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if jsonOutput {
			printJSON(values)
			return nil
		}
		for _, v := range values {
			fmt.Println(v)
		}
		return nil
	},
}

var lookupLinkedinCmd = &cobra.Command{
	Use:   "linkedin <url>",
	Short: "Find the record behind a LinkedIn URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resource, _ := cmd.Flags().GetString("resource")
		ctx := context.Background()
		switch resource {
		case "contacts":
			contact, err := crm.GetContactByLinkedin(ctx, args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if jsonOutput {
				printJSON(contact)
			} else {
				printContactDetail(contact)
			}
		case "companies":
			company, err := crm.GetCompanyByLinkedin(ctx, args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if jsonOutput {
				printJSON(company)
			} else {
				printCompanyDetail(company)
			}
		default:
			return fmt.Errorf("unknown resource %q (must be contacts or companies)", resource)
		}
		return nil
	},
}

func sortedLookupEndpoints() []string {
	names := client.LookupEndpoints()
	sort.Strings(names)
	return names
}

func init() {
	lookupValuesCmd.Flags().String("search", "", "narrow values by prefix")
	lookupLinkedinCmd.Flags().String("resource", "contacts", "record type (contacts or companies)")

	lookupCmd.AddCommand(lookupValuesCmd)
	lookupCmd.AddCommand(lookupLinkedinCmd)
}
