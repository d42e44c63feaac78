package main

import (
	"fmt"
	"os"

	"github.com/groundswellhq/rolodex/internal/client"
	"github.com/groundswellhq/rolodex/internal/config"
	"github.com/groundswellhq/rolodex/internal/countcache"
	"github.com/groundswellhq/rolodex/internal/ui"
	"github.com/spf13/cobra"
)

var (
	apiURL     string
	apiToken   string
	jsonOutput bool

	cfg        *config.Config
	crm        client.CRMClient
	countCache *countcache.Cache
)

func defaultAPIURL() string {
	if s := os.Getenv("ROLODEX_API_URL"); s != "" {
		return s
	}
	if u := activeRemoteURL(); u != "" {
		return u
	}
	return "http://localhost:8000"
}

var rootCmd = &cobra.Command{
	Use:   "rx <command>",
	Short: "CLI client for the rolodex CRM service",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if apiURL != "" {
			cfg.APIURL = apiURL
		}
		token := apiToken
		if token == "" {
			token = cfg.APIToken
		}
		if token == "" {
			token = activeRemoteToken()
		}
		if cfg.NATSURL == "" {
			cfg.NATSURL = activeRemoteNATSURL()
		}
		crm = client.NewHTTPClient(cfg.APIURL, token)
		countCache = countcache.New(countcache.WithTTL(cfg.CountTTL))
		if !ui.ShouldUseColor() {
			ui.ForceNoColor()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if crm != nil {
			crm.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", defaultAPIURL(), "CRM API base URL")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", "", "bearer token (overrides env and remote profile)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.AddGroup(
		&cobra.Group{ID: "records", Title: "Records:"},
		&cobra.Group{ID: "data", Title: "Data transfer:"},
		&cobra.Group{ID: "system", Title: "System:"},
	)

	cobra.EnableCommandSorting = false

	rootCmd.AddCommand(contactsCmd)
	rootCmd.AddCommand(companiesCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(columnsCmd)
	rootCmd.AddCommand(remoteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
