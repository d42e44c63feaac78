package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"time"

	"github.com/groundswellhq/rolodex/internal/model"
	"github.com/groundswellhq/rolodex/internal/query"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Export filtered records to a CSV file",
	GroupID: "data",
}

var exportContactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Export contacts matching a filter",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		params := query.Build(contactFilterFromFlags(cmd), search)
		return runExport(cmd, "contacts", params)
	},
}

var exportCompaniesCmd = &cobra.Command{
	Use:   "companies",
	Short: "Export companies matching a filter",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		params := query.Build(companyFilterFromFlags(cmd), search)
		return runExport(cmd, "companies", params)
	},
}

func runExport(cmd *cobra.Command, resource string, params url.Values) error {
	output, _ := cmd.Flags().GetString("output")
	noWait, _ := cmd.Flags().GetBool("no-wait")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	job, err := crm.CreateExportJob(ctx, resource, params)
	if err != nil {
		return fmt.Errorf("creating export job: %w", err)
	}
	fmt.Printf("export job %s created\n", job.ID)
	if noWait {
		return nil
	}

	job, err = waitForJob(ctx, job.ID)
	if err != nil {
		return err
	}
	if job.Status == model.JobFailed {
		return fmt.Errorf("export job %s failed: %s", job.ID, job.Error)
	}
	if job.FileURL == "" {
		return fmt.Errorf("export job %s finished without a file", job.ID)
	}

	if output == "" {
		output = fmt.Sprintf("%s-%s.csv", resource, time.Now().Format("2006-01-02"))
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := crm.DownloadFile(ctx, job.FileURL, f); err != nil {
		return fmt.Errorf("downloading export: %w", err)
	}
	fmt.Printf("wrote %s (%d records)\n", output, job.Processed)
	return nil
}

// waitForJob polls until the job reaches a terminal status or the context
// is canceled, reporting progress as it goes.
func waitForJob(ctx context.Context, id string) (*model.Job, error) {
	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
		job, err := crm.GetJob(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("polling job %s: %w", id, err)
		}
		if job.Total > 0 {
			fmt.Fprintf(os.Stderr, "\r%s: %d/%d", job.Status, job.Processed, job.Total)
		} else {
			fmt.Fprintf(os.Stderr, "\r%s", job.Status)
		}
		if job.Status.Terminal() {
			fmt.Fprintln(os.Stderr)
			return job, nil
		}
	}
}

func init() {
	for _, c := range []*cobra.Command{exportContactsCmd, exportCompaniesCmd} {
		c.Flags().String("search", "", "free-text search")
		c.Flags().String("output", "", "output file (default <resource>-<date>.csv)")
		c.Flags().Bool("no-wait", false, "create the job and exit without waiting")
	}
	registerContactFilterFlags(exportContactsCmd)
	registerCompanyFilterFlags(exportCompaniesCmd)
	exportCmd.AddCommand(exportContactsCmd, exportCompaniesCmd)
}
