package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/groundswellhq/rolodex/internal/model"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:     "import <contacts|companies> <file.csv>",
	Short:   "Import records from a CSV file",
	GroupID: "data",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		resource, path := args[0], args[1]
		if resource != "contacts" && resource != "companies" {
			return fmt.Errorf("unknown resource %q (must be contacts or companies)", resource)
		}
		noWait, _ := cmd.Flags().GetBool("no-wait")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		job, err := crm.CreateImportJob(ctx, resource, filepath.Base(path), f)
		if err != nil {
			return fmt.Errorf("creating import job: %w", err)
		}
		fmt.Printf("import job %s created\n", job.ID)
		if noWait {
			return nil
		}

		job, err = waitForJob(ctx, job.ID)
		if err != nil {
			return err
		}
		if job.Status == model.JobFailed {
			return fmt.Errorf("import job %s failed: %s", job.ID, job.Error)
		}

		// Counts for every filter may have shifted under us.
		countCache.Clear()
		fmt.Printf("imported %d records into %s\n", job.Processed, resource)
		return nil
	},
}

func init() {
	importCmd.Flags().Bool("no-wait", false, "create the job and exit without waiting")
}
