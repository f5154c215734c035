package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/internal/policy"
)

var policyOn string

var policyCmd = &cobra.Command{
	Use:   "policy <document-type> [issue-date]",
	Short: "Show a document's validity window",
	Long: `Policy resolves the validity window for a document type. With an issue
date it also reports whether the document is still valid on the
reference day (today unless --on is given). Issue dates accept the same
formats as the date comparator: DD.MM.YYYY and YYYY-MM-DD.

Examples:
  fieldrecon policy power_of_attorney
  fieldrecon policy salary_certificate 15.06.2025
  fieldrecon policy salary_certificate 15.06.2025 --on 2025-07-01`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPolicy,
}

func init() {
	rootCmd.AddCommand(policyCmd)

	policyCmd.Flags().StringVar(&policyOn, "on", "", "reference day, YYYY-MM-DD (default today)")
}

func runPolicy(cmd *cobra.Command, args []string) error {
	table, err := policy.Load()
	if err != nil {
		return err
	}

	docType := args[0]
	p := table.Lookup(docType)
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d days from issue date\n", docType, p.Days)

	if len(args) < 2 {
		return nil
	}

	on := time.Now().UTC()
	if policyOn != "" {
		on, err = time.Parse("2006-01-02", policyOn)
		if err != nil {
			return fmt.Errorf("parsing --on: %w", err)
		}
	}

	valid, err := table.ValidOn(docType, args[1], on)
	if err != nil {
		return err
	}

	status := "expired"
	if valid {
		status = "valid"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "issued %s: %s on %s\n",
		args[1], status, on.Format("2006-01-02"))
	return nil
}
