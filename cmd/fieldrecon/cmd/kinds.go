package cmd

import (
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/reconcile"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds [field-name...]",
	Short: "Show how field names map to comparator kinds",
	Long: `Kinds prints the built-in field-name dispatch table, or resolves the
given field names. Names absent from the table resolve to generic text
comparison.`,
	RunE: runKinds,
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}

func runKinds(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	if len(args) > 0 {
		for _, name := range args {
			kind, ok := reconcile.DefaultKinds[name]
			if !ok {
				kind = reconcile.KindGenericText
			}
			fmt.Fprintf(w, "%s\t%s\n", name, kind)
		}
		return nil
	}

	names := make([]string, 0, len(reconcile.DefaultKinds))
	for name := range reconcile.DefaultKinds {
		names = append(names, name)
	}
	sort.Strings(names)

	table := tablewriter.NewTable(w)
	table.Header("Field", "Kind")
	for _, name := range names {
		if err := table.Append(name, reconcile.DefaultKinds[name].String()); err != nil {
			return err
		}
	}
	return table.Render()
}
