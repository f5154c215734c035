package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	fieldrecon "github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/logging"
	"github.com/aktilekishanov/rb-ocr-v2025-11-14-sub001/pkg/reconcile"
)

var (
	compareOutput    string
	compareFuzzyFIO  bool
	compareThreshold float64
	compareFailDiff  bool
)

var compareCmd = &cobra.Command{
	Use:   "compare <claimed.json> <extracted.json>",
	Short: "Compare two field maps and report per-field verdicts",
	Long: `Compare reads two JSON objects - the client-submitted field map and
the map extracted from the scanned document - and prints one verdict per
field in the union of both key sets.

Examples:
  fieldrecon compare claimed.json extracted.json
  fieldrecon compare claimed.json extracted.json -o json
  fieldrecon compare claimed.json extracted.json --fuzzy-names --fail-on-diff`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVarP(&compareOutput, "output", "o", "table", "output format (table|json|yaml)")
	compareCmd.Flags().BoolVar(&compareFuzzyFIO, "fuzzy-names", false, "enable similarity fallback for full-name fields")
	compareCmd.Flags().Float64Var(&compareThreshold, "fuzzy-threshold", 0, "similarity threshold for the name fallback (0 = default)")
	compareCmd.Flags().BoolVar(&compareFailDiff, "fail-on-diff", false, "exit non-zero when any field differs")
}

func runCompare(cmd *cobra.Command, args []string) error {
	claimed, err := loadFieldMap(args[0])
	if err != nil {
		return fmt.Errorf("reading claimed fields: %w", err)
	}
	extracted, err := loadFieldMap(args[1])
	if err != nil {
		return fmt.Errorf("reading extracted fields: %w", err)
	}

	var opts []fieldrecon.Option
	if compareFuzzyFIO {
		opts = append(opts, fieldrecon.WithNameFuzzyFallback(compareThreshold))
	}

	engine, err := fieldrecon.New(opts...)
	if err != nil {
		return err
	}

	logging.Debug().
		Int("claimed_fields", len(claimed)).
		Int("extracted_fields", len(extracted)).
		Msg("Comparing field maps")

	verdicts, err := engine.Compare(claimed, extracted)
	if err != nil {
		return err
	}

	if err := writeVerdicts(cmd.OutOrStdout(), verdicts, engine); err != nil {
		return err
	}

	if compareFailDiff && !verdicts.AllIdentical() {
		logging.Warn().
			Strs("fields", verdicts.Different()).
			Msg("Fields differ")
		os.Exit(2)
	}
	return nil
}

// loadFieldMap decodes one flat JSON object. Numbers stay json.Number so
// amounts are not mangled by float64 round-tripping before comparison.
func loadFieldMap(path string) (map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fields, nil
}

func writeVerdicts(w io.Writer, verdicts reconcile.Verdicts, engine fieldrecon.Engine) error {
	switch compareOutput {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(verdicts)
	case "yaml":
		data, err := yaml.MarshalWithOptions(verdicts,
			yaml.Indent(2),
			yaml.IndentSequence(false),
		)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "table":
		return writeVerdictTable(w, verdicts, engine)
	default:
		return fmt.Errorf("unknown output format: %s", compareOutput)
	}
}

func writeVerdictTable(w io.Writer, verdicts reconcile.Verdicts, engine fieldrecon.Engine) error {
	table := tablewriter.NewTable(w)
	table.Header("Field", "Kind", "Verdict")

	for _, v := range verdicts {
		verdict := "identical"
		if !v.Identical {
			verdict = "different"
		}
		if err := table.Append(v.Name, engine.Kind(v.Name).String(), verdict); err != nil {
			return err
		}
	}

	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%d field(s), %d different\n",
		len(verdicts), len(verdicts.Different()))
	return err
}
