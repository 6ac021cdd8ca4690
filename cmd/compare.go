package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"pair-compare/core/compare"
	"pair-compare/core/config"
	"pair-compare/core/database"
	"pair-compare/core/export"
	"pair-compare/core/logger"
	"pair-compare/core/table"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	comparePairs       string
	compareLookup      string
	compareLookupTable string
	compareRoles       compare.Roles
	compareColumns     []string
	compareDisplay     []string
	comparePolicy      string
	compareOut         string
	compareDetail      int
	compareJSON        bool
)

// compareCmd builds a comparison from local files.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the attributes of entity pairs",
	Long: `Joins a pairs table against a lookup table and writes the merged comparison
as a styled workbook.

Comparison columns take an optional kind suffix, ":numeric" or ":text".
Without it the kind inferred from the lookup table is used.

Examples:
  # Compare the tags column
  compare --pairs pairs.csv --lookup entities.xlsx --id1 query --id2 subject \
    --lookup-id id --name name --compare tags

  # Lookup from the database, print the detail of the first row
  compare --pairs pairs.csv --lookup-table entities --id1 a --id2 b --lookup-id id \
    --compare tags --compare size:numeric --detail 0`,
	RunE: runCompare,
}

func init() {
	f := compareCmd.Flags()
	f.StringVar(&comparePairs, "pairs", "", "Pairs table (CSV or XLSX)")
	f.StringVar(&compareLookup, "lookup", "", "Lookup table (CSV or XLSX)")
	f.StringVar(&compareLookupTable, "lookup-table", "", "Lookup table in the configured database")
	f.StringVar(&compareRoles.ID1, "id1", "", "Pairs column holding the first id")
	f.StringVar(&compareRoles.ID2, "id2", "", "Pairs column holding the second id")
	f.StringVar(&compareRoles.Similarity, "sim", "", "Pairs column holding the similarity score")
	f.StringVar(&compareRoles.LookupID, "lookup-id", "", "Lookup column holding the id")
	f.StringVar(&compareRoles.Name, "name", "", "Lookup column holding the display name")
	f.StringVar(&compareRoles.Usage, "usage", "", "Numeric lookup column holding the usage value")
	f.StringVar(&compareRoles.Meta, "meta", "", "Lookup metadata column, compared when --compare is not given")
	f.StringArrayVar(&compareColumns, "compare", nil, "Comparison column, repeatable (col or col:numeric)")
	f.StringSliceVar(&compareDisplay, "display", nil, "Display fields (default: all)")
	f.StringVar(&comparePolicy, "policy", "", "Duplicate lookup id policy: fanout or reject")
	f.StringVar(&compareOut, "out", "merged_comparison.xlsx", "Output workbook, empty to skip")
	f.IntVar(&compareDetail, "detail", -1, "Print the detail of this row")
	f.BoolVar(&compareJSON, "json", false, "Print the result as JSON")

	_ = compareCmd.MarkFlagRequired("pairs")
	compareCmd.MarkFlagsOneRequired("lookup", "lookup-table")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	specs, err := parseColumnSpecs(compareColumns)
	if err != nil {
		return err
	}
	req := compare.Request{
		Roles:           compareRoles,
		Compare:         specs,
		DuplicatePolicy: compare.DuplicatePolicy(comparePolicy),
	}
	if cmd.Flags().Changed("display") {
		req.Display = compareDisplay
		if req.Display == nil {
			req.Display = []string{}
		}
	}
	if req.DuplicatePolicy == "" {
		req.DuplicatePolicy = cfg.Compare.DuplicatePolicy
	}

	pairs, err := table.ReadFile(comparePairs)
	if err != nil {
		return err
	}
	lookup, err := loadLookup(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	result, err := compare.Build(pairs, lookup, req)
	if err != nil {
		return err
	}
	l.Info("Comparison built",
		zap.Int("pairs", pairs.Len()),
		zap.Int("lookup_rows", lookup.Len()),
		zap.Int("rows", len(result.Rows)),
		zap.Int("columns", len(result.Schema.Columns)),
	)

	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if compareJSON {
		if err := enc.Encode(result); err != nil {
			return err
		}
	}
	if compareDetail >= 0 {
		detail, err := compare.DetailAt(result, compareDetail)
		if err != nil {
			return err
		}
		if err := enc.Encode(detail); err != nil {
			return err
		}
	}

	if compareOut == "" {
		return nil
	}
	f, err := os.Create(compareOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", compareOut, err)
	}
	defer f.Close()
	if err := export.WriteMerged(f, result, cfg.Compare.SheetName); err != nil {
		return fmt.Errorf("failed to write %s: %w", compareOut, err)
	}
	l.Info("Comparison written", zap.String("file", compareOut))
	return nil
}

func loadLookup(ctx context.Context, cfg *config.Config) (*table.Table, error) {
	if compareLookup != "" {
		return table.ReadFile(compareLookup)
	}
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	return database.LoadTable(ctx, db, compareLookupTable)
}

// parseColumnSpecs reads "col" or "col:kind" flags. A nil list keeps the meta default.
func parseColumnSpecs(flags []string) ([]compare.ColumnSpec, error) {
	if flags == nil {
		return nil, nil
	}
	specs := make([]compare.ColumnSpec, 0, len(flags))
	for _, raw := range flags {
		spec := compare.ColumnSpec{Source: raw}
		if i := strings.LastIndex(raw, ":"); i >= 0 {
			kind := table.Kind(strings.ToLower(raw[i+1:]))
			if kind.IsValid() {
				spec = compare.ColumnSpec{Source: raw[:i], Kind: kind}
			}
		}
		if spec.Source == "" {
			return nil, fmt.Errorf("invalid comparison column %q", raw)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
