package cmd

import (
	"fmt"
	"os"

	"pair-compare/core/compare"
	"pair-compare/core/config"
	"pair-compare/core/export"
	"pair-compare/core/logger"
	"pair-compare/core/table"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	pairsColumn string
	pairsOut    string
)

// pairsCmd generates every pair of the distinct ids of a file.
var pairsCmd = &cobra.Command{
	Use:   "pairs <ids-file>",
	Short: "Generate all pairs of distinct ids",
	Long: `Reads an id list (CSV or XLSX) and writes a workbook with one row per
unordered pair of distinct ids.

Examples:
  # Guess the id column
  pairs ids.csv

  # Explicit column and output
  pairs entities.xlsx --column "Entity ID" --out pairs.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runPairs,
}

func init() {
	pairsCmd.Flags().StringVar(&pairsColumn, "column", "", "Id column (default: first header containing \"id\")")
	pairsCmd.Flags().StringVar(&pairsOut, "out", "pairs_table.xlsx", "Output workbook")

	RootCmd.AddCommand(pairsCmd)
}

func runPairs(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	ids, err := table.ReadFile(args[0])
	if err != nil {
		return err
	}
	pairs, err := compare.PairsFromTable(ids, pairsColumn)
	if err != nil {
		return err
	}

	f, err := os.Create(pairsOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", pairsOut, err)
	}
	defer f.Close()
	if err := export.WritePairs(f, compare.PairsTable(pairs)); err != nil {
		return fmt.Errorf("failed to write %s: %w", pairsOut, err)
	}

	l.Info("Pairs written", zap.String("file", pairsOut), zap.Int("ids", ids.Len()), zap.Int("pairs", len(pairs)))
	return nil
}
