package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/itzamnahuerta/nycha-scraper-anhd/internal/config"
	"github.com/itzamnahuerta/nycha-scraper-anhd/internal/dataset"
	"github.com/itzamnahuerta/nycha-scraper-anhd/internal/pdfdoc"
	"github.com/itzamnahuerta/nycha-scraper-anhd/internal/reconcile"
	"github.com/itzamnahuerta/nycha-scraper-anhd/internal/rows"
	"github.com/itzamnahuerta/nycha-scraper-anhd/internal/scrape"
)

const version = "1.0.0"

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: could not load .env: %v", err)
	}

	rootCmd := &cobra.Command{
		Use:   "nycha",
		Short: "NYCHA property data scraper and reconciler",
		Long:  `Extracts the per-borough property tables from the NYCHA development data PDF and reconciles the result against an independent property dataset`,
	}

	rootCmd.AddCommand(createScrapeCmd())
	rootCmd.AddCommand(createReconcileCmd())
	rootCmd.AddCommand(createVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func createScrapeCmd() *cobra.Command {
	var outPath, badRowsPath string
	var localDebug bool

	cmd := &cobra.Command{
		Use:   "scrape [pdf]",
		Short: "Extract property records from the development data PDF",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runScrape(args[0], outPath, badRowsPath, localDebug)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "nycha_properties.csv", "merged CSV output path")
	cmd.Flags().StringVar(&badRowsPath, "badrows", "", "optional raw bad-row audit CSV path")
	cmd.Flags().BoolVar(&localDebug, "debug", false, "enable debug output")
	return cmd
}

func runScrape(pdfPath, outPath, badRowsPath string, localDebug bool) {
	opts := pdfdoc.DefaultOptions()
	opts.RowTolerance = config.GetEnvFloat("SCRAPE_ROW_TOLERANCE", opts.RowTolerance)
	opts.CellGap = config.GetEnvFloat("SCRAPE_CELL_GAP", opts.CellGap)

	doc, err := pdfdoc.Open(pdfPath, opts)
	if err != nil {
		log.Fatalf("Failed to open PDF: %v", err)
	}
	defer doc.Close()

	result := scrape.Traverse(doc, scrape.ExpectedColumns, localDebug)
	fmt.Printf("Scanned %d pages (%d skipped, %d failed): %d valid rows, %d bad rows\n",
		result.PagesSeen, result.PagesSkipped, result.PagesFailed,
		len(result.ValidRows), len(result.BadRows))

	valid, validStats, err := rows.NormalizeValid(result.ValidRows)
	if err != nil {
		log.Fatalf("Normalization failed: %v", err)
	}
	fmt.Printf("Valid path: %d rows in, %d kept, %d dropped\n",
		validStats.Input, validStats.Kept, validStats.Dropped)

	repaired, badStats := rows.RepairBad(result.BadRows)
	fmt.Printf("Repair path: %d rows in, %d kept, %d dropped, %d unrepairable\n",
		badStats.Input, badStats.Kept, badStats.Dropped, badStats.Unrepairable)

	merged := dataset.Merge(valid, repaired)
	if err := dataset.WriteRecords(outPath, merged); err != nil {
		log.Fatalf("Failed to write merged CSV: %v", err)
	}
	fmt.Printf("Wrote %d records to %s\n", len(merged), outPath)

	if badRowsPath != "" {
		if err := dataset.WriteRawRows(badRowsPath, result.BadRows); err != nil {
			log.Fatalf("Failed to write bad-row audit CSV: %v", err)
		}
		fmt.Printf("Wrote %d raw bad rows to %s\n", len(result.BadRows), badRowsPath)
	}
}

func createReconcileCmd() *cobra.Command {
	var key, onlyAPath, onlyBPath, fromTable string

	cmd := &cobra.Command{
		Use:   "reconcile [a.csv] [b.csv]",
		Short: "Report rows present in only one of two property datasets",
		Long:  `Joins two tabular datasets on exact equality of a shared key column and reports the rows each side holds alone. The second dataset comes from a CSV file, or from a Postgres table when --from-db is set.`,
		Args:  cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			runReconcile(args, key, onlyAPath, onlyBPath, fromTable)
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", dataset.ColAddress, "key column shared by both datasets")
	cmd.Flags().StringVar(&onlyAPath, "only-a", "", "CSV path for rows only in the first dataset (default: print)")
	cmd.Flags().StringVar(&onlyBPath, "only-b", "", "CSV path for rows only in the second dataset (default: print)")
	cmd.Flags().StringVar(&fromTable, "from-db", "", "load the second dataset from this Postgres table instead of a CSV")
	return cmd
}

func runReconcile(args []string, key, onlyAPath, onlyBPath, fromTable string) {
	a, err := dataset.ReadCSV(args[0])
	if err != nil {
		log.Fatalf("Failed to load first dataset: %v", err)
	}

	var b dataset.Relation
	switch {
	case fromTable != "":
		db, err := dataset.OpenDB()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		b, err = dataset.LoadTable(db, fromTable)
		if err != nil {
			log.Fatalf("Failed to load table %s: %v", fromTable, err)
		}
	case len(args) == 2:
		b, err = dataset.ReadCSV(args[1])
		if err != nil {
			log.Fatalf("Failed to load second dataset: %v", err)
		}
	default:
		log.Fatalf("Provide a second CSV or --from-db table")
	}

	diff, err := reconcile.Compare(a, b, key)
	if err != nil {
		log.Fatalf("Reconciliation failed: %v", err)
	}

	fmt.Printf("Only in %s: %d rows\n", args[0], len(diff.OnlyInA.Rows))
	if fromTable != "" {
		fmt.Printf("Only in table %s: %d rows\n", fromTable, len(diff.OnlyInB.Rows))
	} else {
		fmt.Printf("Only in %s: %d rows\n", args[1], len(diff.OnlyInB.Rows))
	}

	writeSide("first side", diff.OnlyInA, onlyAPath)
	writeSide("second side", diff.OnlyInB, onlyBPath)
}

// writeSide writes one side of the diff to a file, or prints it when no
// path was given.
func writeSide(label string, rel dataset.Relation, path string) {
	if path != "" {
		if err := rel.WriteCSV(path); err != nil {
			log.Fatalf("Failed to write %s CSV: %v", label, err)
		}
		fmt.Printf("Wrote %s to %s\n", label, path)
		return
	}

	if len(rel.Rows) == 0 {
		return
	}
	writer := csv.NewWriter(os.Stdout)
	writer.Write(rel.Header)
	for _, row := range rel.Rows {
		writer.Write(row)
	}
	writer.Flush()
}

func createVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("nycha %s\n", version)
		},
	}
}
