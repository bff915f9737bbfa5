package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"turfzone/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the demo turfs into the configured store",
	Long: `Create the turfs table if needed and insert a small demo data set.
Running it again skips turfs that already exist.

Examples:
  turfzone seed
  turfzone seed --store postgres --dsn "postgres://localhost/turfzone?sslmode=disable"`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	turfs := db.DemoTurfs()
	inserted, err := rt.Store.Seed(cmd.Context(), turfs)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✅ Seeded %d turfs", inserted)
	if skipped := int64(len(turfs)) - inserted; skipped > 0 {
		fmt.Fprintf(out, " (%d already present)", skipped)
	}
	fmt.Fprintln(out)
	return nil
}
