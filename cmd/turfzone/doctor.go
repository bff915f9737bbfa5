package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"turfzone/internal/config"
)

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:          "doctor",
	Short:        "Diagnose configuration and store connectivity",
	SilenceUsage: true, // Prevents printing usage on error
	Long: `The doctor command runs a series of checks to verify that the environment
is correctly configured. It checks the configuration, the store connection
and a lookup of the default category.`,
	RunE: runChecks,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// runChecks executes all the doctor checks and prints a summary.
func runChecks(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	checkPassed := true

	fmt.Fprintln(out, "🩺 Running doctor checks...")

	fmt.Fprintln(out, "\n🔎 Checking configuration...")
	if err := config.ValidateConfig(); err != nil {
		fmt.Fprintf(out, "❌ %v\n", err)
		checkPassed = false
	} else {
		s := currentSettings()
		fmt.Fprintf(out, "✅ Configuration is valid (store: %s, category: %s)\n", s.StoreType, s.Category)
	}

	if !runStoreChecks(cmd) {
		checkPassed = false
	}

	// Summary
	fmt.Fprintln(out, "\n🩺 Doctor Summary:")
	if checkPassed {
		fmt.Fprintln(out, "✅ All checks passed!")
		return nil
	}

	fmt.Fprintln(out, "❌ Some checks failed. Please review the output above.")
	return fmt.Errorf("doctor checks failed")
}

// runStoreChecks opens the store, pings it and runs one lookup.
func runStoreChecks(cmd *cobra.Command) bool {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "\n🔎 Checking store connectivity...")
	rt, err := openRuntime()
	if err != nil {
		fmt.Fprintf(out, "❌ Could not open store: %v\n", err)
		return false
	}
	defer rt.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	if err := rt.Store.Ping(ctx); err != nil {
		fmt.Fprintf(out, "❌ Store is not reachable: %v\n", err)
		return false
	}
	fmt.Fprintln(out, "✅ Store is reachable")

	listing := rt.Service.Lookup(ctx, rt.Settings.Category)
	switch {
	case listing.Failed():
		fmt.Fprintf(out, "❌ Lookup for %s failed: %v\n", listing.Category, listing.Err)
		return false
	case listing.Empty():
		fmt.Fprintf(out, "⚠️  %s (run 'turfzone seed' to add demo data)\n", listing.NoResultsText())
	default:
		fmt.Fprintf(out, "✅ Found %d %s turfs\n", len(listing.Turfs), listing.Category)
	}
	return true
}
