package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"turfzone/internal/ui"
)

var turfsJSON bool

var turfsCmd = &cobra.Command{
	Use:   "turfs",
	Short: "List the turfs in a category",
	Long: `Run one lookup for the configured category and print the result.
A store failure is reported in the output, not as a failing exit code.

Examples:
  turfzone turfs
  turfzone turfs --category Cricket --json`,
	RunE: runTurfs,
}

func init() {
	rootCmd.AddCommand(turfsCmd)
	turfsCmd.Flags().BoolVar(&turfsJSON, "json", false, "Print the listing as JSON")
}

type turfsOutput struct {
	Category string      `json:"category"`
	Turfs    interface{} `json:"turfs"`
	Error    string      `json:"error,omitempty"`
}

func runTurfs(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	listing := rt.Service.Lookup(cmd.Context(), rt.Settings.Category)
	out := cmd.OutOrStdout()

	if turfsJSON {
		payload := turfsOutput{Category: listing.Category, Turfs: listing.Turfs}
		if listing.Failed() {
			payload.Error = listing.Err.Error()
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	fmt.Fprint(out, ui.RenderListing(listing))
	return nil
}
