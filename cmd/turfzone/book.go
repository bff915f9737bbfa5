package main

import (
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"turfzone/internal/booking"
	"turfzone/internal/controller"
	"turfzone/internal/ui"
)

var (
	askOneFunc = survey.AskOne

	// receiptStyle is the glamour style for the printed receipt; empty
	// picks one for the terminal.
	receiptStyle = ""
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book a turf slot through interactive prompts",
	Long: `Look up the configured category, pick a turf, fill in the booking form
and receive a mock confirmation. Nothing is written to the store.`,
	RunE: runBook,
}

func init() {
	rootCmd.AddCommand(bookCmd)
}

func runBook(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	ctrl := rt.Controller()

	start := ctrl.Start(ctx, rt.Settings.Category)
	listing := ctrl.Listing()
	if start.Notice != nil {
		printNotice(out, start.Notice)
		return nil
	}
	if listing.Empty() {
		fmt.Fprintln(out, listing.NoResultsText())
		return nil
	}

	names := make([]string, 0, len(listing.Turfs))
	for _, t := range listing.Turfs {
		names = append(names, t.Name)
	}
	var turfName string
	if err := askOneFunc(&survey.Select{
		Message: "Select a turf:",
		Options: names,
	}, &turfName); err != nil {
		return fmt.Errorf("turf selection failed: %w", err)
	}

	res, err := ctrl.Dispatch(ctx, controller.BookNow(turfName))
	if err != nil {
		return err
	}
	if res.Notice != nil {
		printNotice(out, res.Notice)
		return nil
	}

	form := ctrl.Form()
	req := booking.Request{TurfName: form.TurfName}
	if err := askOneFunc(&survey.Input{
		Message: "Booking date:",
		Default: form.Date,
	}, &req.Date); err != nil {
		return fmt.Errorf("date input failed: %w", err)
	}
	if err := askOneFunc(&survey.Select{
		Message: "Time slot:",
		Options: booking.TimeSlotOptions,
		Default: form.TimeSlot,
	}, &req.TimeSlot); err != nil {
		return fmt.Errorf("slot selection failed: %w", err)
	}

	confirmed := false
	if err := askOneFunc(&survey.Confirm{
		Message: "Confirm booking?",
		Default: true,
	}, &confirmed); err != nil {
		return fmt.Errorf("confirmation failed: %w", err)
	}
	if !confirmed {
		if _, err := ctrl.Dispatch(ctx, controller.Cancel()); err != nil {
			return err
		}
		fmt.Fprintln(out, "Booking cancelled.")
		return nil
	}

	res, err = ctrl.Dispatch(ctx, controller.Confirm(req))
	if err != nil {
		return err
	}
	if res.Notice != nil {
		printNotice(out, res.Notice)
		return nil
	}

	fmt.Fprint(out, ui.RenderReceipt(*res.Confirmation, receiptStyle))
	_, err = ctrl.Dispatch(ctx, controller.Acknowledge())
	return err
}

func printNotice(out io.Writer, n *controller.Notice) {
	fmt.Fprintf(out, "⚠️  %s\n", n)
}
