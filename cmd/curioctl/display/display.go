// Package display provides output formatting and display functions for curioctl.
//
// Handles all user-facing output including table and JSON rendering for
// catalog records, the selection, and scheduler statistics. Table output
// uses text/tabwriter for consistent column alignment; JSON output is
// indented for readability. All functions respect the global output format
// and verbosity configuration.
package display

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/curio-dev/curio/cmd/curioctl/client"
	"github.com/curio-dev/curio/cmd/curioctl/config"
	"github.com/curio-dev/curio/cmd/curioctl/utils"
	"github.com/curio-dev/curio/internal/logging"
)

// printJSON encodes any value as indented JSON on stdout.
func printJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		logging.Error("Failed to encode JSON: %v", err)
		fmt.Println("Error encoding JSON output")
	}
}

// truncate shortens long text fields for table cells.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// orDash substitutes a dash for empty string fields in table cells.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// DisplayRecords renders a record listing page in tabular or JSON format
// with pagination metadata. Handles empty result sets gracefully.
func DisplayRecords(list *client.RecordList) {
	if config.Global.Output == "json" {
		printJSON(list)
		return
	}

	if len(list.Records) == 0 {
		fmt.Println("No records found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if config.Global.Verbose {
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tDESCRIPTION\tCREATED")
		for _, rec := range list.Records {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				rec.ID, rec.Name, orDash(rec.Category),
				orDash(truncate(rec.Description, 48)),
				rec.CreatedAt.Format("2006-01-02 15:04:05"))
		}
	} else {
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY")
		for _, rec := range list.Records {
			fmt.Fprintf(w, "%d\t%s\t%s\n", rec.ID, rec.Name, orDash(rec.Category))
		}
	}

	w.Flush()
	fmt.Printf("\nShowing %d of %d records", list.Count, list.Total)
	if list.HasMore {
		fmt.Print(" (more available)")
	}
	fmt.Println()
}

// DisplayCreateOutcome renders the result of a record creation, including
// the suppressed case where an identical create was already pending.
func DisplayCreateOutcome(outcome *client.CreateOutcome) {
	if config.Global.Output == "json" {
		printJSON(outcome)
		return
	}

	if outcome.Suppressed {
		fmt.Println("An identical create is already pending; its outcome applies")
		return
	}

	rec := outcome.Record
	fmt.Printf("Created record %d: %s\n", rec.ID, rec.Name)
}

// DisplaySelection renders the selection in tabular or JSON format. The
// full ordered ID list is shown alongside the resolved page so operators
// can see the complete selection even when paginating.
func DisplaySelection(sel *client.Selection) {
	if config.Global.Output == "json" {
		printJSON(sel)
		return
	}

	if sel.Total == 0 {
		fmt.Println("Selection is empty")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "POS\tID\tNAME\tCATEGORY")
	for i, rec := range sel.Records {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", i+1, rec.ID, rec.Name, orDash(rec.Category))
	}
	w.Flush()

	fmt.Printf("\nSelection order: %s\n", utils.JoinIDs(sel.SelectionIDs))
	fmt.Printf("Showing %d of %d selected records", len(sel.Records), sel.Total)
	if sel.HasMore {
		fmt.Print(" (more available)")
	}
	fmt.Println()
}

// DisplaySelectOutcome renders the result of adding records to the selection.
func DisplaySelectOutcome(outcome *client.SelectOutcome) {
	if config.Global.Output == "json" {
		printJSON(outcome)
		return
	}

	if outcome.Suppressed {
		fmt.Println("An identical mutation is already pending; its outcome applies")
		return
	}

	if len(outcome.Added) > 0 {
		fmt.Printf("Added: %s\n", utils.JoinIDs(outcome.Added))
	}
	if len(outcome.AlreadySelected) > 0 {
		fmt.Printf("Already selected: %s\n", utils.JoinIDs(outcome.AlreadySelected))
	}
	if len(outcome.Added) == 0 && len(outcome.AlreadySelected) == 0 {
		fmt.Println("Nothing to add")
	}
}

// DisplayReorderOutcome renders the result of replacing the selection order.
func DisplayReorderOutcome(outcome *client.ReorderOutcome) {
	if config.Global.Output == "json" {
		printJSON(outcome)
		return
	}

	if outcome.Suppressed {
		fmt.Println("An identical mutation is already pending; its outcome applies")
		return
	}

	fmt.Printf("Selection order: %s\n", utils.JoinIDs(outcome.Order))
}

// DisplayUnselectOutcome renders the result of removing records from the
// selection with removed and not-found accounting.
func DisplayUnselectOutcome(outcome *client.UnselectOutcome) {
	if config.Global.Output == "json" {
		printJSON(outcome)
		return
	}

	if outcome.Suppressed {
		fmt.Println("An identical mutation is already pending; its outcome applies")
		return
	}

	fmt.Printf("Removed: %d, not found: %d\n", outcome.Removed, outcome.NotFound)
}

// DisplayQueueStats renders the scheduler's pending and running batch counters.
func DisplayQueueStats(stats *client.QueueStats) {
	if config.Global.Output == "json" {
		printJSON(stats)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "METRIC\tVALUE")
	fmt.Fprintf(w, "Pending operations\t%d\n", stats.PendingCount)
	fmt.Fprintf(w, "Pending reads\t%d\n", stats.PendingReadCount)
	fmt.Fprintf(w, "Pending writes\t%d\n", stats.PendingWriteCount)
	fmt.Fprintf(w, "Running read batch\t%d\n", stats.RunningReadBatchSize)
	fmt.Fprintf(w, "Running write batch\t%d\n", stats.RunningWriteBatchSize)
}

// DisplayHealth renders the daemon health check response.
func DisplayHealth(health *client.HealthInfo) {
	if config.Global.Output == "json" {
		printJSON(health)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "FIELD\tVALUE")
	fmt.Fprintf(w, "Status\t%s\n", health.Status)
	fmt.Fprintf(w, "Version\t%s\n", health.Version)
	fmt.Fprintf(w, "Uptime\t%s\n", health.Uptime)
	fmt.Fprintf(w, "Pending Ops\t%d\n", health.PendingOps)
	fmt.Fprintf(w, "Running Reads\t%d\n", health.RunningReads)
	fmt.Fprintf(w, "Running Writes\t%d\n", health.RunningWrites)
	fmt.Fprintf(w, "Timestamp\t%s\n", health.Timestamp.Format("2006-01-02 15:04:05"))
}
