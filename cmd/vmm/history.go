package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"vmm/internal/storage/db"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent apply runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := initService()
		if err != nil {
			return err
		}
		defer svc.Close()

		runs, err := svc.DB().RecentApplyRuns(historyLimit)
		if err != nil {
			return err
		}

		if jsonOutput {
			type runJSON struct {
				ID         string    `json:"id"`
				StartedAt  time.Time `json:"started_at"`
				FinishedAt time.Time `json:"finished_at"`
				Mods       []string  `json:"mods"`
				Outcome    string    `json:"outcome"`
				Error      string    `json:"error,omitempty"`
			}
			out := make([]runJSON, 0, len(runs))
			for _, r := range runs {
				out = append(out, runJSON{
					ID: r.ID, StartedAt: r.StartedAt, FinishedAt: r.FinishedAt,
					Mods: r.Mods, Outcome: r.Outcome, Error: r.Error,
				})
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		if len(runs) == 0 {
			fmt.Println("No apply runs recorded yet.")
			return nil
		}

		for _, r := range runs {
			mods := "(none)"
			if len(r.Mods) > 0 {
				mods = strings.Join(r.Mods, ", ")
			}
			fmt.Printf("%s  %-12s  %d mods: %s\n",
				r.StartedAt.Local().Format("2006-01-02 15:04:05"),
				outcomeLabel(r.Outcome), len(r.Mods), mods)
			if r.Error != "" && verbose {
				fmt.Printf("    %s\n", colorRed(r.Error))
			}
		}
		return nil
	},
}

func outcomeLabel(outcome string) string {
	switch outcome {
	case db.OutcomeSuccess, db.OutcomeRestored:
		return colorGreen(outcome)
	case db.OutcomeMergeFailed, db.OutcomeCopyFailed, db.OutcomeError:
		return colorRed(outcome)
	default:
		return outcome
	}
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum runs to show")
	rootCmd.AddCommand(historyCmd)
}
