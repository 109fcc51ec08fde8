package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List mods in merge order",
	Long: `List mods in their current order. The order is the merge priority:
earlier mods are merged first and later mods win conflicts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := initService()
		if err != nil {
			return err
		}
		defer svc.Close()

		if _, err := svc.ScanMods(); err != nil {
			return err
		}
		if err := svc.SaveNow(); err != nil {
			return err
		}
		entries := svc.List().Entries()

		if jsonOutput {
			type modJSON struct {
				ID      string `json:"id"`
				Name    string `json:"name"`
				Enabled bool   `json:"enabled"`
				Path    string `json:"path"`
			}
			out := make([]modJSON, 0, len(entries))
			for _, e := range entries {
				out = append(out, modJSON{ID: e.ID, Name: e.DisplayName, Enabled: e.Enabled, Path: e.SourcePath})
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		if len(entries) == 0 {
			fmt.Println("No mods found. Drop mod folders into the mods directory and run 'vmm scan'.")
			return nil
		}

		enabled := 0
		for i, e := range entries {
			marker := "[ ]"
			if e.Enabled {
				marker = "[" + colorGreen("x") + "]"
				enabled++
			}
			fmt.Printf("%3d. %s %s\n", i+1, marker, e.DisplayName)
		}
		fmt.Printf("\n%d mods, %d enabled\n", len(entries), enabled)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
