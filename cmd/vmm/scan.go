package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the mods directory and reconcile the mod list",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := initService()
		if err != nil {
			return err
		}
		defer svc.Close()

		entries, err := svc.ScanMods()
		if err != nil {
			return err
		}
		if err := svc.SaveNow(); err != nil {
			return err
		}

		fmt.Printf("Found %d mods in %s\n", len(entries), svc.ModsRoot())
		for _, e := range entries {
			marker := " "
			if e.Enabled {
				marker = colorGreen("*")
			}
			fmt.Printf("  [%s] %s\n", marker, e.DisplayName)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
