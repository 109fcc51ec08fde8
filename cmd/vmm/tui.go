package main

import (
	"vmm/internal/tui"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := initService()
		if err != nil {
			return err
		}
		defer svc.Close()

		if _, err := svc.ScanMods(); err != nil {
			return err
		}
		if err := svc.ResetTmpDir(); err != nil {
			return err
		}

		return tui.Run(svc)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
