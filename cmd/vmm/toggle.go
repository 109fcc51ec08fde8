package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <mod>",
	Short: "Toggle a mod on or off",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := initService()
		if err != nil {
			return err
		}
		defer svc.Close()

		if _, err := svc.ScanMods(); err != nil {
			return err
		}
		if err := svc.ToggleMod(args[0]); err != nil {
			return err
		}
		if err := svc.SaveNow(); err != nil {
			return err
		}

		for _, e := range svc.List().Entries() {
			if e.ID == args[0] {
				state := colorRed("disabled")
				if e.Enabled {
					state = colorGreen("enabled")
				}
				fmt.Printf("%s is now %s\n", e.DisplayName, state)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}
