package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move <mod> up|down",
	Short: "Move a mod one step in the merge order",
	Long: `Move a mod one step up or down. Moving up lowers its merge priority
position (it merges earlier); moving down raises it (later mods win
conflicts). Moves past either end are ignored.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var up bool
		switch args[1] {
		case "up":
			up = true
		case "down":
			up = false
		default:
			return fmt.Errorf("direction must be 'up' or 'down', got %q", args[1])
		}

		svc, err := initService()
		if err != nil {
			return err
		}
		defer svc.Close()

		if _, err := svc.ScanMods(); err != nil {
			return err
		}
		if err := svc.MoveMod(args[0], up); err != nil {
			return err
		}
		if err := svc.SaveNow(); err != nil {
			return err
		}

		for i, e := range svc.List().Entries() {
			if e.ID == args[0] {
				fmt.Printf("%s is now at position %d\n", e.DisplayName, i+1)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
