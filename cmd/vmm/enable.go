package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	enableAll  bool
	disableAll bool
)

var enableCmd = &cobra.Command{
	Use:   "enable [mod]",
	Short: "Enable a mod (or all mods with --all)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEnabled(args, enableAll, true)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable [mod]",
	Short: "Disable a mod (or all mods with --all)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEnabled(args, disableAll, false)
	},
}

func setEnabled(args []string, all, enabled bool) error {
	if all == (len(args) == 1) {
		return fmt.Errorf("specify a mod name or --all")
	}

	svc, err := initService()
	if err != nil {
		return err
	}
	defer svc.Close()

	if _, err := svc.ScanMods(); err != nil {
		return err
	}

	if all {
		svc.SetEnabledAll(enabled)
	} else if err := svc.SetModEnabled(args[0], enabled); err != nil {
		return err
	}
	if err := svc.SaveNow(); err != nil {
		return err
	}

	state := colorRed("disabled")
	if enabled {
		state = colorGreen("enabled")
	}
	if all {
		fmt.Printf("All mods %s\n", state)
	} else {
		fmt.Printf("%s %s\n", args[0], state)
	}
	return nil
}

func init() {
	enableCmd.Flags().BoolVar(&enableAll, "all", false, "enable every mod")
	disableCmd.Flags().BoolVar(&disableAll, "all", false, "disable every mod")
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
}
