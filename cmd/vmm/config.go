package main

import (
	"fmt"
	"path/filepath"

	"vmm/internal/steam"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change vmm settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShowCmd.RunE(cmd, args)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := initService()
		if err != nil {
			return err
		}
		defer svc.Close()

		cfg := svc.Config()
		fmt.Printf("game:   %s\n", orUnset(cfg.GamePath))
		fmt.Printf("cfgbin: %s\n", orUnset(cfg.CfgBinPath))
		fmt.Printf("viola:  %s\n", orUnset(cfg.ViolaPath))
		fmt.Printf("mods:   %s\n", svc.ModsRoot())
		fmt.Printf("tmp:    %s\n", svc.TmpRoot())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <path>",
	Short: "Set a configuration path",
	Long: `Set a configuration path. Keys:

  game    game installation directory
  cfgbin  pristine cpk_list.cfg.bin file
  viola   ViolaCLI executable
  mods    directory scanned for mod folders
  tmp     merge work directory`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		abs, err := filepath.Abs(value)
		if err != nil {
			return fmt.Errorf("resolving path: %w", err)
		}

		svc, err := initService()
		if err != nil {
			return err
		}
		defer svc.Close()

		switch key {
		case "game":
			svc.SetGamePath(abs)
		case "cfgbin":
			svc.SetCfgBinPath(abs)
		case "viola":
			svc.SetViolaPath(abs)
		case "mods":
			svc.SetModsDir(abs)
		case "tmp":
			svc.SetTmpDir(abs)
		default:
			return fmt.Errorf("unknown key %q (game, cfgbin, viola, mods, tmp)", key)
		}

		if err := svc.SaveNow(); err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", key, abs)
		return nil
	},
}

var configDetectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Find the game's Steam install and set the game path",
	RunE: func(cmd *cobra.Command, args []string) error {
		install, err := steam.FindInstall(steam.VictoryRoadAppID)
		if err != nil {
			return fmt.Errorf("scanning Steam libraries: %w", err)
		}
		if install == nil {
			return fmt.Errorf("no Steam install of Inazuma Eleven: Victory Road found")
		}

		svc, err := initService()
		if err != nil {
			return err
		}
		defer svc.Close()

		svc.SetGamePath(install.InstallPath)
		if err := svc.SaveNow(); err != nil {
			return err
		}
		fmt.Printf("Found %s\n", install.Name)
		fmt.Printf("game = %s\n", install.InstallPath)
		return nil
	},
}

func orUnset(s string) string {
	if s == "" {
		return colorYellow("(not set)")
	}
	return s
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configDetectCmd)
	rootCmd.AddCommand(configCmd)
}
