package main

import (
	"fmt"

	"vmm/internal/release"

	"github.com/spf13/cobra"
)

var checkDownloads bool

var downloadsCmd = &cobra.Command{
	Use:   "downloads",
	Short: "Show where to get ViolaCLI and a pristine cpk_list.cfg.bin",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("ViolaCLI releases:")
		fmt.Printf("  %s\n", release.ViolaReleasesURL)
		fmt.Println("Pristine cpk_list.cfg.bin (extract from an unmodified install, notes here):")
		fmt.Printf("  %s\n", release.CfgBinNotesURL)

		if !checkDownloads {
			return nil
		}

		version, err := release.LatestViola()
		if err != nil {
			return err
		}
		fmt.Printf("\nLatest ViolaCLI release: %s\n", colorGreen(version))
		return nil
	},
}

func init() {
	downloadsCmd.Flags().BoolVar(&checkDownloads, "check", false, "query GitHub for the latest ViolaCLI release")
	rootCmd.AddCommand(downloadsCmd)
}
