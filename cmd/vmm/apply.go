package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vmm/internal/core"
	"vmm/internal/domain"

	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Merge enabled mods with ViolaCLI and copy them into the game",
	Long: `Merge the enabled mods against the base cpk_list.cfg.bin using the
configured ViolaCLI and copy the merged output into the game's data
directory. With zero enabled mods the pristine cfg.bin is restored
instead.

Ctrl-C interrupts a running merge; the game directory is only touched
after the merge succeeds.`,
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
		if err := svc.ResetTmpDir(); err != nil {
			return err
		}

		started, err := svc.Apply()
		if err != nil {
			return err
		}
		if !started {
			// Zero-mods restore ran synchronously.
			fmt.Println(colorGreen("CHANGES APPLIED!! No mods selected."))
			return nil
		}

		return drainApply(svc)
	},
}

// drainApply prints worker events until the Done event, forwarding Ctrl-C
// as a stop request. A run that fails after the user asked to stop counts
// as cancelled, not as an error.
func drainApply(svc *core.Service) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var stopped bool
	for {
		select {
		case <-sigCh:
			fmt.Println(colorYellow("Interrupting merge..."))
			svc.RequestStop()
			stopped = true
		case ev := <-svc.Events():
			if ev.Done {
				// The worker already emitted its final message; the error,
				// if any, is reported by Execute.
				if ev.Err != nil && stopped {
					return ErrCancelled
				}
				return ev.Err
			}
			if ev.Message != "" {
				printEvent(ev.Message, ev.Level)
			}
		}
	}
}

func printEvent(msg string, level domain.Level) {
	switch level {
	case domain.LevelSuccess:
		fmt.Println(colorGreen(msg))
	case domain.LevelWarning:
		fmt.Println(colorYellow(msg))
	case domain.LevelError:
		fmt.Fprintln(os.Stderr, colorRed(msg))
	default:
		fmt.Println(msg)
	}
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
