// Package main provides the entrypoint for the breathing bubble.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/breathing-bubble/internal/config"
	"github.com/iburimskiy/breathing-bubble/internal/game"
	"github.com/iburimskiy/breathing-bubble/internal/logging"
)

var (
	verbose      bool
	debugOverlay bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "breathe",
		Short:        "Breathing bubble with a press-and-hold sync game",
		SilenceUsage: true,
		RunE:         runWindow,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().BoolVar(&debugOverlay, "debug", false, "show TPS/FPS overlay")

	rootCmd.AddCommand(newSnapshotCmd())
	rootCmd.AddCommand(newSimulateCmd())
	return rootCmd
}

func runWindow(_ *cobra.Command, _ []string) error {
	log := logging.New("window", verbose)

	g, err := game.New(log, debugOverlay)
	if err != nil {
		return reportFatal(err)
	}
	defer g.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)

	log.Info().Int("width", config.WindowWidth).Int("height", config.WindowHeight).Msg("opening window")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return reportFatal(fmt.Errorf("run game: %w", err))
	}
	log.Info().Msg("window closed")
	return nil
}

// reportFatal shows err in a dialog as well, since the window usually has no
// attached terminal.
func reportFatal(err error) error {
	_ = zenity.Error(err.Error(), zenity.Title("Breathing Bubble"), zenity.ErrorIcon)
	return err
}
