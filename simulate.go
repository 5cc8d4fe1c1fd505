package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/breathing-bubble/internal/breath"
	"github.com/iburimskiy/breathing-bubble/internal/config"
	"github.com/iburimskiy/breathing-bubble/internal/logging"
	"github.com/iburimskiy/breathing-bubble/internal/session"
	"github.com/iburimskiy/breathing-bubble/internal/sim"
)

var (
	simulateDuration time.Duration
	simulatePress    string
	simulateEvery    time.Duration
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#aa96da"))
	pressStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#fcbad3"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c6c8a"))
	phaseStyles = map[breath.Phase]lipgloss.Style{
		breath.PhaseInhale: lipgloss.NewStyle().Foreground(lipgloss.Color("#a8d8ea")),
		breath.PhaseHold:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8bc0ff")),
		breath.PhaseExhale: lipgloss.NewStyle().Foreground(lipgloss.Color("#aa96da")),
		breath.PhaseRest:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6c6c8a")),
	}
)

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a session headlessly with a scripted press schedule",
		Args:  cobra.NoArgs,
		RunE:  runSimulateCmd,
	}
	cmd.Flags().DurationVar(&simulateDuration, "duration", 28*time.Second, "session length")
	cmd.Flags().StringVar(&simulatePress, "press", "0s-6s,14s-20s", "press windows, e.g. 0s-6s,14s-20s")
	cmd.Flags().DurationVar(&simulateEvery, "every", time.Second, "report interval")
	return cmd
}

func runSimulateCmd(cmd *cobra.Command, _ []string) error {
	log := logging.New("simulate", verbose)

	windows, err := sim.ParseWindows(simulatePress)
	if err != nil {
		return err
	}
	if simulateDuration <= 0 {
		return fmt.Errorf("--duration must be positive")
	}
	every := int(simulateEvery.Seconds() * config.TicksPerSecond)
	if every <= 0 {
		return fmt.Errorf("--every must be at least one tick")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	s := session.New(breath.DefaultCycle(), log)
	res, err := sim.Run(ctx, s, sim.Options{
		Duration:    simulateDuration,
		Presses:     windows,
		TPS:         config.TicksPerSecond,
		SampleEvery: every,
	})
	if err != nil && ctx.Err() == nil {
		return err
	}
	if err != nil {
		log.Warn().Err(err).Int("ticks", res.Ticks).Msg("simulation interrupted")
	}

	fmt.Fprint(cmd.OutOrStdout(), renderReport(res))
	return nil
}

// renderReport formats the samples as a table followed by a summary line.
func renderReport(res sim.Result) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%8s  %-7s  %5s  %5s  %s", "time", "phase", "scale", "sync", "press")))
	b.WriteString("\n")
	for _, s := range res.Samples {
		phase := fmt.Sprintf("%-7s", s.Phase)
		if st, ok := phaseStyles[s.Phase]; ok {
			phase = st.Render(phase)
		}
		press := mutedStyle.Render("-")
		if s.Pressing {
			press = pressStyle.Render("held")
		}
		fmt.Fprintf(&b, "%7.2fs  %s  %5.2f  %4.0f%%  %s\n", s.At.Seconds(), phase, s.Scale, s.Sync, press)
	}

	secs := func(ticks int) float64 { return float64(ticks) / config.TicksPerSecond }
	summary := fmt.Sprintf("final sync %.0f%%  held in window %.1fs  held off window %.1fs  ticks %d",
		res.Final, secs(res.InWindowTicks), secs(res.OffWindowTicks), res.Ticks)
	b.WriteString(headerStyle.Render(summary))
	b.WriteString("\n")
	return b.String()
}
