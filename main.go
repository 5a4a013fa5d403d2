package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/herocarousel/catalog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	debug         bool
	reducedMotion bool
	watchDeck     bool
	baseMonitor   bool
	snapshotDir   string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "herocarousel [deck]",
	Short: "Hero carousel viewer",
	Long: `Shows a hero slide deck full screen: slides cycle on a timer and
crossfade, hover or tap pauses, swipe and the dot strip navigate.

Without a deck argument the embedded hero.yaml deck is shown.

Keys:
  left/right  previous/next slide
  space       toggle pause
  s           write a WebP snapshot of the current frame
  ctrl+c      copy the current slide image ref`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if debug {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runViewer,
}

var validateCmd = &cobra.Command{
	Use:   "validate [deck...]",
	Short: "Check that deck files load and describe at least one slide",
	RunE:  validateDecks,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug overlay and debug logging")
	rootCmd.Flags().BoolVar(&reducedMotion, "reduced-motion", false, "disable autoplay and fades")
	rootCmd.Flags().BoolVar(&watchDeck, "watch", false, "reload the deck when its file changes")
	rootCmd.Flags().BoolVarP(&baseMonitor, "base-monitor", "m", false, "use base monitor instead of primary (for multi-monitor setups)")
	rootCmd.Flags().StringVar(&snapshotDir, "snapshot-dir", "snapshots", "directory for frame snapshots")

	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runViewer(cmd *cobra.Command, args []string) error {
	opts := viewerOptions{
		Debug:         debug,
		ReducedMotion: reducedMotion,
		Watch:         watchDeck,
		SnapshotDir:   snapshotDir,
	}
	if len(args) > 0 {
		opts.DeckPath = args[0]
	}

	if baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("herocarousel")

	game, err := NewGame(opts, logger)
	if err != nil {
		return err
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func validateDecks(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{catalog.DefaultDeck}
	}
	out := cmd.OutOrStdout()

	var failed int
	for _, name := range args {
		deck, err := catalog.LoadDeck(name)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", name, err)
			continue
		}
		source := "embedded"
		if mod, ok := catalog.ModTime(name); ok {
			source = "modified " + mod.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(out, "ok   %s: %q, %d slides (%s)\n", name, deck.Name, len(deck.Slides), source)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d decks invalid", failed, len(args))
	}
	return nil
}
