// shooter is a console arcade shooter: steer a ship along the bottom of the
// field, shoot down the descending enemy formation and survive its fire.
//
// Usage:
//
//	shooter                  - Play the classic game
//	shooter play [mode]      - Play classic or endless mode
//	shooter list             - List available modes
//	shooter menu             - Pick a mode interactively
//	shooter scores [mode]    - Show high scores and stats
//	shooter serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 20)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.shooter/scores.db)
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Console Shooter - an arcade shooter in your terminal",
	Long: `Console Shooter is a terminal arcade game. Move your ship along the
bottom of the field, shoot down the enemy formation before it reaches you
and dodge its fire.

Running shooter without a command starts the classic game.

Available commands:
  play     - Play classic or endless mode
  list     - Show available modes
  menu     - Interactive mode picker
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  shooter
  shooter play endless
  shooter play --difficulty hard
  shooter menu
  shooter serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runPlay(cmd, []string{string(shooter.ModeClassic)})
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shooter/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard while playing)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// The root command plays too, so it takes the play flags
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the program logger. Interactive commands pass
// io.Discard as the fallback so nothing is drawn over the game; a
// --log-file always wins. The returned close func is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, closeFn, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	shooter.SetLogger(logger)
	return logger, closeFn, nil
}

// runtimeConfig returns the tick rate and seed from the global flags.
func runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
