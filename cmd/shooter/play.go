package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"os/user"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/console"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// Display backends
const (
	backendTUI     = "tui"
	backendConsole = "console"
)

var (
	flagConfig     string
	flagDifficulty string
	flagBackend    string
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play the shooter",
	Long: `Start playing. The mode is classic (default) or endless.

Classic is won at the configured score; endless runs until the formation
reaches you or your health runs out.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  Space      - Shoot
  Q          - Give up
  R          - Play again (after game over)
  Ctrl+C     - Exit

Difficulty options:
  easy   - More health, slower formation
  normal - The configured values
  hard   - Less health, faster and more aggressive formation
  fixed  - No per-wave speed-up

Backends:
  tui      - Bubble Tea with colors and resize handling (default)
  console  - Raw terminal drawing through tcell

Examples:
  shooter play
  shooter play endless
  shooter play --difficulty hard
  shooter play --backend console
  shooter play --config ./my-shooter.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom shooter config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagBackend, "backend", backendTUI, "Display backend: tui, console")
	cmd.Flags().StringVar(&flagPlayer, "player", "", "Player name saved with scores (default: current user)")
}

// resolveGameID maps a mode name or game ID to a registered game ID.
func resolveGameID(arg string) (string, bool) {
	switch arg {
	case "", string(shooter.ModeClassic):
		return shooter.IDClassic, true
	case string(shooter.ModeEndless):
		return shooter.IDEndless, true
	}
	return arg, registry.Exists(arg)
}

// applyGameFlags checks --config and --difficulty and hands them to the
// shooter package before any game is created.
func applyGameFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.LoadShooter(flagConfig); err != nil {
			return err
		}
	}
	shooter.SetConfigPath(flagConfig)
	shooter.SetDifficultyPreset(flagDifficulty)
	return nil
}

// playerName returns --player or the login name of the current user.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return storage.DefaultPlayer
}

// openStore opens the score database. Failure is reported and play goes
// on without scores.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	mode := ""
	if len(args) > 0 {
		mode = args[0]
	}

	gameID, ok := resolveGameID(mode)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'shooter list' to see available modes.")
		os.Exit(1)
	}
	if flagBackend != backendTUI && flagBackend != backendConsole {
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q (want tui or console)\n", flagBackend)
		os.Exit(1)
	}
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// The console backend draws at fixed positions and cannot reflow
	needW, needH := game.ScreenSize()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		if flagBackend == backendConsole {
			fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, need at least %dx%d\n", w, h, needW, needH)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs %dx%d\n", w, h, needW, needH)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	player := playerName()

	var runErr error
	switch flagBackend {
	case backendConsole:
		runErr = playConsole(game, store, player, logger)
	default:
		runErr = tui.Run(game, tui.Options{
			Store:   store,
			Logger:  logger,
			Runtime: runtimeConfig(),
			Player:  player,
		})
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playConsole runs the game on the raw terminal and saves every finished
// run with a positive score.
func playConsole(game registry.Game, store *storage.Store, player string, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	t, err := console.Open()
	if err != nil {
		return err
	}
	defer t.Close()

	return console.Run(ctx, t, game, console.Options{
		Logger:  logger,
		Runtime: runtimeConfig(),
		OnGameOver: func(state core.GameState) {
			if store == nil || state.Score <= 0 {
				return
			}
			_, err := store.SaveScore(storage.ScoreRecord{
				RunID:  uuid.NewString(),
				GameID: game.ID(),
				Player: player,
				Score:  state.Score,
				Kills:  state.Kills,
				Wave:   state.Wave,
				Level:  state.Level,
				Won:    state.Won,
			})
			if err != nil {
				logger.Warn("could not save score", "error", err)
			}
		},
	})
}
