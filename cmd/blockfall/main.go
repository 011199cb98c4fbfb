// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall                 - Play (same as "blockfall play")
//	blockfall play [game]     - Play a game (default: blocks)
//	blockfall scores [game]   - Show high scores
//	blockfall list            - List available games
//	blockfall serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.blockfall/scores.db)
//	--config <path>    - Game config YAML
//	--sound            - Ring the terminal bell on line clears
//	--log-file <path>  - Write logs to a file
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blocks"
)

const defaultGame = "blocks"

var (
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagSound   bool
	flagLogFile string
	flagDebug   bool
)

var (
	logger    *log.Logger
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - falling blocks in your terminal",
	Long: `Blockfall is a falling-block puzzle game for the terminal.

Pieces fall on a timer; fill a row to clear it. Every ten lines the level
goes up and pieces fall faster.

Available commands:
  play     - Play the game (default)
  scores   - View high scores
  list     - Show available games
  serve    - Start SSH server for remote play

Examples:
  blockfall
  blockfall play --seed 42
  blockfall scores
  blockfall serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.blockfall/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to game config YAML")
	pf.BoolVar(&flagSound, "sound", false, "Ring the terminal bell for placed pieces and line clears")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
}

// setupLogging builds the process logger and applies flags that every
// command shares. Without --log-file the interactive commands log nowhere,
// since stderr is the game screen.
func setupLogging(cmd *cobra.Command, _ []string) error {
	var out io.Writer = io.Discard
	if cmd == serveCmd {
		out = os.Stderr
	}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		logCloser = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	blocks.SetConfigPath(flagConfig)
	return nil
}
