package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chriscorrea/tally/internal/app"
	"github.com/chriscorrea/tally/internal/config"
	"github.com/chriscorrea/tally/internal/count"
	"github.com/chriscorrea/tally/internal/report"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// buildConfig constructs an app.Config from command flags, arguments, and
// the optional config file. Flags explicitly set on the command line
// override file values.
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	// get flag values
	lines, _ := cmd.Flags().GetBool("lines")
	words, _ := cmd.Flags().GetBool("words")
	bytes, _ := cmd.Flags().GetBool("bytes")
	chars, _ := cmd.Flags().GetBool("chars")
	maxLine, _ := cmd.Flags().GetBool("max-line-length")
	all, _ := cmd.Flags().GetBool("all")
	formatFlag, _ := cmd.Flags().GetString("format")
	chunkSize, _ := cmd.Flags().GetInt("chunk-size")
	workers, _ := cmd.Flags().GetInt("workers")
	configFile, _ := cmd.Flags().GetString("config")
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")

	fileCfg, err := config.Load(configFile)
	if err != nil {
		return app.Config{}, err
	}

	// determine requested kinds
	var kinds count.Kinds
	switch {
	case all:
		kinds = count.Default
	default:
		if lines {
			kinds |= count.Lines
		}
		if words {
			kinds |= count.Words
		}
		if bytes {
			kinds |= count.Bytes
		}
		if chars {
			kinds |= count.Chars
		}
	}
	if kinds == 0 && !maxLine {
		// no selection falls back to classic wc output
		kinds = count.Default
	}
	if maxLine {
		kinds |= count.MaxLineLength
	}

	// flags override the config file, file overrides built-in defaults
	if !cmd.Flags().Changed("format") && fileCfg.Format != "" {
		formatFlag = fileCfg.Format
	}
	format, err := report.ParseFormat(formatFlag)
	if err != nil {
		return app.Config{}, err
	}
	if !cmd.Flags().Changed("chunk-size") {
		chunkSize = fileCfg.ChunkSize
	}
	if !cmd.Flags().Changed("workers") {
		workers = fileCfg.Workers
	}

	return app.Config{
		Sources:   args,
		Kinds:     kinds,
		Format:    format,
		ChunkSize: chunkSize,
		Workers:   workers,
		Quiet:     quiet,
		Debug:     debug,
	}, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	level := slog.LevelError
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "tally [flags] [FILE...]",
	Short: "Count lines, words, bytes, and characters",
	Long: `Tally counts lines, words, bytes, characters, and maximum line length
in files or standard input, scanning large inputs in parallel. With no FILE,
or when FILE is -, it reads standard input.

Examples:
  tally notes.txt
  tally -lwc *.go
  cat access.log | tally -L
  tally -f json a.txt b.txt`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd, args)
		if err != nil {
			return err
		}

		setupLogger(cfg.Debug)

		result, err := app.Run(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		fmt.Print(result)
		return nil
	},
}

func init() {
	// count selection flags; none selected means lines, words, and bytes
	rootCmd.Flags().BoolP("lines", "l", false, "Print the line counts")
	rootCmd.Flags().BoolP("words", "w", false, "Print the word counts")
	rootCmd.Flags().BoolP("bytes", "c", false, "Print the byte counts")
	rootCmd.Flags().BoolP("chars", "m", false, "Print the character counts")
	rootCmd.Flags().BoolP("max-line-length", "L", false, "Print the maximum line length")
	rootCmd.Flags().BoolP("all", "a", false, "Print all counts (lines, words, bytes)")

	rootCmd.Flags().StringP("format", "f", "plain", "Output format (plain, human, json)")

	// tuning flags
	rootCmd.Flags().Int("chunk-size", 0, "Scan chunk size in bytes (default 1 MiB)")
	rootCmd.Flags().Int("workers", 0, "Maximum concurrent scan workers (default: number of CPUs)")

	rootCmd.Flags().String("config", "", "Configuration file path (default .tally.yml if present)")
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress the progress indicator")
	rootCmd.Flags().Bool("debug", false, "Enable debug logging")
	_ = rootCmd.Flags().MarkHidden("debug")
}

func main() {
	// signal handling for graceful shutdown on Ctrl-C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := fang.Execute(ctx, rootCmd); err != nil {
		os.Exit(1)
	}
}
