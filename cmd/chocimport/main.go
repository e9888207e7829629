package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Rosuav/Choc/internal/analysis"
	"github.com/Rosuav/Choc/internal/config"
	"github.com/Rosuav/Choc/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := newRootCmd()
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		fix      bool
		extcalls []string
		cfgPath  string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "chocimport [files...]",
		Short: "Keep Choc constructor aliases in sync with usage",
		Long: `chocimport maintains the autoimport alias block of Go files that
build element trees with Choc constructors:

    var (
        DIV  = choc.DIV
        PATH = choc.NSTag("svg", "path")
    ) //autoimport

Each file is scanned for constructors whose results become content,
through SetContent, ReplaceContent, content-adding Node methods, or
the returns of component functions. A file whose block matches usage
prints nothing; a drifted file prints the aliases to LOSE and GAIN
plus the full WANT list.

Examples:
  chocimport menu.go                  # Report drift
  chocimport --fix menu.go sidebar.go # Rewrite the blocks in place
  chocimport --extcall makeFooter app/*.go`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbose)
			return runAnalyze(args, fix, extcalls, cfgPath)
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Rewrite drifted autoimport blocks in place")
	cmd.Flags().StringArrayVar(&extcalls, "extcall", nil, "Externally called content function (repeatable)")
	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to a "+config.ConfigFileName+" file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

// setupLogging installs a tint handler on stderr. Colors turn off when
// stderr is not a terminal, for log lines and diagnostics both.
func setupLogging(verbose bool) {
	w := os.Stderr
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	tty := isatty.IsTerminal(w.Fd())
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    !tty,
		}),
	))
	if !tty {
		errors.DisableColors()
	}
}

func runAnalyze(files []string, fix bool, extcalls []string, cfgPath string) error {
	// An explicit --config applies to every file. Without it, each
	// file picks up the nearest config above its own directory.
	var shared *config.Config
	if cfgPath != "" {
		if _, err := os.Stat(cfgPath); err != nil {
			return fmt.Errorf("config: %w", err)
		}
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		shared = cfg
	}

	failed := 0
	for _, fn := range files {
		if err := processFile(fn, fix, extcalls, shared); err != nil {
			errors.PrintError(err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files had errors", failed, len(files))
	}
	return nil
}

func processFile(fn string, fix bool, extcalls []string, shared *config.Config) error {
	cfg := shared
	if cfg == nil {
		var err error
		cfg, err = config.Find(filepath.Dir(fn))
		if err != nil {
			return err
		}
	}
	if cfg.Path() != "" {
		slog.Debug("using config", "file", fn, "config", cfg.Path())
	}

	rep, err := analysis.NewAnalyzer(analysis.Options{
		Extcalls: extcalls,
		Config:   cfg,
		Fix:      fix,
	}).AnalyzeFile(fn)
	if err != nil {
		return err
	}

	for _, diag := range rep.Diagnostics {
		fmt.Fprint(os.Stderr, diag.Format())
	}

	if rep.InSync() {
		slog.Debug("in sync", "file", fn)
		return nil
	}

	fmt.Println(rep.File)
	if len(rep.Lose) > 0 {
		fmt.Println("LOSE:", strings.Join(rep.Lose, ", "))
	}
	if len(rep.Gain) > 0 {
		fmt.Println("GAIN:", strings.Join(rep.Gain, ", "))
	}
	fmt.Println("WANT:", rep.WantString())

	if rep.Fixed {
		slog.Info("rewrote autoimport block", "file", fn)
	}
	return nil
}
