package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zackbart/sharkit/internal/catalog"
	"github.com/zackbart/sharkit/internal/config"
	"github.com/zackbart/sharkit/internal/logging"
	"github.com/zackbart/sharkit/internal/output"
	"github.com/zackbart/sharkit/internal/session"
	"github.com/zackbart/sharkit/internal/ui"
)

var version = "0.0.0-dev"

var errNoTerminal = errors.New("no terminal to draw the picker on (stderr is not a tty)")

// isTerminal is swapped out in tests.
var isTerminal = func(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }

const longHelp = `sharkit lists the files of a directory, lets you pick some of them and
prints the picked paths, one per line, relative to the working directory.

Keys:
  ↑/k ↓/j          move (wraps around)
  space            toggle the file under the cursor
  a / A            select all
  n                select none
  shift+1..9       select only the 1st..9th file
  shift+0          select only the last file
  p                toggle the preview pane
  enter            confirm and print the selection (exit 0)
  q / esc          cancel (exit 130)

Every flag can also be set through the environment, e.g. SHARKIT_NO_PREVIEW=true.`

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	code := output.ExitConfirmed
	cmd := newRootCmd(stdout, &code)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "sharkit: %v\n", err)
		return output.ExitFailure
	}
	return code
}

func newRootCmd(stdout io.Writer, code *int) *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:           "sharkit",
		Short:         "Pick files from a directory interactively",
		Long:          longHelp,
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, cmd.Flags())
			if err != nil {
				return err
			}
			c, err := run(cfg, stdout)
			*code = c
			return err
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(cfg config.Config, stdout io.Writer) (int, error) {
	logger, closeLog, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return output.ExitFailure, err
	}
	defer func() { _ = closeLog() }()

	cat, err := buildCatalog(cfg, logger)
	if err != nil {
		return output.ExitFailure, err
	}
	logger.Info("starting picker", "dir", cfg.Dir, "entries", len(cat), "version", version)

	if !isTerminal(os.Stderr) {
		return output.ExitFailure, errNoTerminal
	}

	s := session.New(cat, session.WithPreviewVisible(!cfg.NoPreview))

	state, err := ui.Run(s, ui.Options{
		Dir:       displayDir(cfg.Dir),
		Highlight: cfg.Highlight,
		Markdown:  cfg.Markdown,
		Style:     cfg.Style,
		Logger:    logger,
		Output:    os.Stderr,
		InputTTY:  !isTerminal(os.Stdin),
	})
	if err != nil {
		return output.ExitFailure, err
	}
	logger.Info("picker finished", "state", state.String(), "selected", s.SelectedCount())

	return finish(state, s, stdout)
}

// buildCatalog lists cfg.Dir with ignore flags from the ignore file and the
// extra glob patterns.
func buildCatalog(cfg config.Config, logger *slog.Logger) (catalog.Catalog, error) {
	matcher := catalog.AnyOf(
		catalog.LoadGitignore(cfg.Dir, cfg.IgnoreFile, logger),
		catalog.CompileGlobs(cfg.Ignore, logger),
	)
	return catalog.Build(cfg.Dir, matcher, catalog.WithLogger(logger))
}

// finish prints the selection on confirm and maps the state to an exit code.
// A cancelled pick prints nothing whatever was selected.
func finish(state ui.State, s *session.Session, stdout io.Writer) (int, error) {
	if state != ui.Confirmed {
		return output.ExitCancelled, nil
	}
	if err := output.Write(stdout, ".", s.SelectedPaths()); err != nil {
		return output.ExitFailure, err
	}
	return output.ExitConfirmed, nil
}

func displayDir(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}
