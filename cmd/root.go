// Package cmd contains the CLI commands for the doccheck application.
package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/eykd/doccheck/internal/config"
	"github.com/eykd/doccheck/internal/domain"
	"github.com/eykd/doccheck/internal/fs"
	"github.com/eykd/doccheck/internal/messages"
	"github.com/eykd/doccheck/internal/validator"
	"github.com/spf13/cobra"
)

// Runner validates a document and reports its style statistics.
type Runner interface {
	Run(ctx context.Context, path string) (*validator.Report, error)
	Stats(ctx context.Context, path string) (*validator.StyleStats, error)
}

// RunnerFactory builds the Runner for one invocation from its configuration.
type RunnerFactory func(cfg *config.Config, logger *slog.Logger) Runner

// session holds the per-invocation state shared by the root command and its
// subcommands.
type session struct {
	factory RunnerFactory
	environ func() []string
	dir     string

	cfgFile string
	jsonOut bool

	cfg    *config.Config
	loc    *messages.Localizer
	colors palette
	runner Runner
}

// prepare loads the configuration and builds the runner. A nil factory
// leaves the validator without a document parser.
func (s *session) prepare(cmd *cobra.Command) error {
	cfg, err := config.Load(config.Options{
		File:    s.cfgFile,
		Dir:     s.dir,
		Flags:   cmd.Flags(),
		Environ: s.environ,
	})
	if err != nil {
		return &ContextError{Op: "loading configuration", Err: err}
	}
	if s.jsonOut {
		cfg.Format = config.FormatJSON
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	if cfg.File != "" {
		logger.Debug("configuration loaded", "file", cfg.File)
	}

	s.cfg = cfg
	s.loc = messages.New(cfg.Lang)
	s.colors = newPalette(cfg.NoColor)
	if s.factory != nil {
		s.runner = s.factory(cfg, logger)
	} else {
		s.runner = validator.New(nil, fs.OSStatter{}, validator.WithLogger(logger))
	}
	return nil
}

// fail converts a runner error into a localized RunError.
func (s *session) fail(err error) error {
	if err == nil {
		return nil
	}
	code := ExitFailure
	if s.cfg.DistinctExitCodes {
		code = distinctExitCode(err)
	}
	return &RunError{Err: err, Msg: s.loc.Error(err), Code: code}
}

// structured reports whether output is machine-readable.
func (s *session) structured() bool {
	return s.cfg.Format == config.FormatJSON || s.cfg.Format == config.FormatYAML
}

// encode writes v in the configured structured format.
func (s *session) encode(w io.Writer, v interface{}) {
	if s.cfg.Format == config.FormatYAML {
		writeYAML(w, v)
		return
	}
	writeJSON(w, v)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// NewRootCmd creates the root command, which validates the configured document.
func NewRootCmd(factory RunnerFactory) *cobra.Command {
	return newRootCmd(&session{factory: factory})
}

func newRootCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doccheck",
		Short: "Check that the user documentation meets minimum content rules",
		Long: "doccheck opens the user documentation (.docx) and checks that it has at least\n" +
			"three top-level headings and fifty paragraphs. It exits 0 when every rule\n" +
			"passes and 1 otherwise.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.prepare(cmd); err != nil {
				return err
			}
			return runValidateAndReport(cmd, s)
		},
	}

	// Add persistent flags (available to all subcommands)
	pf := cmd.PersistentFlags()
	pf.StringVar(&s.cfgFile, "config", "", "Config file (default: nearest "+config.FileName+")")
	pf.String("path", domain.DefaultDocumentPath, "Document to check")
	pf.String("format", config.FormatText, "Output format: text, json or yaml")
	pf.BoolVar(&s.jsonOut, "json", false, "Output results as JSON (same as --format json)")
	pf.String("lang", config.LangEnglish, "Output language: en or hu")
	pf.Bool("no-color", false, "Disable colored output")
	pf.BoolP("verbose", "v", false, "Enable debug logging to stderr")
	pf.Int("min-heading1", domain.MinHeading1, "Minimum number of Heading 1 paragraphs")
	pf.Int("min-paragraphs", domain.MinParagraphs, "Minimum number of paragraphs")
	pf.Bool("distinct-exit-codes", false, "Use a distinct exit code per failure kind")

	return cmd
}

// BuildCommandTree returns the root command with all subcommands registered.
func BuildCommandTree(factory RunnerFactory) *cobra.Command {
	return buildCommandTree(&session{factory: factory})
}

func buildCommandTree(s *session) *cobra.Command {
	root := newRootCmd(s)
	root.AddCommand(newStatsCmd(s))
	root.AddCommand(NewVersionCmd())
	return root
}
