package cmd

import (
	"log/slog"

	"github.com/eykd/doccheck/internal/config"
	"github.com/eykd/doccheck/internal/docx"
	"github.com/eykd/doccheck/internal/domain"
	"github.com/eykd/doccheck/internal/fs"
	"github.com/eykd/doccheck/internal/validator"
)

// openDocx adapts docx.Open to validator.OpenerFunc.
func openDocx(path string) (validator.Document, error) {
	doc, err := docx.Open(path)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// DefaultRunnerFactory wires the validator to the .docx reader and the OS
// file system, using the configured thresholds.
func DefaultRunnerFactory(cfg *config.Config, logger *slog.Logger) Runner {
	return validator.New(
		validator.OpenerFunc(openDocx),
		fs.OSStatter{},
		validator.WithRules(domain.NewRules(cfg.Thresholds())),
		validator.WithLogger(logger),
	)
}
