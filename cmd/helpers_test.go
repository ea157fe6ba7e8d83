package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/eykd/doccheck/internal/config"
	"github.com/eykd/doccheck/internal/docx/docxtest"
	"github.com/eykd/doccheck/internal/validator"
)

// cliResult captures one CLI invocation.
type cliResult struct {
	stdout string
	stderr string
	code   int
}

// testSession returns a session isolated from the process environment and
// from config files above the working directory.
func testSession(t *testing.T, factory RunnerFactory) *session {
	t.Helper()
	return &session{
		factory: factory,
		environ: func() []string { return nil },
		dir:     t.TempDir(),
	}
}

// runCLI executes the full command tree built around s.
func runCLI(t *testing.T, s *session, args ...string) cliResult {
	t.Helper()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	code := RunCLI(context.Background(), buildCommandTree(s), args, stdout, stderr)
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

// writeManual writes a test document and returns its path.
func writeManual(t *testing.T, total, h1, h2, h3 int) string {
	t.Helper()
	return docxtest.Manual(total, h1, h2, h3).Write(t, t.TempDir(), "manual.docx")
}

// mockRunner is a test double for Runner.
type mockRunner struct {
	report   *validator.Report
	stats    *validator.StyleStats
	err      error
	lastPath string
}

func (m *mockRunner) Run(_ context.Context, path string) (*validator.Report, error) {
	m.lastPath = path
	return m.report, m.err
}

func (m *mockRunner) Stats(_ context.Context, path string) (*validator.StyleStats, error) {
	m.lastPath = path
	return m.stats, m.err
}

// fixedFactory returns a factory that always hands out r and records the config.
func fixedFactory(r Runner, got **config.Config) RunnerFactory {
	return func(cfg *config.Config, _ *slog.Logger) Runner {
		if got != nil {
			*got = cfg
		}
		return r
	}
}
