package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eykd/doccheck/internal/config"
	"github.com/eykd/doccheck/internal/docx/docxtest"
	"github.com/eykd/doccheck/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestBuildCommandTree_RegistersSubcommands(t *testing.T) {
	root := BuildCommandTree(DefaultRunnerFactory)

	for _, name := range []string{"stats", "version"} {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}

// TestBuildCommandTree_NilFactoryReportsMissingDependency verifies that a
// tree built without a document parser fails every run with install guidance.
func TestBuildCommandTree_NilFactoryReportsMissingDependency(t *testing.T) {
	path := writeManual(t, 60, 3, 0, 0)

	for _, args := range [][]string{
		{"--path", path},
		{"stats", "--path", path},
	} {
		t.Run(args[0], func(t *testing.T) {
			res := runCLI(t, testSession(t, nil), args...)

			if res.code != 1 {
				t.Errorf("exit code = %d, want 1", res.code)
			}
			if !strings.Contains(res.stderr, "go install") {
				t.Errorf("stderr = %q, want install guidance", res.stderr)
			}
		})
	}
}

func TestDefaultRunnerFactory_UsesConfiguredThresholds(t *testing.T) {
	path := docxtest.Manual(5, 1, 0, 0).Write(t, t.TempDir(), "short.docx")
	cfg := &config.Config{Rules: config.Rules{MinHeading1: 1, MinParagraphs: 5}}

	runner := DefaultRunnerFactory(cfg, slog.New(slog.DiscardHandler))
	report, err := runner.Run(t.Context(), path)

	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Counts != (domain.Counts{Total: 5, Heading1: 1}) {
		t.Errorf("Counts = %+v, want {5 1 0 0}", report.Counts)
	}
}

func TestOpenDocx_ReturnsNilDocumentOnError(t *testing.T) {
	doc, err := openDocx(filepath.Join(t.TempDir(), "missing.docx"))
	if err == nil {
		t.Fatal("expected error")
	}
	if doc != nil {
		t.Errorf("doc = %#v, want nil interface", doc)
	}
}
