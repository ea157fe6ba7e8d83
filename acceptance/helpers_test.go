package acceptance_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eykd/doccheck/internal/docx/docxtest"
	"github.com/eykd/doccheck/internal/domain"
)

// runDoccheck executes the doccheck binary in dir and returns stdout, stderr,
// and exit code. DOCCHECK_* variables from the test environment are dropped
// and env is added.
func runDoccheck(t *testing.T, dir string, env []string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(doccheckBinary, args...)
	cmd.Dir = dir
	cmd.Env = append(cleanEnv(), env...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("failed to run doccheck: %v", err)
		}
	}
	return stdout.String(), stderr.String(), exitCode
}

func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "DOCCHECK_") {
			env = append(env, kv)
		}
	}
	return env
}

// writeManual writes a document with the given counts at the default
// location under dir and returns its relative path.
func writeManual(t *testing.T, dir string, total, h1, h2, h3 int) string {
	t.Helper()
	path := filepath.Join(dir, domain.DefaultDocumentPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dir: %v", err)
	}
	if err := docxtest.Manual(total, h1, h2, h3).WriteFile(path); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}
	return domain.DefaultDocumentPath
}

// writeFile creates a file with the given content.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

// readFile reads a file's content.
func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	return string(content)
}
