package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"masterylint/internal/lint"
)

func TestReportCommandWritesHTML(t *testing.T) {
	root, specPath := writeLintWorkspace(t, map[string]string{"cow.md": cleanLesson})

	var out, errBuf bytes.Buffer
	if code := Run([]string{"lint", "--spec", specPath, "--ui", "plain"}, &out, &errBuf); code != ExitOK {
		t.Fatalf("lint failed with %d: %s", code, errBuf.String())
	}
	runDir := findRunDir(t, root)
	runID := filepath.Base(runDir)

	target := filepath.Join(t.TempDir(), "report.html")
	out.Reset()
	errBuf.Reset()
	code := Run([]string{"report", "--spec", specPath, "--run", runID, "--output", target}, &out, &errBuf)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errBuf.String())
	}
	if !strings.Contains(out.String(), "Report written to "+target) {
		t.Fatalf("unexpected output %q", out.String())
	}

	html, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(html), runID) {
		t.Fatalf("expected report to mention run %s", runID)
	}
	if !strings.Contains(string(html), "lessons/cow.md") {
		t.Fatalf("expected report to list the lesson file")
	}
}

func TestReportCommandRenderFailure(t *testing.T) {
	root, specPath := writeLintWorkspace(t, map[string]string{"cow.md": cleanLesson})

	var out, errBuf bytes.Buffer
	if code := Run([]string{"lint", "--spec", specPath, "--ui", "plain"}, &out, &errBuf); code != ExitOK {
		t.Fatalf("lint failed with %d: %s", code, errBuf.String())
	}
	runID := filepath.Base(findRunDir(t, root))

	orig := buildReportHTML
	buildReportHTML = func(lint.Results) (string, error) {
		return "", errors.New("render exploded")
	}
	t.Cleanup(func() { buildReportHTML = orig })

	out.Reset()
	errBuf.Reset()
	code := Run([]string{"report", "--spec", specPath, "--run", runID}, &out, &errBuf)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errBuf.String(), "render report") {
		t.Fatalf("expected render error, got %q", errBuf.String())
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
}

func TestReportCommandUnknownRun(t *testing.T) {
	_, specPath := writeLintWorkspace(t, map[string]string{"cow.md": cleanLesson})

	var out, errBuf bytes.Buffer
	if code := Run([]string{"lint", "--spec", specPath, "--ui", "plain"}, &out, &errBuf); code != ExitOK {
		t.Fatalf("lint failed with %d: %s", code, errBuf.String())
	}

	out.Reset()
	errBuf.Reset()
	code := Run([]string{"report", "--spec", specPath, "--run", "20200101T000000Z-ffffffffffff"}, &out, &errBuf)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errBuf.String(), "Report failed") {
		t.Fatalf("expected failure message, got %q", errBuf.String())
	}
}
