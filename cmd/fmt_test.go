package cmd

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/qif"
	"github.com/google/subcommands"
)

const messyQIF = `!Type:Bank
D02/07/2021
T1,000.00
PEmployer
LSalary
^
D02/08/2021
T$-50.00
PSupermarket
LGroceries
^
`

// Helper function to create a temporary QIF file
func createTempQIF(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.qif")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func canonical(t *testing.T, content string) string {
	t.Helper()
	q, err := qif.ParseString(content, parseConfig())
	if err != nil {
		t.Fatal(err)
	}
	return qif.EncodeString(q)
}

// TestFmtToFileOutput tests writing the canonical form to a file.
func TestFmtToFileOutput(t *testing.T) {
	input := createTempQIF(t, messyQIF)
	output := filepath.Join(t.TempDir(), "out.qif")

	cmd := &fmtCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Set("o", output)
	f.Parse([]string{input})

	status := cmd.Execute(context.Background(), f)
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	want := canonical(t, messyQIF)
	if string(got) != want {
		t.Errorf("Output mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
	// the canonical form is stable under a second pass.
	if again := canonical(t, string(got)); again != string(got) {
		t.Errorf("Canonical form not stable.\nFirst:\n%s\nSecond:\n%s", got, again)
	}
}

// TestFmtToStdoutOutput tests writing the canonical form to stdout.
func TestFmtToStdoutOutput(t *testing.T) {
	input := createTempQIF(t, messyQIF)

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	cmd := &fmtCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Parse([]string{input})

	status := cmd.Execute(context.Background(), f)

	w.Close()
	got, _ := io.ReadAll(r)

	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	want := canonical(t, messyQIF)
	if string(got) != want {
		t.Errorf("Stdout mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

// TestFmtMissingArgument tests the error path without a file argument.
func TestFmtMissingArgument(t *testing.T) {
	cmd := &fmtCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Parse(nil)

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitFailure {
		t.Errorf("Expected ExitFailure, got %v", status)
	}
}

// TestCsvToStdout tests the csv command output.
func TestCsvToStdout(t *testing.T) {
	input := createTempQIF(t, messyQIF)

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	cmd := &csvCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Parse([]string{input})

	status := cmd.Execute(context.Background(), f)

	w.Close()
	got, _ := io.ReadAll(r)

	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	lines := strings.Split(strings.TrimSpace(string(got)), "\n")
	if len(lines) != 3 { // header + 2 transactions
		t.Fatalf("got %d CSV lines, want 3:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[1], "Employer") || !strings.Contains(lines[2], "Supermarket") {
		t.Errorf("unexpected rows:\n%s", got)
	}
}
