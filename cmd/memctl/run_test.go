package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeScenario writes a scenario script to a temp file and returns its path.
func writeScenario(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}

func resetRunFlags() {
	runWords = 0
	runWordSize = 8
	runStrategy = "best"
	runBitmap = false
	runFreeList = false
	runSummary = false
	verbose = false
	quiet = false
	jsonOut = false
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		setup       func()
		wantErr     bool
		wantContain []string
		wantJSON    bool
	}{
		{
			name:  "memory map after alloc and free",
			lines: []string{"init 32", "alloc 40", "alloc 16", "free 0"},
			setup: func() { runWordSize = 4 },
			// 10 words at 0 freed, 4 words live at 10.
			wantContain: []string{"[0, 10] - [14, 18]"},
		},
		{
			name:        "no holes",
			lines:       []string{"init 4", "alloc 16"},
			setup:       func() { runWordSize = 4 },
			wantContain: []string{"No holes"},
		},
		{
			name:        "words flag initializes",
			lines:       []string{"alloc 8"},
			setup:       func() { runWordSize = 4; runWords = 16 },
			wantContain: []string{"[2, 14]"},
		},
		{
			name:        "summary output",
			lines:       []string{"init 16", "alloc 8"},
			setup:       func() { runWordSize = 4; runSummary = true },
			wantContain: []string{"Capacity:", "16 words", "Largest hole: 14 words"},
		},
		{
			name:     "json report",
			lines:    []string{"init 16", "alloc 8"},
			setup:    func() { runWordSize = 4; jsonOut = true },
			wantJSON: true,
			wantContain: []string{
				`"holes"`, `"summary"`, `"stats"`,
			},
		},
		{
			name:    "never initialized",
			lines:   []string{"alloc 8"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetRunFlags()
			if tt.setup != nil {
				tt.setup()
			}
			path := writeScenario(t, tt.lines...)

			out, err := captureOutput(t, func() error {
				return runRun([]string{path})
			})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got output:\n%s", out)
				}
				return
			}
			if err != nil {
				t.Fatalf("runRun: %v", err)
			}
			if tt.wantJSON {
				assertJSON(t, out)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestRunCommand_BadStrategy(t *testing.T) {
	resetRunFlags()
	runStrategy = "next"
	path := writeScenario(t, "init 8")

	_, err := captureOutput(t, func() error {
		return runRun([]string{path})
	})
	if err == nil || !strings.Contains(err.Error(), "unknown strategy") {
		t.Fatalf("want unknown strategy error, got %v", err)
	}
}
