package calcount

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v\noutput: %s", args, err, buf.String())
	}
	return buf.String()
}

func TestRootHelp(t *testing.T) {
	out := runCommand(t, "--help")
	if out == "" {
		t.Fatalf("expected help output")
	}
}

func TestTrackAndExportDay(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "calorie-counter.db")
	outFile := filepath.Join(dir, "export.json")

	runCommand(t, "--db", db, "ingredient", "add", "rice", "--calories", "1.3", "--unit", "grams")
	runCommand(t, "--db", db, "ingredient", "add", "egg", "--calories", "78", "--unit", "count")

	out := runCommand(t, "--db", db, "eat", "rice", "150", "--unit", "grams", "--meal", "Lunch", "--date", "2025-01-05")
	if !strings.Contains(out, "195.0 calories") {
		t.Fatalf("eat output missing computed calories: %s", out)
	}
	runCommand(t, "--db", db, "eat", "egg", "2", "--unit", "count", "--meal", "Breakfast", "--date", "2025-01-05")

	out = runCommand(t, "--db", db, "day", "--date", "2025-01-05", "--meal", "")
	if !strings.Contains(out, "Date: 1/5/2025") {
		t.Fatalf("day output missing locale date key: %s", out)
	}
	if !strings.Contains(out, "Total: 351.0 calories") {
		t.Fatalf("day output missing total: %s", out)
	}
	if !strings.Contains(out, "Lunch: 195.0 calories") || !strings.Contains(out, "Breakfast: 156.0 calories") {
		t.Fatalf("day output missing meal totals: %s", out)
	}

	out = runCommand(t, "--db", db, "export", "--date", "2025-01-05", "--meal", "", "--out", outFile)
	if !strings.Contains(out, "Exported 2 entries") {
		t.Fatalf("export output: %s", out)
	}
	raw, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(raw), `"version": 1.1`) {
		t.Fatalf("export file missing version: %s", raw)
	}
	if !strings.Contains(string(raw), `"date": "1/5/2025"`) {
		t.Fatalf("export file missing locale date: %s", raw)
	}
}

func TestImportIntoFreshStore(t *testing.T) {
	dir := t.TempDir()
	sourceDB := filepath.Join(dir, "a.db")
	targetDB := filepath.Join(dir, "b.db")
	outFile := filepath.Join(dir, "lunch.json")

	runCommand(t, "--db", sourceDB, "ingredient", "add", "rice", "--calories", "1.3", "--unit", "grams")
	runCommand(t, "--db", sourceDB, "eat", "rice", "150", "--unit", "grams", "--meal", "Lunch", "--date", "2025-01-05")
	runCommand(t, "--db", sourceDB, "export", "--date", "2025-01-05", "--meal", "Lunch", "--out", outFile)

	out := runCommand(t, "--db", targetDB, "import", "--in", outFile)
	if !strings.Contains(out, "Merged Lunch into 1/5/2025") {
		t.Fatalf("import output: %s", out)
	}
	out = runCommand(t, "--db", targetDB, "day", "--date", "2025-01-05", "--meal", "")
	if !strings.Contains(out, "rice: 150 grams") {
		t.Fatalf("imported entry missing: %s", out)
	}
}

func TestDayRmRecomputesTotal(t *testing.T) {
	db := filepath.Join(t.TempDir(), "c.db")

	runCommand(t, "--db", db, "ingredient", "add", "rice", "--calories", "1.3", "--unit", "grams")
	runCommand(t, "--db", db, "eat", "rice", "100", "--unit", "grams", "--meal", "Lunch", "--date", "2025-01-05")
	runCommand(t, "--db", db, "eat", "rice", "200", "--unit", "grams", "--meal", "Lunch", "--date", "2025-01-05")

	out := runCommand(t, "--db", db, "day", "rm", "0", "--date", "2025-01-05")
	if !strings.Contains(out, "Total for 1/5/2025: 260.0 calories") {
		t.Fatalf("rm output: %s", out)
	}
}
