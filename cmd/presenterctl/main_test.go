package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestSeed(t *testing.T) {
	out, err := execute(t, "--driver", "memory", "seed", "--from", "2099-01-01", "--count", "3")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if strings.TrimSpace(out) != "3 added, 0 skipped" {
		t.Errorf("output = %q", out)
	}

	if _, err := execute(t, "--driver", "memory", "seed", "--event", "party", "--from", "2099-01-01"); err == nil {
		t.Error("seed accepted an invalid event type")
	}
}

func TestImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.yaml")
	doc := "2099-01-01:\n  event: fagdag\n  who: Ada\n  what: Engines\n2099-01-08:\n  event: formiddag\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--driver", "memory", "import", path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if strings.TrimSpace(out) != "2 added, 0 skipped" {
		t.Errorf("output = %q", out)
	}

	if _, err := execute(t, "--driver", "memory", "import", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("import of a missing file succeeded")
	}
}

func TestListEmpty(t *testing.T) {
	out, err := execute(t, "--driver", "memory", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.TrimSpace(out) != "No upcoming events." {
		t.Errorf("output = %q", out)
	}
}
