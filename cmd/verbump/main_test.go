package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chtmp switches the working directory to a fresh temp dir so the CLI
// never picks up a stray config file, and returns that dir.
func chtmp(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
	return tmp
}

func TestRunCLI_SetAcrossFiles(t *testing.T) {
	tmp := chtmp(t)

	versionFile := filepath.Join(tmp, "VERSION")
	manifest := filepath.Join(tmp, "package.json")
	source := filepath.Join(tmp, "app.go")

	if err := os.WriteFile(versionFile, []byte("1.0.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(manifest, []byte(`{"name": "demo", "version": "1.0.0"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(source, []byte("const VERSION = \"1.0.0\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := runCLI([]string{"verbump", "set", "--yes", "2.1.0", versionFile, manifest, source})
	if err != nil {
		t.Fatalf("runCLI(set) error = %v", err)
	}

	data, err := os.ReadFile(versionFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "2.1.0\n" {
		t.Errorf("VERSION = %q", data)
	}

	data, err = os.ReadFile(manifest)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"version": "2.1.0"`) {
		t.Errorf("package.json not updated:\n%s", data)
	}

	data, err = os.ReadFile(source)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "const VERSION = \"2.1.0\"\n" {
		t.Errorf("app.go = %q", data)
	}
}

func TestRunCLI_SetWithoutVersion(t *testing.T) {
	chtmp(t)

	if err := runCLI([]string{"verbump", "set"}); err == nil {
		t.Fatal("runCLI(set) without a version succeeded, want error")
	}
}

func TestRunCLI_SetReportsFailedFiles(t *testing.T) {
	tmp := chtmp(t)

	ok := filepath.Join(tmp, "VERSION")
	if err := os.WriteFile(ok, []byte("1.0.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(tmp, "nope", "VERSION")

	err := runCLI([]string{"verbump", "set", "--yes", "2.0.0", ok, missing})
	if err == nil {
		t.Fatal("runCLI(set) succeeded despite missing file")
	}

	// The good file was still updated.
	data, readErr := os.ReadFile(ok)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(data) != "2.0.0\n" {
		t.Errorf("VERSION = %q, want updated", data)
	}
}

func TestRunCLI_BumpUsesConfigFiles(t *testing.T) {
	tmp := chtmp(t)

	versionFile := filepath.Join(tmp, "VERSION")
	if err := os.WriteFile(versionFile, []byte("1.2.3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmp, ".verbump.yaml"), []byte("files:\n  - path: VERSION\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runCLI([]string{"verbump", "bump", "minor"}); err != nil {
		t.Fatalf("runCLI(bump) error = %v", err)
	}

	data, err := os.ReadFile(versionFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1.3.0\n" {
		t.Errorf("VERSION = %q, want 1.3.0", data)
	}
}

func TestRunCLI_BumpPerEntryCommands(t *testing.T) {
	tmp := chtmp(t)

	versionFile := filepath.Join(tmp, "VERSION")
	if err := os.WriteFile(versionFile, []byte("1.2.3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	manifest := filepath.Join(tmp, "package.json")
	if err := os.WriteFile(manifest, []byte(`{"version": "1.2.3"}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := "files:\n  - path: VERSION\n    cmd: major\n  - path: package.json\n    cmd: patch\n"
	if err := os.WriteFile(filepath.Join(tmp, ".verbump.yaml"), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runCLI([]string{"verbump", "bump"}); err != nil {
		t.Fatalf("runCLI(bump) error = %v", err)
	}

	data, err := os.ReadFile(versionFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "2.0.0\n" {
		t.Errorf("VERSION = %q, want 2.0.0", data)
	}

	data, err = os.ReadFile(manifest)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"version": "1.2.4"`) {
		t.Errorf("package.json = %q, want 1.2.4", data)
	}
}

func TestRunCLI_BumpUnknownCommand(t *testing.T) {
	chtmp(t)

	if err := runCLI([]string{"verbump", "bump", "gigantic"}); err == nil {
		t.Fatal("runCLI(bump gigantic) succeeded, want error")
	}
}

func TestRunCLI_ShowMissingFile(t *testing.T) {
	tmp := chtmp(t)

	if err := runCLI([]string{"verbump", "show", filepath.Join(tmp, "absent.json")}); err == nil {
		t.Fatal("runCLI(show) succeeded on missing file")
	}
}

func TestRunCLI_Doctor(t *testing.T) {
	tmp := chtmp(t)

	good := filepath.Join(tmp, "VERSION")
	if err := os.WriteFile(good, []byte("1.0.0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runCLI([]string{"verbump", "doctor", good}); err != nil {
		t.Errorf("runCLI(doctor) error = %v", err)
	}

	bad := filepath.Join(tmp, "broken.json")
	if err := os.WriteFile(bad, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := runCLI([]string{"verbump", "doctor", bad}); err == nil {
		t.Error("runCLI(doctor) succeeded on broken JSON")
	}
}
