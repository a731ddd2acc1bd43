package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "mirc.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadParsesPackageAndCheckSections(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
source = "main.mir"

[check]
flags = ["sanitize"]
optimize = true
mir_dump = "build/out.mir"
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Source != "main.mir" {
		t.Errorf("Source = %q, want main.mir", m.Source)
	}
	if !m.Optimize {
		t.Error("expected Optimize = true")
	}
	if m.MIRDump != "build/out.mir" {
		t.Errorf("MIRDump = %q, want build/out.mir", m.MIRDump)
	}
	if len(m.Flags) != 1 || m.Flags[0] != "sanitize" {
		t.Errorf("Flags = %v, want [sanitize]", m.Flags)
	}
}

func TestLoadRejectsMissingPackageSection(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[check]
optimize = true
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing [package]")
	}
}

func TestLoadRejectsUnknownFlag(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
source = "main.mir"

[check]
flags = ["not-a-real-flag"]
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestLoadRejectsDuplicateFlag(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
source = "main.mir"

[check]
flags = ["sanitize", "sanitize"]
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for duplicate flag")
	}
}

func TestFindWalksUpToParentDirectory(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[package]
source = "main.mir"
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !ok {
		t.Fatal("expected to find manifest in ancestor directory")
	}
	want := filepath.Join(root, "mirc.toml")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestLoadFromDirReportsNotFound(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("LoadFromDir: %v", err)
	}
	if ok {
		t.Fatal("expected ok = false when no manifest exists")
	}
}
