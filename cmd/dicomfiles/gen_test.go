package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	dataDir := t.TempDir()
	writeTestFile(t, dataDir, "pydicom/liver.dcm", "liver bytes")
	writeTestFile(t, dataDir, "WG04/REF/NM1_UNC.zst", "compressed bytes")

	output := filepath.Join(t.TempDir(), "files.go")
	if err := generate(dataDir, output); err != nil {
		t.Fatalf("generate() error = %v", err)
	}

	src, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	got := string(src)

	if !strings.HasPrefix(got, "// Code generated by dicomfiles gen. DO NOT EDIT.") {
		t.Error("output missing generated-code header")
	}
	if !strings.Contains(got, `none("pydicom/liver.dcm"`) {
		t.Errorf("output missing uncompressed entry:\n%s", got)
	}
	if !strings.Contains(got, `zstd("WG04/REF/NM1_UNC"`) {
		t.Errorf("output should register the .zst file unsuffixed as zstd:\n%s", got)
	}
	if strings.Contains(got, ".zst\"") {
		t.Errorf("no name in the table may keep the .zst suffix:\n%s", got)
	}

	// Entries are emitted in name order.
	wg04 := strings.Index(got, "WG04/REF/NM1_UNC")
	pydicom := strings.Index(got, "pydicom/liver.dcm")
	if wg04 == -1 || pydicom == -1 || wg04 > pydicom {
		t.Errorf("entries out of order:\n%s", got)
	}
}

func TestGenerateEmptyDir(t *testing.T) {
	if err := generate(t.TempDir(), filepath.Join(t.TempDir(), "files.go")); err == nil {
		t.Fatal("generate() error = nil, want error for empty data dir")
	}
}

func TestHashFileDigest(t *testing.T) {
	dataDir := t.TempDir()
	writeTestFile(t, dataDir, "a/b", "content")

	row, err := hashFile(dataDir, filepath.Join(dataDir, "a", "b"))
	if err != nil {
		t.Fatalf("hashFile() error = %v", err)
	}
	if row.name != "a/b" {
		t.Errorf("row.name = %q, want %q", row.name, "a/b")
	}
	// sha256("content")
	want := "ed7002b439e9ac845f22357d822bac1444730fbdb6016d3ec9432297b9ec9f73"
	if row.hex != want {
		t.Errorf("row.hex = %q, want %q", row.hex, want)
	}
}

func writeTestFile(t *testing.T, dataDir, name, content string) {
	t.Helper()
	path := filepath.Join(dataDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
