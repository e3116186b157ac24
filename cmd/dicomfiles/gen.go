package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// zstdSuffix marks files hosted in compressed form. The digest recorded in
// the table always covers the hosted bytes, so compressed files are hashed
// as-is and registered under their unsuffixed name.
const zstdSuffix = ".zst"

func newGenCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "gen <data-dir>",
		Short: "Generate the registry table from a directory of test files",
		Long: `Walk a data directory, hash every file with SHA-256, and emit the Go
source for the registry's built-in table. Files ending in ` + zstdSuffix + ` are
recorded as zstd-compressed under their unsuffixed name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "registry/files.go", "Output file")
	return cmd
}

type tableRow struct {
	name   string
	hex    string
	isZstd bool
}

func generate(dataDir, output string) error {
	var files []string
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", dataDir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found under %s", dataDir)
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("hashing"),
		progressbar.OptionThrottle(200*time.Millisecond),
	)

	rows := make([]tableRow, 0, len(files))
	for _, path := range files {
		row, err := hashFile(dataDir, path)
		if err != nil {
			fmt.Fprintln(os.Stderr)
			return err
		}
		rows = append(rows, row)
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })

	return os.WriteFile(output, renderTable(rows), 0o644)
}

func hashFile(dataDir, path string) (tableRow, error) {
	rel, err := filepath.Rel(dataDir, path)
	if err != nil {
		return tableRow{}, err
	}
	name := filepath.ToSlash(rel)

	f, err := os.Open(path)
	if err != nil {
		return tableRow{}, err
	}
	defer f.Close()

	dgst, err := digest.SHA256.FromReader(f)
	if err != nil {
		return tableRow{}, fmt.Errorf("hash %s: %w", path, err)
	}

	row := tableRow{name: name, hex: dgst.Encoded()}
	if strings.HasSuffix(name, zstdSuffix) {
		row.name = strings.TrimSuffix(name, zstdSuffix)
		row.isZstd = true
	}
	return row, nil
}

func renderTable(rows []tableRow) []byte {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by dicomfiles gen. DO NOT EDIT.\n\n")
	buf.WriteString("package registry\n\n")
	buf.WriteString("var defaultEntries = []Entry{\n")
	for _, row := range rows {
		ctor := "none"
		if row.isZstd {
			ctor = "zstd"
		}
		fmt.Fprintf(&buf, "\t%s(%q, %q),\n", ctor, row.name, row.hex)
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}
