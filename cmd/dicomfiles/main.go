// Command dicomfiles fetches and manages the cached DICOM test data set.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dicomtk/testfiles"
)

var (
	flagVerbose  bool
	flagCacheDir string
	flagBaseURL  string
)

func main() {
	cmd := &cobra.Command{
		Use:   "dicomfiles",
		Short: "dicomfiles - fetch and manage cached DICOM test assets",
		PersistentPreRun: func(*cobra.Command, []string) {
			if flagVerbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flagCacheDir, "cache-dir", "", "Cache directory (default: discovered)")
	cmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Download base URL (default: resolved from the environment)")

	cmd.AddCommand(newGetCommand(), newAllCommand(), newListCommand(), newGenCommand())

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newClient builds a client from the global flags.
func newClient() (*testfiles.Client, error) {
	opts := []testfiles.Option{}
	if flagCacheDir != "" {
		opts = append(opts, testfiles.WithCacheDir(flagCacheDir))
	}
	if flagBaseURL != "" {
		opts = append(opts, testfiles.WithBaseURL(flagBaseURL))
	}
	if flagVerbose {
		opts = append(opts, testfiles.WithLogger(slog.Default()))
	}
	return testfiles.New(opts...)
}
