package main

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func newAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Prefetch every registered asset into the cache",
		Long:  "Download every asset in the registry. This fetches the whole data set; prefer `dicomfiles get` for the files you need.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			names := client.Registry().Names()
			bar := progressbar.NewOptions(len(names),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetWidth(30),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("fetching"),
				progressbar.OptionThrottle(200*time.Millisecond),
			)

			for _, name := range names {
				if _, err := client.Path(cmd.Context(), name); err != nil {
					fmt.Fprintln(os.Stderr)
					return err
				}
				_ = bar.Add(1)
			}
			_ = bar.Finish()
			fmt.Fprintln(os.Stderr)
			fmt.Fprintf(cmd.OutOrStdout(), "%d assets cached under %s\n", len(names), client.CacheDir())
			return nil
		},
	}
}
