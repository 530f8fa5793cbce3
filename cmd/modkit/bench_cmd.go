// cmd/modkit/bench_cmd.go

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creativeyann17/go-modkit/pkg/bench"
	"github.com/creativeyann17/go-modkit/pkg/modkit"
)

func init() {
	rootCmd.AddCommand(benchCmd())
}

func benchCmd() *cobra.Command {
	var dir string
	var files int
	var sizeMB int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure disk write throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				resolved, err := cfg.ResolveDataDir()
				if err != nil {
					return err
				}
				dir = resolved
			}

			opts := &bench.Options{
				Dir:       dir,
				FileCount: files,
				FileSize:  sizeMB * 1024 * 1024,
				Logger:    logger,
			}
			result, err := bench.Disk(opts)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(result)
			}
			fmt.Printf("Wrote %s in %d ms: %d MB/s\n",
				modkit.FormatSize(result.BytesWritten), result.ElapsedMS, result.SpeedMBps)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Scratch location (default: MODKIT_DATA_DIR or user config dir)")
	cmd.Flags().IntVar(&files, "files", bench.DefaultFileCount, "Number of files to write")
	cmd.Flags().IntVar(&sizeMB, "size", bench.DefaultFileSize/(1024*1024), "Size of each file in MB")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}
