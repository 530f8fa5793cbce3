// cmd/modkit/extract_cmd.go

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"go.uber.org/zap"

	"github.com/creativeyann17/go-modkit/pkg/extract"
	"github.com/creativeyann17/go-modkit/pkg/modkit"
)

func init() {
	rootCmd.AddCommand(extractCmd())
}

func extractCmd() *cobra.Command {
	var inputPath, outputPath string
	var threads int
	var maxMemoryMB uint64
	var verbose bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract a mod archive (zip, tar, tar.gz, tar.xz, tar.zst, tar.lz4) into a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &extract.Options{
				InputPath:  inputPath,
				OutputPath: outputPath,
				MaxThreads: threadsFlag(cmd, threads),
				MaxMemory:  maxMemoryMB * 1024 * 1024,
				Verbose:    verbose,
				Quiet:      quiet,
				Logger:     logger,
			}

			if !cmd.Flags().Changed("max-memory") {
				if total, err := totalSystemMemory(); err == nil {
					opts.MaxMemory = total / 4 * 3
				} else {
					logger.Debug("system memory unknown, extraction is not capped", zap.Error(err))
				}
			}

			if err := opts.Validate(); err != nil {
				return err
			}

			log := func(format string, args ...interface{}) {
				if !quiet {
					fmt.Printf(format+"\n", args...)
				}
			}

			log("Starting extraction...")
			log("  Input:       %s", opts.InputPath)
			log("  Output:      %s", opts.OutputPath)
			log("  Threads:     %d", opts.MaxThreads)
			if opts.MaxMemory > 0 {
				log("  Memory cap:  %s", modkit.FormatSize(opts.MaxMemory))
			}
			log("")

			var progressCb extract.ProgressCallback
			var progress *mpb.Progress

			if !quiet && !verbose {
				progressCb, progress = extract.ProgressBarCallback()
			} else if verbose {
				progressCb = func(event extract.ProgressEvent) {
					if event.Type == extract.EventFileComplete {
						fmt.Printf("  %s (%s)\n", event.FilePath, modkit.FormatSize(uint64(event.Total)))
					}
				}
			}

			result, err := extract.Extract(opts, progressCb)

			if progress != nil {
				progress.Wait()
			}

			if err != nil {
				return fmt.Errorf("%w (the output directory may be partially written; delete it and retry)", err)
			}

			if !quiet {
				fmt.Println()
				fmt.Print(extract.FormatSummary(result))
				if len(result.Skipped) > 0 {
					fmt.Printf("  Skipped:         %d special entries\n", len(result.Skipped))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input archive file (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", ".", "Output directory")
	cmd.Flags().IntVarP(&threads, "threads", "t", 0, "Parallel writers (default: MODKIT_THREADS or CPU count)")
	cmd.Flags().Uint64Var(&maxMemoryMB, "max-memory", 0, "Abort when archive content exceeds this many MB (0 = unlimited, default: 75% of RAM)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Show detailed output")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Minimal output (overrides verbose)")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}
