// cmd/modkit/classify_cmd.go

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creativeyann17/go-modkit/pkg/classify"
)

func init() {
	rootCmd.AddCommand(classifyCmd())
}

func classifyCmd() *cobra.Command {
	var inputPath string
	var primary, scripts, globs []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Inspect an archive for mod payloads and decoy files without extracting it",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &classify.Options{
				InputPath:         inputPath,
				PrimaryExtensions: cfg.PrimaryExts,
				ScriptExtensions:  cfg.ScriptExts,
				SuspiciousGlobs:   globs,
				Logger:            logger,
			}
			if cmd.Flags().Changed("primary") {
				opts.PrimaryExtensions = primary
			}
			if cmd.Flags().Changed("script") {
				opts.ScriptExtensions = scripts
			}

			report, err := classify.Classify(opts)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(report)
			}

			fmt.Printf("Archive:          %s\n", inputPath)
			fmt.Printf("Entries:          %d (%d files)\n", report.TotalEntryCount, len(report.EntryNames))
			fmt.Printf("Primary payload:  %v\n", report.HasPrimaryPayload)
			fmt.Printf("Script payload:   %v\n", report.HasScriptPayload)
			if len(report.SuspiciousEntries) > 0 {
				fmt.Printf("Suspicious:       %d\n", len(report.SuspiciousEntries))
				for _, name := range report.SuspiciousEntries {
					fmt.Printf("  - %s\n", name)
				}
			}
			if report.LikelyFake() {
				fmt.Println("\nVerdict: likely fake (no mod payload found)")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input archive file (required)")
	cmd.Flags().StringSliceVar(&primary, "primary", nil, "Primary payload extensions (default: MODKIT_PRIMARY_EXTS or .package)")
	cmd.Flags().StringSliceVar(&scripts, "script", nil, "Script payload extensions (default: MODKIT_SCRIPT_EXTS or .ts4script)")
	cmd.Flags().StringSliceVar(&globs, "suspicious-glob", nil, "Extra glob patterns flagging entries as suspicious (e.g. **/*.exe)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}
