// cmd/modkit/machineid_cmd.go

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creativeyann17/go-modkit/pkg/machineid"
)

func init() {
	rootCmd.AddCommand(machineIDCmd())
}

func machineIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "machine-id",
		Short: "Print this installation's identifier, creating it on first use",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cfg.ResolveDataDir()
			if err != nil {
				return err
			}
			id, err := machineid.GetOrCreate(dir)
			if err != nil {
				return err
			}
			fmt.Println(id)
			return nil
		},
	}
}
