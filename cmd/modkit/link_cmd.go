// cmd/modkit/link_cmd.go

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creativeyann17/go-modkit/pkg/links"
)

func init() {
	rootCmd.AddCommand(linkCmd(), unlinkCmd(), linksCmd())
}

func linkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link <source-dir> <link-path>",
		Short: "Create a directory link (junction on Windows), replacing any existing one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := links.Create(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("%s -> %s\n", args[1], args[0])
			return nil
		},
	}
}

func unlinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlink <link-path>",
		Short: "Remove a directory link, leaving its target untouched",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return links.Remove(args[0])
		},
	}
}

func linksCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "links <dir>",
		Short: "List the links directly inside a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := links.List(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(found)
			}
			for _, path := range found {
				fmt.Println(path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the list as JSON")
	return cmd
}
