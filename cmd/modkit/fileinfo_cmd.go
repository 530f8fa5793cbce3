// cmd/modkit/fileinfo_cmd.go

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/creativeyann17/go-modkit/pkg/fileinfo"
	"github.com/creativeyann17/go-modkit/pkg/modkit"
)

func init() {
	rootCmd.AddCommand(hashCmd(), sizeCmd())
}

func hashCmd() *cobra.Command {
	var algo string

	cmd := &cobra.Command{
		Use:   "hash <file>",
		Short: "Print the content digest of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algorithm, err := fileinfo.ParseAlgorithm(algo)
			if err != nil {
				return err
			}
			sum, err := fileinfo.Hash(args[0], algorithm)
			if err != nil {
				return err
			}
			fmt.Printf("%s  %s\n", sum, args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&algo, "algo", "a", string(fileinfo.SHA256), "Digest algorithm: sha256 or blake3")
	return cmd
}

func sizeCmd() *cobra.Command {
	var human bool

	cmd := &cobra.Command{
		Use:   "size <path>",
		Short: "Print the size of a file, or the total size of a directory tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := os.Stat(args[0])
			if err != nil {
				return err
			}

			var size uint64
			if info.IsDir() {
				var files int
				size, files, err = fileinfo.TreeSize(args[0])
				if err != nil {
					return err
				}
				logger.Debug("tree measured", zap.String("path", args[0]), zap.Int("files", files))
			} else if size, err = fileinfo.Size(args[0]); err != nil {
				return err
			}

			if human {
				fmt.Println(modkit.FormatSize(size))
			} else {
				fmt.Println(size)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&human, "human", "H", false, "Human readable size")
	return cmd
}
