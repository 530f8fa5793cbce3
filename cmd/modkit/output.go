// cmd/modkit/output.go

package main

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// printJSON writes v to stdout as indented JSON
func printJSON(v any) error {
	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
