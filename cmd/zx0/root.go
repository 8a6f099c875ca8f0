package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "zx0",
		Short: "zx0 compresses and decompresses files in the ZX0 format",
	}
	root.AddCommand(newCompressCmd())
	root.AddCommand(newDecompressCmd())
	return root
}
