package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "opentik",
		Short: "A toolchain for tik documents",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
