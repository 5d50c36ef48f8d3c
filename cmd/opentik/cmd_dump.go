package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jorgealdojr/opentik/format"
	"github.com/jorgealdojr/opentik/markup"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>...",
		Short: "Dump tik documents as tab-separated rows",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, filename := range args {
				loader := markup.NewLoader(markup.DefaultFactory())
				root, err := loader.LoadFile(filename)
				if err != nil {
					return err
				}
				enc := format.NewLineEncoder(os.Stdout)
				if err := enc.Encode(root); err != nil {
					return fmt.Errorf("encode %s: %w", filename, err)
				}
			}
			return nil
		},
	}
}
