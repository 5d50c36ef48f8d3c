package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jorgealdojr/opentik/format"
	"github.com/jorgealdojr/opentik/markup"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a tik document and print its tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := markup.NewLoader(markup.DefaultFactory())
			root, err := loader.LoadFile(args[0])
			if err != nil {
				return err
			}

			var encoder format.Encoder
			switch outputFormat {
			case "pretty":
				pretty := format.NewPrettyEncoder(os.Stdout)
				if noColor {
					pretty.DisableColor()
				}
				encoder = pretty
			case "tsv":
				encoder = format.NewLineEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(root); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "pretty", "output format (pretty, tsv)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}
