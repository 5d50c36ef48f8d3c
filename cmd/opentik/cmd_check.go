package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jorgealdojr/opentik/workspace"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Check tik documents and report parse errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := workspace.New(nil)
			failed := 0
			for _, filename := range args {
				doc, err := ws.ScanFile(filename)
				if err != nil {
					fmt.Printf("[ERROR] %s: %v\n", filename, err)
					failed++
					continue
				}
				if doc.Err != nil {
					fmt.Printf("[ERROR] %v\n", doc.Err)
					failed++
					continue
				}
				fmt.Printf("[OK] %s (%d nodes)\n", filename, countNodes(doc))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed", failed, len(args))
			}
			return nil
		},
	}
}

func countNodes(doc *workspace.Document) int {
	return len(doc.Positions)
}
