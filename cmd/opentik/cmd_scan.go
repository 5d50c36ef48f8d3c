package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jorgealdojr/opentik/project"
	"github.com/jorgealdojr/opentik/workspace"
)

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [dir]",
		Short: "Scan a project directory for tik documents",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rootDir := "."
			if len(args) == 1 {
				rootDir = args[0]
			}

			proj, err := project.LoadFrom(rootDir)
			if err != nil {
				return err
			}

			ws := workspace.New(nil)
			var errors []string
			loaded := 0
			for _, rel := range proj.Documents {
				doc, err := ws.ScanFile(proj.DocumentPath(rel))
				if err != nil {
					errors = append(errors, fmt.Sprintf("read %s: %v", rel, err))
					continue
				}
				if doc.Err != nil {
					errors = append(errors, doc.Err.Error())
					continue
				}
				fmt.Printf("[OK] %s (%d nodes)\n", rel, len(doc.Positions))
				loaded++
			}

			fmt.Printf("\n=== SCAN COMPLETE ===\n")
			fmt.Printf("Documents loaded: %d\n", loaded)
			fmt.Printf("Errors: %d\n", len(errors))
			for _, e := range errors {
				fmt.Printf("  - %s\n", e)
			}
			return nil
		},
	}
}
