package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gen [packages]",
		Short: "Generate accessors for the matching packages",
		Long: `Generate accessors for every annotated struct of the matching packages.
One file is written per package directory; files whose content did not
change are left untouched.

Examples:
  accessor-generator gen ./...
  accessor-generator gen --options accessors.yaml ./internal/geo
  accessor-generator gen --dry-run .`,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.generate(cmd.Context(), cmd, defaultPatterns(args))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range report.Files {
				if a.settings.DryRun {
					fmt.Fprintf(out, "would write %s (%d methods)\n", f.Path, f.Methods)
				} else {
					fmt.Fprintf(out, "%s (%d methods)\n", f.Path, f.Methods)
				}
			}

			return nil
		},
	}
}
