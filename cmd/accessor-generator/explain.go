package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"accessor-generator/internal/analyze"
	"accessor-generator/internal/plan"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	MaxDepth:                4,
}

func newExplainCmd(a *app) *cobra.Command {
	var (
		typeName string
		dump     bool
	)

	cmd := &cobra.Command{
		Use:   "explain [packages]",
		Short: "Show how accessor options are resolved",
		Long: `Print, for every field and accessor kind, the resolved options and the
layer each one came from. Omitted accessors are listed with the reason.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.load(cmd.Context(), cmd, defaultPatterns(args))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			found := false

			for _, rec := range res.Records() {
				if !matchesType(rec, typeName) {
					continue
				}

				found = true

				if err := plan.ExplainRecord(out, rec); err != nil {
					return err
				}

				if dump {
					dumpPlan(out, plan.ResolveRecord(rec))
				}
			}

			if typeName != "" && !found {
				return fmt.Errorf("type %q not found", typeName)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "Only explain this type (Name or pkg/path.Name)")
	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the resolved options")

	return cmd
}

func matchesType(rec *analyze.Record, name string) bool {
	return name == "" || rec.Name() == name || rec.ID.String() == name
}

func dumpPlan(w io.Writer, p *plan.RecordPlan) {
	for _, fp := range p.Fields {
		for _, acc := range fp.Accessors {
			fmt.Fprintf(w, "  %s %s: ", fp.Field.Name, acc.Kind)
			dumpConfig.Fdump(w, acc.Options)
		}
	}
}
