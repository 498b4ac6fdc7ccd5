package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"accessor-generator/internal/analyze"
	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/gen"
	"accessor-generator/internal/mapping"
)

// app carries state shared by the subcommands once flags are parsed.
type app struct {
	settings *settings
	log      *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	v := newViper()

	root := &cobra.Command{
		Use:   "accessor-generator",
		Short: "Generate accessor methods for annotated Go structs",
		Long: `accessor-generator writes getters, mutable getters and setters for Go
structs marked with //accessor:gen, or listed in a YAML options file.

Options are layered: field and kind, field, container defaults for the
kind, container defaults for all kinds, then the naming convention
(get_, get_mut_ with a _mut suffix, set_).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(v, cmd)
			if err != nil {
				return err
			}

			log, err := newLogger(s.Verbose)
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}

			a.settings = s
			a.log = log

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	addConfigFlags(root)

	root.AddCommand(newGenCmd(a))
	root.AddCommand(newExplainCmd(a))
	root.AddCommand(newWatchCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

func (a *app) printer() diagnostic.Printer {
	return diagnostic.Printer{NoColor: a.settings.NoColor, Quiet: !a.settings.Verbose}
}

func defaultPatterns(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}

	return args
}

// load analyzes the packages matching patterns, prints the diagnostics
// and fails when any of them is an error.
func (a *app) load(ctx context.Context, cmd *cobra.Command, patterns []string) (*analyze.Result, error) {
	var opts *mapping.File

	if a.settings.Options != "" {
		var err error

		opts, err = mapping.LoadFile(a.settings.Options)
		if err != nil {
			return nil, err
		}
	}

	analyzer := analyze.NewAnalyzer(analyze.Config{
		BuildTags: a.settings.Tags,
		Tests:     a.settings.Tests,
		Options:   opts,
		Logger:    a.log,
	})

	res, err := analyzer.LoadPackages(ctx, patterns...)
	if err != nil {
		return nil, err
	}

	a.printer().Print(cmd.ErrOrStderr(), &res.Diagnostics)

	if err := res.Diagnostics.Error(); err != nil {
		return nil, fmt.Errorf("invalid accessor options: %d error(s)", len(res.Diagnostics.Errors))
	}

	return res, nil
}

// generate runs one full load and generation pass.
func (a *app) generate(ctx context.Context, cmd *cobra.Command, patterns []string) (*gen.Report, error) {
	res, err := a.load(ctx, cmd, patterns)
	if err != nil {
		return nil, err
	}

	report, err := gen.NewGenerator(a.settings.genConfig(a.log)).Generate(ctx, res.Packages)
	if report != nil {
		a.printer().Print(cmd.ErrOrStderr(), &report.Diagnostics)
	}

	if err != nil {
		return nil, err
	}

	return report, nil
}
