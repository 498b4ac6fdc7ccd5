package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"accessor-generator/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	var dirs []string

	cmd := &cobra.Command{
		Use:   "watch [packages]",
		Short: "Regenerate accessors when Go sources change",
		Long: `Generate once, then watch the given directories and regenerate after
every batch of .go changes. Generated files are ignored. Errors are
reported and watching continues.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns := defaultPatterns(args)

			run := func(ctx context.Context, changed []string) error {
				a.log.Info("generating", zap.Strings("changed", changed))

				_, err := a.generate(ctx, cmd, patterns)

				return err
			}

			if err := run(cmd.Context(), nil); err != nil {
				a.log.Error("initial generation failed", zap.Error(err))
			}

			opts := watch.DefaultOptions()
			opts.IgnoreFiles = a.settings.genConfig(a.log).OutputNames()
			opts.Logger = a.log

			w, err := watch.New(dirs, run, opts)
			if err != nil {
				return fmt.Errorf("starting watcher: %w", err)
			}
			defer w.Close()

			a.log.Info("watching for changes", zap.Strings("dirs", dirs))

			return w.Run(cmd.Context())
		},
	}

	cmd.Flags().StringSliceVar(&dirs, "dir", []string{"."}, "Directories to watch recursively")

	return cmd
}
