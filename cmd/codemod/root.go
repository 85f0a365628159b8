package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/codemod/pkg/config"
	"github.com/walteh/codemod/pkg/log"
	"github.com/walteh/codemod/pkg/operation"
	"github.com/walteh/codemod/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// newRootCmd builds the codemod command. cfg holds the compiled-in settings;
// flags only change how much is logged.
func newRootCmd(stdout, stderr io.Writer, cfg *config.Config) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "codemod",
		Short: "Replace PrismaClient instantiations with the shared singleton",
		Long: `codemod rewrites TypeScript sources that construct their own PrismaClient
so they import the shared singleton instead.

For every .ts file under the source root that contains "new PrismaClient()"
and is not a test, mock or fixture, it:
1. Skips the file if it already imports the singleton
2. Inserts the singleton import
3. Removes local "const prisma = new PrismaClient()" declarations
4. Rewrites "this.prisma = new PrismaClient()" assignments
5. Writes the original to <file>.bak before saving the new content`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogging(stderr, debug)
			console := log.New(stdout, logger)

			ctx := logger.WithContext(cmd.Context())
			ctx = log.NewContext(ctx, console)

			if err := cfg.Validate(); err != nil {
				console.Errorf("Invalid configuration: %v", err)
				return errors.Errorf("validating config: %w", err)
			}
			logger.Debug().Stringer("config", cfg).Msg("starting codemod")

			mgr := status.New(cfg.Root, cfg.BackupSuffix)
			op := operation.NewMigrateOperation(operation.Options{
				Config: cfg,
				Files:  mgr,
				Status: mgr,
			})

			if err := operation.NewRunner(&logger).Run(ctx, op); err != nil {
				if errors.Is(err, operation.ErrRootNotFound) {
					console.Errorf("Error: Directory %s not found", cfg.Root)
				} else {
					console.Error(err.Error())
				}
				return err
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.AddCommand(newVersionCmd(stdout))

	return cmd
}

// setupLogging configures zerolog for the run; structured events go to
// stderr, user facing output goes through pkg/log on stdout
func setupLogging(stderr io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()
}
