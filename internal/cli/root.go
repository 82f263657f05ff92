package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/itssimple/manifest-report-site/internal/app"
	"github.com/itssimple/manifest-report-site/internal/config"
	"github.com/itssimple/manifest-report-site/internal/logging"
)

// Swapped in tests.
var openApp = app.NewApp

type session struct {
	flags  *config.Flags
	config *config.Config
	logger logging.Logger
	app    *app.App
}

func (r *session) open(cmd *cobra.Command) error {
	r.config = r.flags.Load()

	l, err := logging.New(cmd.ErrOrStderr(), r.config.LogLevel, r.config.LogFormat)
	if err != nil {
		return err
	}
	r.logger = l.With("run_id", uuid.NewString(), "command", cmd.Name())

	r.app, err = openApp(cmd.Context(), r.config, r.logger)
	if err != nil {
		return err
	}
	return nil
}

func (r *session) close(ctx context.Context) {
	if r.app == nil {
		return
	}
	if err := r.app.Close(); err != nil {
		r.logger.Warn(ctx, "closing cache failed", "error", err)
	}
	r.app = nil
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&session{})
}

func newRootCmd(r *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "manifestreport",
		Short:         "Browse archived manifest diffs",
		Long:          "manifestreport reads the manifest diff archive from object storage, caches definition tables and diffs locally, and prints or serves the changes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return r.open(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			r.close(cmd.Context())
		},
	}

	r.flags = config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(newListCmd(r))
	cmd.AddCommand(newShowCmd(r))
	cmd.AddCommand(newDefinitionCmd(r))
	cmd.AddCommand(newLatestCmd(r))
	cmd.AddCommand(newServeCmd(r))

	return cmd
}

// Execute runs the command tree with ctx and returns the first error. The
// app is closed even when the command fails.
func Execute(ctx context.Context, args []string) error {
	r := &session{}
	defer r.close(ctx)

	cmd := newRootCmd(r)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
	}
	return err
}
