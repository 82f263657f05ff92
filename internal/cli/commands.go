package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itssimple/manifest-report-site/internal/diffs"
	"github.com/itssimple/manifest-report-site/internal/report"
)

func newListCmd(r *session) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived manifest versions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if page < 1 {
				return fmt.Errorf("invalid page %d", page)
			}

			list, err := r.app.Client().ListManifests(cmd.Context())
			if err != nil {
				return err
			}

			p := report.Paginate(report.SortByDiscoverDate(list), page, report.PerPage)
			report.WriteManifestList(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based)")
	return cmd
}

func newShowCmd(r *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <version>",
		Short: "Show the change summary of one version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, found, err := r.app.Client().GetManifestByVersion(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("version %s not found", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, report.Description(item))
			fmt.Fprintln(out)
			report.WriteDiffTable(out, item)
			return nil
		},
	}
}

func newLatestCmd(r *session) *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Show the newest version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := r.app.Client().ListManifests(cmd.Context())
			if err != nil {
				return err
			}
			item, ok := report.Latest(list)
			if !ok {
				return fmt.Errorf("manifest list is empty")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, report.Description(item))
			fmt.Fprintln(out)
			report.WriteDiffTable(out, item)
			return nil
		},
	}
}

func newDefinitionCmd(r *session) *cobra.Command {
	return &cobra.Command{
		Use:   "definition <version> <definition>",
		Short: "Show the classified objects of one definition table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			version, definition := args[0], args[1]
			client := r.app.Client()

			item, found, err := client.GetManifestByVersion(ctx, version)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("version %s not found", version)
			}

			file, ok := report.FindDiffFile(item, definition)
			if !ok {
				return fmt.Errorf("definition %s has no changes in version %s", definition, version)
			}

			diff := client.GetDiffPayload(ctx, version, definition)
			if !diff.OK() {
				r.logger.Warn(ctx, "diff unavailable", "version", version, "definition", definition, "error", diff.Err)
				return fmt.Errorf("no diff data for %s in version %s", definition, version)
			}

			table := client.GetDefinitionTable(ctx, version, definition)
			if !table.OK() {
				r.logger.Warn(ctx, "definition table unavailable, names omitted", "error", table.Err)
			}

			report.WriteDefinition(cmd.OutOrStdout(), item, file, diffs.Partition(diff.Value, table.Value))
			return nil
		},
	}
}

func newServeCmd(r *session) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.app.Serve(cmd.Context())
		},
	}
}
