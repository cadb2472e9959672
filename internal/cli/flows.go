package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowsim-io/flowsim/pkg/flowsim/store"
)

// NewFlowsCommand creates the flows command group backed by a SQLite store.
func NewFlowsCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "flows",
		Short: "Manage stored flow documents",
		Long: `Save, list, export, and delete flow documents in a local SQLite store.

Saving under an existing name replaces the document and bumps its revision.`,
	}

	cmd.PersistentFlags().StringVar(&dbPath, "db", "flows.db", "path to the flow store database")

	cmd.AddCommand(newFlowsSaveCommand(rootOpts, &dbPath))
	cmd.AddCommand(newFlowsListCommand(rootOpts, &dbPath))
	cmd.AddCommand(newFlowsExportCommand(rootOpts, &dbPath))
	cmd.AddCommand(newFlowsDeleteCommand(rootOpts, &dbPath))

	return cmd
}

func openStore(formatter *OutputFormatter, dbPath string) (*store.SQLiteStore, error) {
	st, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("cannot open store %s", dbPath), err)
	}
	return st, nil
}

func newFlowsSaveCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:           "save <name> <flow-file>",
		Short:         "Validate a flow document and save it under a name",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			name, path := args[0], args[1]

			doc, err := loadValidDocument(formatter, path)
			if err != nil {
				return err
			}

			data, err := doc.EncodeJSON()
			if err != nil {
				_ = formatter.Error(ErrCodeStore, err.Error(), nil)
				return WrapExitError(ExitCommandError, "cannot encode document", err)
			}

			st, err := openStore(formatter, *dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Save(name, data); err != nil {
				_ = formatter.Error(ErrCodeStore, err.Error(), nil)
				return WrapExitError(ExitCommandError, fmt.Sprintf("cannot save flow %q", name), err)
			}

			if formatter.Format == "json" {
				return formatter.SuccessJSON(map[string]string{"name": name})
			}
			fmt.Fprintf(formatter.Writer, "Saved flow %q (%d node(s), %d edge(s))\n", name, len(doc.Nodes), len(doc.Edges))
			return nil
		},
	}
}

func newFlowsListCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List stored flows",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			st, err := openStore(formatter, *dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			infos, err := st.List()
			if err != nil {
				_ = formatter.Error(ErrCodeStore, err.Error(), nil)
				return WrapExitError(ExitCommandError, "cannot list flows", err)
			}

			if formatter.Format == "json" {
				return formatter.SuccessJSON(infos)
			}

			if len(infos) == 0 {
				fmt.Fprintln(formatter.Writer, "No stored flows")
				return nil
			}
			for _, info := range infos {
				fmt.Fprintf(formatter.Writer, "%s\trev %d\t%s\t%d bytes\n",
					info.Name, info.Revision, info.UpdatedAt.Format("2006-01-02 15:04:05"), info.Size)
			}
			return nil
		},
	}
}

func newFlowsExportCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:           "export <name>",
		Short:         "Write a stored flow document to a file or stdout",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			name := args[0]

			st, err := openStore(formatter, *dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			data, err := st.Load(name)
			if errors.Is(err, store.ErrNotFound) {
				_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("flow %q not found", name), nil)
				return NewExitError(ExitFailure, fmt.Sprintf("flow %q not found", name))
			}
			if err != nil {
				_ = formatter.Error(ErrCodeStore, err.Error(), nil)
				return WrapExitError(ExitCommandError, fmt.Sprintf("cannot load flow %q", name), err)
			}

			if outPath == "" {
				_, err = formatter.Writer.Write(append(data, '\n'))
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				_ = formatter.Error(ErrCodeStore, err.Error(), nil)
				return WrapExitError(ExitCommandError, fmt.Sprintf("cannot write %s", outPath), err)
			}
			fmt.Fprintf(formatter.Writer, "Exported flow %q to %s\n", name, outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	return cmd
}

func newFlowsDeleteCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <name>",
		Short:         "Delete a stored flow",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			name := args[0]

			st, err := openStore(formatter, *dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			// Delete is a no-op for unknown names; probe first so the
			// CLI can report a miss.
			if _, err := st.Load(name); errors.Is(err, store.ErrNotFound) {
				_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("flow %q not found", name), nil)
				return NewExitError(ExitFailure, fmt.Sprintf("flow %q not found", name))
			}

			if err := st.Delete(name); err != nil {
				_ = formatter.Error(ErrCodeStore, err.Error(), nil)
				return WrapExitError(ExitCommandError, fmt.Sprintf("cannot delete flow %q", name), err)
			}

			if formatter.Format == "json" {
				return formatter.SuccessJSON(map[string]string{"name": name})
			}
			fmt.Fprintf(formatter.Writer, "Deleted flow %q\n", name)
			return nil
		},
	}
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
