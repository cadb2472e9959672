package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowsim-io/flowsim/pkg/flowsim"
)

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	var nodeID string

	cmd := &cobra.Command{
		Use:   "trace <flow-file>",
		Short: "Trace the ancestors of a node",
		Long: `Highlight every node and edge on some path leading to a focus node.

The trace follows graph structure only; edge rules are ignored. The focus
node itself is always highlighted.

Example:

  flowsim trace onboarding.json --node checkout`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(rootOpts, args[0], nodeID, cmd)
		},
	}

	cmd.Flags().StringVar(&nodeID, "node", "", "focus node ID (required)")
	_ = cmd.MarkFlagRequired("node")

	return cmd
}

func runTrace(opts *RootOptions, path, nodeID string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	doc, err := loadValidDocument(formatter, path)
	if err != nil {
		return err
	}

	known := false
	for _, n := range doc.Nodes {
		if n.ID == nodeID {
			known = true
			break
		}
	}
	if !known {
		_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("node %q not found in %s", nodeID, path), nil)
		return NewExitError(ExitFailure, fmt.Sprintf("node %q not found", nodeID))
	}

	result := flowsim.TraceAncestors(nodeID, doc.Edges)

	if formatter.Format == "json" {
		return formatter.SuccessJSON(result)
	}

	fmt.Fprintf(formatter.Writer, "Ancestors of %s:\n", nodeID)
	fmt.Fprintln(formatter.Writer, "Nodes:")
	for _, id := range sortedKeys(result.Nodes) {
		fmt.Fprintf(formatter.Writer, "  %s\n", id)
	}
	fmt.Fprintln(formatter.Writer, "Edges:")
	for _, id := range sortedKeys(result.Edges) {
		fmt.Fprintf(formatter.Writer, "  %s\n", id)
	}

	return nil
}
