package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/flowsim-io/flowsim/pkg/flowsim"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	var assignments []string

	cmd := &cobra.Command{
		Use:   "eval <flow-file>",
		Short: "Evaluate reachability under a simulation context",
		Long: `Evaluate which nodes and edges of a flow are reachable.

Traversal starts at root nodes (nodes with no incoming edges) and follows
edges whose rules all pass against the simulation context. Conditions
absent from the context pass by default.

Example:

  flowsim eval onboarding.json --set age=30 --set country=DE`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, args[0], assignments, cmd)
		},
	}

	cmd.Flags().StringArrayVar(&assignments, "set", nil, "set a condition value (key=value, repeatable)")

	return cmd
}

func runEval(opts *RootOptions, path string, assignments []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	sim, err := parseContext(assignments)
	if err != nil {
		_ = formatter.Error(ErrCodeArgument, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid simulation context", err)
	}

	doc, err := loadValidDocument(formatter, path)
	if err != nil {
		return err
	}

	result := flowsim.EvaluateFlow(doc.Nodes, doc.Edges, sim)

	if formatter.Format == "json" {
		return formatter.SuccessJSON(result)
	}

	fmt.Fprintf(formatter.Writer, "Reachable nodes (%d of %d):\n", len(result.ReachableNodes), len(doc.Nodes))
	for _, id := range sortedKeys(result.ReachableNodes) {
		fmt.Fprintf(formatter.Writer, "  %s\n", id)
	}

	fmt.Fprintln(formatter.Writer, "Edges:")
	for _, id := range sortedKeys(result.ValidEdges) {
		mark := "✗"
		if result.ValidEdges[id] {
			mark = "✓"
		}
		fmt.Fprintf(formatter.Writer, "  %s %s\n", mark, id)
	}

	return nil
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
