package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowsim-io/flowsim/pkg/flowsim"
)

// NewConditionsCommand creates the conditions command.
func NewConditionsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conditions <flow-file>",
		Short: "List the conditions a flow's rules reference",
		Long: `Discover the condition schema of a flow document.

Scans every rule on every edge and reports each distinct condition name
with its inferred type (boolean, number, or enum) and the values the
rules compare against.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConditions(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runConditions(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	doc, err := loadDocument(formatter, path)
	if err != nil {
		return err
	}

	conditions := flowsim.DiscoverConditions(doc.Edges)

	if formatter.Format == "json" {
		return formatter.SuccessJSON(conditions)
	}

	if len(conditions) == 0 {
		fmt.Fprintln(formatter.Writer, "No conditions referenced")
		return nil
	}

	for _, c := range conditions {
		values := make([]string, len(c.Values))
		for i, v := range c.Values {
			values[i] = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(formatter.Writer, "%s (%s): %s\n", c.Name, c.Type, strings.Join(values, ", "))
	}

	return nil
}
