package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <flow-file>",
		Short: "Validate a flow document",
		Long: `Validate a flow document without evaluating it.

Checks that node and edge IDs are present and unique, that edge endpoints
reference existing nodes, and that every rule names a condition. Unknown
rule operators are accepted; the evaluator treats them as passing.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
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

	if err := doc.Validate(); err != nil {
		problems := strings.Split(err.Error(), "\n")
		if formatter.Format == "json" {
			_ = formatter.SuccessJSON(ValidationResult{Valid: false, Errors: problems})
		} else {
			fmt.Fprintln(formatter.Writer, "✗ Validation failed")
			for _, p := range problems {
				fmt.Fprintf(formatter.Writer, "  %s\n", p)
			}
		}
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(problems)))
	}

	if formatter.Format == "json" {
		return formatter.SuccessJSON(ValidationResult{Valid: true})
	}
	fmt.Fprintln(formatter.Writer, "✓ Flow document valid")
	return nil
}
