// Command flowsim evaluates, inspects, and stores conditional flow graphs.
package main

import (
	"fmt"
	"os"

	"github.com/flowsim-io/flowsim/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
