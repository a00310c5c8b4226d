// Package main provides plistdump, a diagnostic tool which replays a script
// of list operations against one of the balancing engines and prints the
// resulting list.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the command line flags.
type options struct {
	engine   string
	maxVals  int
	minVals  int
	dump     bool
	check    bool
	verbose  bool
	colorize bool
	nocolor  bool
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "plistdump <script.yaml|->",
		Short: "Replay list operations and dump the resulting list",
		Long: `plistdump builds a list from the initial values of a YAML script, applies
the script's operations as a single batch and prints the resulting values as
a JSON array.

Script format:
  engine: btree        # avl (default) or btree
  max-vals: 4          # B-tree node occupancy, optional
  min-vals: 2
  values: [a, b, c]
  ops:
    - {op: insert, index: 1, value: x}
    - {op: delete, index: 0}
    - {op: substitute, index: 2, value: y}

Examples:
  plistdump script.yaml
  plistdump --engine btree --max-vals 2 --dump - < script.yaml
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.engine, "engine", "", "balancing engine, avl or btree (overrides script)")
	cmd.Flags().IntVar(&opts.maxVals, "max-vals", 0, "max values per B-tree node (overrides script)")
	cmd.Flags().IntVar(&opts.minVals, "min-vals", 0, "min values per B-tree node (overrides script)")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "print the internal tree structure")
	cmd.Flags().BoolVar(&opts.check, "check", true, "validate tree invariants after replay")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "trace operations")
	cmd.Flags().BoolVar(&opts.colorize, "color", false, "force colored output")
	cmd.Flags().BoolVar(&opts.nocolor, "no-color", false, "disable colored output")

	return cmd
}
