package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/npillmayer/plist"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	errorColor  = color.New(color.FgRed)
)

func run(cmd *cobra.Command, opts options, input string) error {
	setupColor(opts)
	if opts.verbose {
		gtrace.CoreTracer = gologadapter.New()
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	}
	in, closer, err := openInput(cmd, input)
	if err != nil {
		return err
	}
	defer closer()
	s, err := readScript(in)
	if err != nil {
		return err
	}
	cfg, err := s.config(opts)
	if err != nil {
		return err
	}
	ops, err := s.batch()
	if err != nil {
		return err
	}
	l, err := plist.From(cfg, s.Values)
	if err != nil {
		return err
	}
	plist.T().Debugf("replaying %d ops on %s list of %d values", len(ops), cfg.Engine, l.Len())
	l.Apply(ops)
	out := cmd.OutOrStdout()
	if opts.check {
		if err := l.Check(); err != nil {
			errorColor.Fprintf(cmd.ErrOrStderr(), "invariant violated: %v\n", err)
			return err
		}
	}
	if err := printJSON(out, l); err != nil {
		return err
	}
	if opts.dump {
		headerColor.Fprintf(out, "%s tree, %d values, summary %d:\n", cfg.Engine, l.Len(), l.Summary())
		return l.Dump(out)
	}
	return nil
}

func setupColor(opts options) {
	switch {
	case opts.nocolor:
		color.NoColor = true
	case opts.colorize:
		color.NoColor = false
	default:
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// openInput opens the script file, where "-" denotes standard input.
func openInput(cmd *cobra.Command, input string) (io.Reader, func(), error) {
	if input == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open script: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func printJSON(w io.Writer, l plist.List[string]) error {
	data, err := json.Marshal(l)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
