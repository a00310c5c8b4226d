package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/plist"
)

const sample = `
values: [a, b, c, d]
ops:
  - {op: insert, index: 1, value: x}
  - {op: delete, index: 0}
  - {op: sub, index: 2, value: "yy"}
`

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestReplayFromStdin(t *testing.T) {
	for _, engine := range []string{"avl", "btree"} {
		out, err := execute(t, sample, "--no-color", "--engine", engine, "-")
		if err != nil {
			t.Fatalf("%s: %v", engine, err)
		}
		if strings.TrimSpace(out) != `["x","b","yy","d"]` {
			t.Errorf("%s: unexpected output %q", engine, out)
		}
	}
}

func TestReplayFromFileWithDump(t *testing.T) {
	name := filepath.Join(t.TempDir(), "script.yaml")
	if err := os.WriteFile(name, []byte("engine: btree\nmax-vals: 2\n"+sample), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "", "--no-color", "--dump", name)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != `["x","b","yy","d"]` {
		t.Errorf("unexpected JSON line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "btree tree, 4 values, summary 5") {
		t.Errorf("unexpected dump header %q", lines[1])
	}
	if len(lines) < 4 {
		t.Errorf("expected a tree of several nodes, have\n%s", out)
	}
}

func TestEmptyScript(t *testing.T) {
	out, err := execute(t, "", "--no-color", "-")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("expected empty array, have %q", out)
	}
}

func TestScriptErrors(t *testing.T) {
	if _, err := execute(t, "ops: [{op: rotate, index: 0}]", "-"); !errors.Is(err, errBadScript) {
		t.Errorf("expected bad script error, have %v", err)
	}
	if _, err := execute(t, "colour: red", "-"); !errors.Is(err, errBadScript) {
		t.Errorf("expected unknown field to be rejected, have %v", err)
	}
	if _, err := execute(t, sample, "--engine", "splay", "-"); !errors.Is(err, plist.ErrUnknownEngine) {
		t.Errorf("expected unknown engine error, have %v", err)
	}
	if _, err := execute(t, sample, "--engine", "btree", "--max-vals", "3", "--min-vals", "2", "-"); !errors.Is(err, plist.ErrInvalidConfig) {
		t.Errorf("expected invalid config error, have %v", err)
	}
	if _, err := execute(t, "", filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Errorf("expected error for missing script")
	}
}
