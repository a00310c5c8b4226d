package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/npillmayer/plist"
	"github.com/npillmayer/plist/seq"
)

// errBadScript is flagged for scripts which cannot be replayed.
var errBadScript = errors.New("invalid script")

// script is the YAML document plistdump replays.
type script struct {
	Engine  string   `yaml:"engine"`
	MaxVals int      `yaml:"max-vals"`
	MinVals int      `yaml:"min-vals"`
	Values  []string `yaml:"values"`
	Ops     []step   `yaml:"ops"`
}

// step is a single list operation of a script.
type step struct {
	Op    string `yaml:"op"`
	Index int    `yaml:"index"`
	Value string `yaml:"value"`
}

func readScript(r io.Reader) (*script, error) {
	var s script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil // empty script
		}
		return nil, fmt.Errorf("%w: %w", errBadScript, err)
	}
	return &s, nil
}

// config merges the script's list configuration with command line flags.
func (s *script) config(opts options) (plist.Config[string], error) {
	var cfg plist.Config[string]
	name := s.Engine
	if opts.engine != "" {
		name = opts.engine
	}
	if name != "" {
		e, err := plist.ParseEngine(name)
		if err != nil {
			return cfg, err
		}
		cfg.Engine = e
	}
	cfg.MaxVals, cfg.MinVals = s.MaxVals, s.MinVals
	if opts.maxVals != 0 {
		cfg.MaxVals = opts.maxVals
	}
	if opts.minVals != 0 {
		cfg.MinVals = opts.minVals
	}
	return cfg, nil
}

// batch converts the script's steps into list operations.
func (s *script) batch() ([]plist.Op[string], error) {
	ops := make([]plist.Op[string], 0, len(s.Ops))
	for i, st := range s.Ops {
		switch strings.ToLower(st.Op) {
		case "insert", "ins":
			ops = append(ops, seq.Insert(st.Index, st.Value))
		case "delete", "del":
			ops = append(ops, seq.Delete[string](st.Index))
		case "substitute", "sub", "replace":
			ops = append(ops, seq.Substitute(st.Index, st.Value))
		default:
			return nil, fmt.Errorf("%w: step %d has unknown op %q", errBadScript, i+1, st.Op)
		}
	}
	return ops, nil
}
