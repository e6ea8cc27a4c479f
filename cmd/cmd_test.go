package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommandSummary(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	rc := NewRootCommand(strings.NewReader(""), stdout, stderr)
	rc.SetArgs([]string{"summary"})
	if err := rc.Execute(); err != nil {
		t.Fatalf("executing summary: %v", err)
	}
	if !strings.Contains(stdout.String(), "median") {
		t.Fatalf("unexpected output: %q", stdout.String())
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	rc := NewRootCommand(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	names := map[string]bool{}
	for _, c := range rc.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"summary", "hist", "transform", "neighborhoods", "gen"} {
		if !names[want] {
			t.Fatalf("missing subcommand %q (have %v)", want, names)
		}
	}
}
