package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with args and captures both streams
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// isolate moves the test into an empty working directory so no
// .repoqa/config.yaml from the surrounding tree is picked up
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

// newRepo creates a small repository fixture
func newRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"main.py":       "import streamlit as st\nst.title(\"Streamlit Explorer\")\n",
		"tools.py":      "import os\n",
		"pkg/helper.go": "package pkg\n\nfunc Helper() {}\n",
		".env":          "TOKEN=secret\n",
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestRootCommand(t *testing.T) {
	stdout, _, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("--help returned error: %v", err)
	}

	if !strings.Contains(stdout, "repoqa") {
		t.Errorf("Help text should contain 'repoqa', got: %s", stdout)
	}
	for _, flag := range []string{"--config", "--log-level", "--log-dir", "--render", "--timeout"} {
		if !strings.Contains(stdout, flag) {
			t.Errorf("Help text should list %s", flag)
		}
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	if cmd.Use != "repoqa" {
		t.Errorf("Expected Use to be 'repoqa', got '%s'", cmd.Use)
	}

	want := map[string]bool{"ask": false, "ls": false, "cat": false, "grep": false, "smoke": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("Expected subcommand %q", name)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version returned error: %v", err)
	}
	if !strings.Contains(stdout, Version) {
		t.Errorf("Version output should contain %q, got: %s", Version, stdout)
	}
}
