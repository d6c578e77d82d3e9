// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"strings"
	"testing"
)

func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootRunsDemo(t *testing.T) {
	out, err := executeCommand(t, "")
	if err != nil {
		t.Fatalf("root command returned error: %v", err)
	}
	if !strings.Contains(out, "[10 20 25 30 40 50]") {
		t.Errorf("unexpected demo output:\n%s", out)
	}
}

func TestInsertCommand(t *testing.T) {
	out, err := executeCommand(t, "", "insert", "3", "1", "2", "--search", "4")
	if err != nil {
		t.Fatalf("insert returned error: %v", err)
	}
	if !strings.Contains(out, "[1 2 3]") || !strings.Contains(out, "Searching for 4: ") || !strings.Contains(out, "Not Found") {
		t.Errorf("unexpected insert output:\n%s", out)
	}

	if _, err := executeCommand(t, "", "insert", "x"); err == nil {
		t.Errorf("insert with a non integer returned no error")
	}
}

func TestStressCommand(t *testing.T) {
	out, err := executeCommand(t, "", "stress", "--count", "500", "--seed", "9", "--quiet")
	if err != nil {
		t.Fatalf("stress returned error: %v", err)
	}
	if !strings.Contains(out, "500 insertions verified") {
		t.Errorf("unexpected stress output:\n%s", out)
	}
}

func TestShellCommand(t *testing.T) {
	out, err := executeCommand(t, "insert 5 1 9\ninorder\n", "shell")
	if err != nil {
		t.Fatalf("shell returned error: %v", err)
	}
	if !strings.Contains(out, "[1 5 9]") {
		t.Errorf("unexpected shell output:\n%s", out)
	}
}

func TestUsageMentionsCommands(t *testing.T) {
	msg := getHelpMessage()
	for _, word := range []string{"demo", "insert", "stress", "shell"} {
		if !strings.Contains(msg, word) {
			t.Errorf("usage guide missing %q", word)
		}
	}
}
