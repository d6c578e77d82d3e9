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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-shellwords"
)

const shellHelp = `
# Commands

* **insert** *v...* add one or more integers
* **search** *v* report whether *v* is stored
* **inorder** print every value in ascending order
* **range** *low high* print values with low <= v < high
* **min** / **max** smallest and largest value
* **height** height of the tree
* **shape** draw the tree with heights and balance factors
* **verify** check order, balance and cached heights
* **stats** how lookups were answered
* **help** this text
* **quit** leave the shell
`

var errQuit = errors.New("quit")

// Shell is a line oriented session over one Index.
type Shell struct {
	index *Index
	out   io.Writer
}

func NewShell(index *Index, out io.Writer) *Shell {
	return &Shell{index: index, out: out}
}

// Run executes the commands read from in until EOF or quit. Command errors
// are printed and the session goes on.
func (s *Shell) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(s.out, "avl> ")
	for scanner.Scan() {
		err := s.Exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "%serror:%s %v\n", Error, Reset, err)
		}
		fmt.Fprint(s.out, "avl> ")
	}
	fmt.Fprintln(s.out)
	return scanner.Err()
}

// Exec runs a single command line.
func (s *Shell) Exec(line string) error {
	args, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("failed to parse %q: %w", line, err)
	}
	if len(args) == 0 {
		return nil
	}

	tree := s.index.Tree()
	cmd, rest := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "insert", "add":
		if len(rest) == 0 {
			return fmt.Errorf("insert needs at least one value")
		}
		values, err := parseValues(rest)
		if err != nil {
			return err
		}
		s.index.Insert(values...)
		fmt.Fprintf(s.out, "inserted %d value(s)\n", len(values))
	case "search", "find":
		values, err := exactValues(cmd, rest, 1)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%d: %s\n", values[0], foundLabel(s.index.Lookup(values[0])))
	case "inorder", "list":
		fmt.Fprintln(s.out, tree.InOrder())
	case "range":
		values, err := exactValues(cmd, rest, 2)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, tree.Range(values[0], values[1]))
	case "min", "max":
		get := tree.Min
		if cmd == "max" {
			get = tree.Max
		}
		if v, ok := get(); ok {
			fmt.Fprintln(s.out, v)
		} else {
			fmt.Fprintln(s.out, "tree is empty")
		}
	case "height":
		fmt.Fprintln(s.out, tree.Height())
	case "shape", "print":
		return tree.Render(s.out)
	case "verify":
		if err := tree.Verify(); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "ok")
	case "stats":
		st := s.index.Stats()
		fmt.Fprintf(s.out, "filter rejects: %d, cache hits: %d, tree searches: %d\n",
			st.FilterRejects, st.CacheHits, st.TreeSearches)
	case "help", "?":
		fmt.Fprint(s.out, renderShellHelp())
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, try help", args[0])
	}
	return nil
}

func exactValues(cmd string, args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s takes %d value(s), got %d", cmd, n, len(args))
	}
	return parseValues(args)
}

// renderShellHelp falls back to the raw markdown when glamour cannot render.
func renderShellHelp() string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		return shellHelp
	}
	out, err := r.Render(shellHelp)
	if err != nil {
		return shellHelp
	}
	return out
}
