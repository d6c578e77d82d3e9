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
	"fmt"
	"io"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/cybrota/avltree/avl"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

type insertOptions struct {
	Search *int
	Shape  bool
	Copy   bool
}

// parseValues converts command arguments to integers.
func parseValues(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: not an integer", arg)
		}
		values = append(values, v)
	}
	return values, nil
}

// runDemo builds a tree from values, prints its in-order traversal and
// reports whether search is stored.
func runDemo(w io.Writer, values []int, search int) error {
	return runInsert(w, values, insertOptions{Search: &search})
}

func runInsert(w io.Writer, values []int, opts insertOptions) error {
	tree := avl.New[int]()

	fmt.Fprintln(w, "Inserting elements:", values)
	for _, v := range values {
		tree.Insert(v)
	}
	fmt.Fprintln(w, "In-order traversal of the AVL tree:", tree.InOrder())

	if opts.Search != nil {
		fmt.Fprintf(w, "Searching for %d: %s\n", *opts.Search, foundLabel(tree.Search(*opts.Search) != nil))
	}

	if opts.Shape || opts.Copy {
		shape := tree.String()
		if opts.Shape {
			fmt.Fprintf(w, "\n%s", shape)
		}
		if opts.Copy {
			if err := copyToClipboard(shape); err != nil {
				return fmt.Errorf("failed to copy tree to clipboard: %w", err)
			}
			fmt.Fprintln(w, GetStyles().Muted.Render("Tree shape copied to clipboard"))
		}
	}
	return nil
}
