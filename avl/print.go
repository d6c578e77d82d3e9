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

package avl

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Render draws the tree on its side: right subtree above, left subtree below.
// Every node is shown as "value h=<height> bf=<balance factor>".
func (tree *Tree[T]) Render(w io.Writer) error {
	if tree.root == nil {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	return render(w, tree.root, "", rootBranch)
}

func render[T cmp.Ordered](w io.Writer, node *Node[T], prefix string, br branch) error {
	if node.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		if err := render(w, node.right, prefix+t, rightBranch); err != nil {
			return err
		}
	}

	var edge string
	switch br {
	case rootBranch:
		edge = "|------+ "
	case leftBranch:
		edge = "\\------+ "
	case rightBranch:
		edge = "/------+ "
	}
	if _, err := fmt.Fprintf(w, "%s%s%v h=%d bf=%+d\n", prefix, edge, node.value, node.height, balanceFactor(node)); err != nil {
		return err
	}

	if node.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		if err := render(w, node.left, prefix+t, leftBranch); err != nil {
			return err
		}
	}
	return nil
}

func (tree *Tree[T]) String() string {
	var sb strings.Builder
	// strings.Builder never fails a write
	_ = tree.Render(&sb)
	return sb.String()
}
