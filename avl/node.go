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

import "cmp"

// Node holds one stored value. A nil *Node is the empty subtree.
type Node[T cmp.Ordered] struct {
	value  T
	height int // leaf = 1
	left   *Node[T]
	right  *Node[T]
}

func newNode[T cmp.Ordered](v T) *Node[T] {
	return &Node[T]{value: v, height: 1}
}

// Value returns the stored value. It never changes after insertion.
func (n *Node[T]) Value() T {
	return n.value
}

func (n *Node[T]) Left() *Node[T] {
	return n.left
}

func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Height returns the cached height of the subtree rooted at n, 0 for nil.
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}
