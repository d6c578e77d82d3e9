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

// Package avl implements a height-balanced binary search tree.
//
// Values smaller than a node go to its left subtree, everything else
// (including equal values) goes to its right subtree. After every insertion
// each node on the insertion path has |height(left) - height(right)| <= 1.
// Rotations may later lift one of two equal values above the other, so with
// duplicates the order kept is left <= node <= right.
//
// A Tree is not safe for concurrent use. Callers sharing a tree between
// goroutines must serialize every call, reads included, behind one lock.
package avl

import "cmp"

type Tree[T cmp.Ordered] struct {
	root *Node[T]
}

// New returns an empty tree.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{root: nil}
}

// Root returns the root node, nil when the tree is empty.
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Height returns the height of the whole tree, 0 when empty.
func (tree *Tree[T]) Height() int {
	return height(tree.root)
}

func height[T cmp.Ordered](node *Node[T]) int {
	if node == nil {
		return 0
	}
	return node.height
}

func updateHeight[T cmp.Ordered](node *Node[T]) {
	node.height = max(height(node.left), height(node.right)) + 1
}

func balanceFactor[T cmp.Ordered](node *Node[T]) int {
	if node == nil {
		return 0
	}
	return height(node.left) - height(node.right)
}

func rotateLeft[T cmp.Ordered](node *Node[T]) *Node[T] {
	if node == nil || node.right == nil {
		panic("avl: left rotation needs a node with a right child")
	}

	pivot := node.right
	node.right = pivot.left
	pivot.left = node

	// node is now below pivot, so it goes first
	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

func rotateRight[T cmp.Ordered](node *Node[T]) *Node[T] {
	if node == nil || node.left == nil {
		panic("avl: right rotation needs a node with a left child")
	}

	pivot := node.left
	node.left = pivot.right
	pivot.right = node

	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

// Insert adds v to the tree. Equal values are kept and placed to the right
// of the values they equal.
func (tree *Tree[T]) Insert(v T) {
	tree.root = insertRecursive(tree.root, v)
}

func insertRecursive[T cmp.Ordered](node *Node[T], v T) *Node[T] {
	if node == nil {
		return newNode(v)
	}

	if v < node.value {
		node.left = insertRecursive(node.left, v)
	} else {
		node.right = insertRecursive(node.right, v)
	}

	updateHeight(node)

	// Only the path towards v changed, so comparing v with the child tells
	// which grandchild grew. Ties follow the insertion routing: an equal
	// value sits in the child's right subtree.
	bf := balanceFactor(node)
	if bf > 1 {
		if v < node.left.value {
			return rotateRight(node)
		}
		// Left-Right case
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	} else if bf < -1 {
		if v >= node.right.value {
			return rotateLeft(node)
		}
		// Right-Left case
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}

// Search returns a node holding a value equal to v, or nil if there is none.
func (tree *Tree[T]) Search(v T) *Node[T] {
	return searchNode(tree.root, v)
}

func searchNode[T cmp.Ordered](node *Node[T], v T) *Node[T] {
	if node == nil || node.value == v {
		return node
	}
	if v < node.value {
		return searchNode(node.left, v)
	}
	return searchNode(node.right, v)
}

// Contains reports whether v is stored in the tree.
func (tree *Tree[T]) Contains(v T) bool {
	return tree.Search(v) != nil
}

// InOrder returns every stored value in ascending order, duplicates included.
// An empty tree yields an empty, non-nil slice.
func (tree *Tree[T]) InOrder() []T {
	result := []T{}
	inOrder(tree.root, &result)
	return result
}

func inOrder[T cmp.Ordered](node *Node[T], result *[]T) {
	if node == nil {
		return
	}
	inOrder(node.left, result)
	*result = append(*result, node.value)
	inOrder(node.right, result)
}

// Walk calls fn for each value in ascending order until fn returns false.
func (tree *Tree[T]) Walk(fn func(T) bool) {
	walk(tree.root, fn)
}

func walk[T cmp.Ordered](node *Node[T], fn func(T) bool) bool {
	if node == nil {
		return true
	}
	return walk(node.left, fn) && fn(node.value) && walk(node.right, fn)
}

// Range returns, in ascending order, every value with low <= value < high.
func (tree *Tree[T]) Range(low, high T) []T {
	results := []T{}
	rangeSearch(tree.root, low, high, &results)
	return results
}

func rangeSearch[T cmp.Ordered](node *Node[T], low, high T, results *[]T) {
	if node == nil {
		return
	}

	// the left subtree only holds values <= node.value
	if node.value >= low {
		rangeSearch(node.left, low, high, results)
	}

	if node.value >= low && node.value < high {
		*results = append(*results, node.value)
	}

	// the right subtree only holds values >= node.value
	if node.value < high {
		rangeSearch(node.right, low, high, results)
	}
}

// Min returns the smallest value. ok is false on an empty tree.
func (tree *Tree[T]) Min() (v T, ok bool) {
	node := tree.root
	if node == nil {
		return v, false
	}
	for node.left != nil {
		node = node.left
	}
	return node.value, true
}

// Max returns the largest value. ok is false on an empty tree.
func (tree *Tree[T]) Max() (v T, ok bool) {
	node := tree.root
	if node == nil {
		return v, false
	}
	for node.right != nil {
		node = node.right
	}
	return node.value, true
}
