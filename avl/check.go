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
	"errors"
	"fmt"
	"math"
)

var (
	ErrOrder   = errors.New("avl: search order violated")
	ErrBalance = errors.New("avl: node out of balance")
	ErrHeight  = errors.New("avl: stale cached height")
)

// Verify walks the whole tree and reports the first node that breaks the
// search order, the balance bound or carries a wrong cached height.
func (tree *Tree[T]) Verify() error {
	_, err := check(tree.root, nil, nil)
	return err
}

// check returns the real height of node. Values under node must satisfy
// *low <= v <= *high; a nil bound is open. The upper bound is inclusive
// because a rotation can lift the right one of two equal values above the
// other.
func check[T cmp.Ordered](node *Node[T], low, high *T) (int, error) {
	if node == nil {
		return 0, nil
	}
	if low != nil && node.value < *low {
		return 0, fmt.Errorf("%w: %v is below its lower bound %v", ErrOrder, node.value, *low)
	}
	if high != nil && node.value > *high {
		return 0, fmt.Errorf("%w: %v is above its upper bound %v", ErrOrder, node.value, *high)
	}

	lh, err := check(node.left, low, &node.value)
	if err != nil {
		return 0, err
	}
	rh, err := check(node.right, &node.value, high)
	if err != nil {
		return 0, err
	}

	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, fmt.Errorf("%w: %v has balance factor %d", ErrBalance, node.value, bf)
	}
	h := max(lh, rh) + 1
	if node.height != h {
		return 0, fmt.Errorf("%w: %v caches %d, real height is %d", ErrHeight, node.value, node.height, h)
	}
	return h, nil
}

// MaxHeight is the worst case height of an AVL tree holding n values.
func MaxHeight(n int) float64 {
	return 1.44 * math.Log2(float64(n)+2)
}
