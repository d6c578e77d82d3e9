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
	"math/rand"
	"slices"

	"github.com/cybrota/avltree/avl"
	"github.com/schollz/progressbar/v3"
)

type StressResult struct {
	Count  int
	Height int
	Bound  float64
}

// runStress inserts count random values, verifying the whole tree after
// each insertion, then checks the height bound, the traversal order and
// that every inserted value can be found. Progress goes to progress when it
// is not nil.
func runStress(count int, seed int64, progress io.Writer) (StressResult, error) {
	if count < 0 {
		return StressResult{}, fmt.Errorf("invalid count %d: must not be negative", count)
	}
	rg := rand.New(rand.NewSource(seed))
	tree := avl.New[int]()
	inserted := make([]int, 0, count)

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(count,
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("Inserting random values..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(progress)
			}),
		)
	}

	// values collide about half the time so duplicates get exercised
	valueRange := max(count/2, 1)
	for i := 0; i < count; i++ {
		v := rg.Intn(valueRange)
		tree.Insert(v)
		inserted = append(inserted, v)
		if err := tree.Verify(); err != nil {
			return StressResult{}, fmt.Errorf("insert #%d (%d): %w", i, v, err)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	result := StressResult{Count: count, Height: tree.Height(), Bound: avl.MaxHeight(count)}
	if float64(result.Height) > result.Bound {
		return result, fmt.Errorf("height %d exceeds the AVL bound %.2f for %d values", result.Height, result.Bound, count)
	}

	slices.Sort(inserted)
	if !slices.Equal(tree.InOrder(), inserted) {
		return result, fmt.Errorf("in-order traversal differs from the inserted values")
	}
	for _, v := range inserted {
		if tree.Search(v) == nil {
			return result, fmt.Errorf("search missed inserted value %d", v)
		}
	}
	return result, nil
}
