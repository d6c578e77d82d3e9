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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avltree %s**

A self-balancing binary search tree you can poke at from the shell.
Every insertion rebalances the tree with LL, RR, LR or RL rotations so that
the heights of any two sibling subtrees differ by at most one.

Built with Go %s

# 1. Commands
* **demo** inserts the configured values, prints the in-order traversal and searches one value
* **insert** *v...* builds a tree from the given integers (--search, --shape, --copy)
* **stress** inserts random values and verifies the tree after every insertion
* **shell** opens an interactive session over a single tree
* **settings** shows the configuration in ~/.avltree.yaml

# 2. Behaviour
* Equal values are kept; they are placed right of the values they equal
* Searching a missing value is a normal "Not Found", never an error
* There is no delete

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
