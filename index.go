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
	"strconv"
	"time"

	"github.com/cybrota/avltree/avl"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

// LookupStats counts how each lookup was answered.
type LookupStats struct {
	FilterRejects int // bloom filter said "definitely absent"
	CacheHits     int
	TreeSearches  int
}

// Index puts a bloom filter and a lookup cache in front of a tree. The tree
// is the only source of truth: the filter is only trusted for negative
// answers and insertions evict the cached answer for the inserted value.
type Index struct {
	tree    *avl.Tree[int]
	filter  *bloom.BloomFilter
	lookups *cache.Cache
	ttl     time.Duration
	stats   LookupStats
}

func NewIndex(config IndexConfig) *Index {
	return &Index{
		tree:    avl.New[int](),
		filter:  bloom.New(config.BloomSize, config.BloomHashes),
		lookups: cache.New(config.CacheTTL, 2*config.CacheTTL),
		ttl:     config.CacheTTL,
	}
}

func indexKey(v int) string {
	return strconv.Itoa(v)
}

func (ix *Index) Insert(values ...int) {
	for _, v := range values {
		ix.tree.Insert(v)
		key := indexKey(v)
		ix.filter.AddString(key)
		ix.lookups.Delete(key)
	}
}

// Lookup reports whether v is stored.
func (ix *Index) Lookup(v int) bool {
	key := indexKey(v)
	if !ix.filter.TestString(key) {
		ix.stats.FilterRejects++
		return false
	}
	if found, ok := ix.lookups.Get(key); ok {
		ix.stats.CacheHits++
		return found.(bool)
	}

	ix.stats.TreeSearches++
	found := ix.tree.Contains(v)
	ix.lookups.Set(key, found, ix.ttl)
	return found
}

func (ix *Index) Tree() *avl.Tree[int] {
	return ix.tree
}

func (ix *Index) Stats() LookupStats {
	return ix.stats
}
