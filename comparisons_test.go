// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree_test

import (
	"math/rand"
	"testing"

	godsavl "github.com/emirpasic/gods/trees/avltree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/bitmark-inc/avltree"
)

// compares with https://github.com/emirpasic/gods (allocating AVL),
// https://github.com/google/btree and https://github.com/petar/GoLLRB
// to keep an eye on the cost of the intrusive design
const benchmarkItemCount = 1 << 14

func benchmarkKeys() []int {
	return rand.New(rand.NewSource(1)).Perm(benchmarkItemCount)
}

func BenchmarkInsert(b *testing.B) {
	keys := benchmarkKeys()
	records := make([]intRecord, len(keys))
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tree := avltree.New()
		for j, key := range keys {
			records[j].key = key
			tree.Insert(&records[j].node, compareInt)
		}
	}
}

func BenchmarkSearch(b *testing.B) {
	keys := benchmarkKeys()
	records := make([]intRecord, len(keys))
	tree := avltree.New()
	for j, key := range keys {
		records[j].key = key
		tree.Insert(&records[j].node, compareInt)
	}
	probe := intRecord{}
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		probe.key = keys[i%len(keys)]
		if nil == tree.Search(&probe.node, compareInt) {
			b.Fatalf("missing key: %d", probe.key)
		}
	}
}

func BenchmarkRemoveInsert(b *testing.B) {
	keys := benchmarkKeys()
	records := make([]intRecord, len(keys))
	tree := avltree.New()
	for j, key := range keys {
		records[j].key = key
		tree.Insert(&records[j].node, compareInt)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		r := &records[i%len(records)]
		tree.Remove(&r.node)
		tree.Insert(&r.node, compareInt)
	}
}

func BenchmarkGodsAVLPut(b *testing.B) {
	keys := benchmarkKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tree := godsavl.NewWithIntComparator()
		for _, key := range keys {
			tree.Put(key, nil)
		}
	}
}

func BenchmarkGodsAVLGet(b *testing.B) {
	keys := benchmarkKeys()
	tree := godsavl.NewWithIntComparator()
	for _, key := range keys {
		tree.Put(key, nil)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		if _, ok := tree.Get(keys[i%len(keys)]); !ok {
			b.Fatalf("missing key: %d", keys[i%len(keys)])
		}
	}
}

func BenchmarkBTreeInsert(b *testing.B) {
	keys := benchmarkKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tree := btree.New(32)
		for _, key := range keys {
			tree.ReplaceOrInsert(btree.Int(key))
		}
	}
}

func BenchmarkBTreeGet(b *testing.B) {
	keys := benchmarkKeys()
	tree := btree.New(32)
	for _, key := range keys {
		tree.ReplaceOrInsert(btree.Int(key))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		if nil == tree.Get(btree.Int(keys[i%len(keys)])) {
			b.Fatalf("missing key: %d", keys[i%len(keys)])
		}
	}
}

func BenchmarkLLRBInsert(b *testing.B) {
	keys := benchmarkKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		tree := llrb.New()
		for _, key := range keys {
			tree.ReplaceOrInsert(llrb.Int(key))
		}
	}
}

func BenchmarkLLRBGet(b *testing.B) {
	keys := benchmarkKeys()
	tree := llrb.New()
	for _, key := range keys {
		tree.ReplaceOrInsert(llrb.Int(key))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i += 1 {
		if nil == tree.Get(llrb.Int(keys[i%len(keys)])) {
			b.Fatalf("missing key: %d", keys[i%len(keys)])
		}
	}
}
