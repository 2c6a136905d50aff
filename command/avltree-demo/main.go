// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"
	"unsafe"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// the owner record: the node is embedded by value and the key lives
// alongside it
type entry struct {
	key  int
	node avltree.Node
}

// recover the owning entry by fixed offset subtraction
func entryOf(n *avltree.Node) *entry {
	return (*entry)(unsafe.Pointer(uintptr(unsafe.Pointer(n)) - unsafe.Offsetof(entry{}.node)))
}

func compareEntry(a, b *avltree.Node) int {
	ka := entryOf(a).key
	kb := entryOf(b).key
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return +1
	default:
		return 0
	}
}

func formatEntry(n *avltree.Node) string {
	return strconv.Itoa(entryOf(n).key)
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--print] [--count=N] [--seed=N]", program)
	}

	verbose := len(options["verbose"]) > 0
	printTree := len(options["print"]) > 0

	count := 200
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		if count < 1 {
			exitwithstatus.Message("%s: invalid count: %d", program, count)
		}
	}

	seed := time.Now().UnixNano()
	if len(options["seed"]) > 0 {
		seed, err = strconv.ParseInt(options["seed"][0], 10, 64)
		if nil != err {
			exitwithstatus.Message("%s: convert seed error: %s", program, err)
		}
	}

	level := "critical"
	if verbose {
		level = "debug"
	}
	logging := logger.Configuration{
		Directory: ".",
		File:      "avltree-demo.log",
		Size:      1048576,
		Count:     10,
		Console:   verbose,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("demo")
	log.Infof("seed: %d  count: %d", seed, count)

	rnd := rand.New(rand.NewSource(seed))
	entries := make([]entry, count)
	tree := avltree.New()

	// insertion phase: random unique keys, validating after each step
	for i := 0; i < count; i += 1 {
		for {
			entries[i].key = rnd.Intn(10 * count)
			if n := tree.Insert(&entries[i].node, compareEntry); n == &entries[i].node {
				break
			}
			// duplicate key: the tree is untouched, pick another
		}
		log.Debugf("inserted: %d", entries[i].key)
		validate(program, tree)
	}

	bound := 1.44 * math.Log2(float64(tree.Count()+2))
	fmt.Printf("inserted: %d nodes  height: %d  bound: %.2f\n", tree.Count(), tree.Height(), bound)
	if float64(tree.Height()) > bound {
		exitwithstatus.Message("%s: height: %d exceeds bound: %.2f", program, tree.Height(), bound)
	}

	if printTree {
		depth := tree.Print(formatEntry)
		fmt.Printf("depth: %d\n", depth)
	}

	// in-order walk must be strictly increasing and complete
	n := 0
	previous := -1 // keys are non-negative
	for p := tree.First(); nil != p; p = p.Next() {
		key := entryOf(p).key
		if key <= previous {
			exitwithstatus.Message("%s: out of order: %d after %d", program, key, previous)
		}
		previous = key
		n += 1
	}
	if n != tree.Count() {
		exitwithstatus.Message("%s: walk count: %d  expected: %d", program, n, tree.Count())
	}
	fmt.Printf("in-order walk: %d nodes  first: %d  last: %d\n",
		n, entryOf(tree.First()).key, entryOf(tree.Last()).key)

	// removal phase: random order, validating after each step
	for _, i := range rnd.Perm(count) {
		log.Debugf("removing: %d", entries[i].key)
		tree.Remove(&entries[i].node)
		validate(program, tree)
	}

	if !tree.IsEmpty() {
		exitwithstatus.Message("%s: %d nodes remain after removal", program, tree.Count())
	}

	log.Info("all invariants held")
	fmt.Printf("removed: %d nodes  tree is empty\n", count)
}

// run all invariant checkers, terminating with a diagnostic dump on
// the first failure
func validate(program string, tree *avltree.Tree) {
	ok := true
	if !tree.CheckUp() {
		fmt.Printf("parent link check failed\n")
		ok = false
	}
	if !tree.CheckBalance() {
		fmt.Printf("balance factor check failed\n")
		ok = false
	}
	if !tree.CheckOrder(compareEntry) {
		fmt.Printf("ordering check failed\n")
		ok = false
	}
	if !ok {
		depth := tree.Print(formatEntry)
		exitwithstatus.Message("%s: inconsistent tree, depth: %d", program, depth)
	}
}
