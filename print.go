// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

import (
	"fmt"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
//
// format renders a node's owning record, since the tree itself has no
// access to keys; returns the maximum depth of the tree
func (tree *Tree) Print(format func(*Node) string) int {
	return printTree(tree.root, "", root, format)
}

// internal print - returns the maximum depth of the tree
func printTree(tree *Node, prefix string, br branch, format func(*Node) string) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.children[Right] {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(tree.children[Right], prefix+t, right, format)
	}
	switch br {
	case root:
		fmt.Printf("%s|------+ ", prefix)
	case left:
		fmt.Printf("%s\\------+ ", prefix)
	case right:
		fmt.Printf("%s/------+ ", prefix)
	}
	up := "nil"
	if nil != tree.parent {
		up = format(tree.parent)
	}
	fmt.Printf("%s ^%s %+2d\n", format(tree), up, tree.balance)
	if nil != tree.children[Left] {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(tree.children[Left], prefix+t, left, format)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
