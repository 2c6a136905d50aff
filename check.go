// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

import (
	"fmt"
)

// CheckUp - check the parent back references for consistency
func (tree *Tree) CheckUp() bool {
	return checkUp(tree.root, nil)
}

// internal: consistency checker
func checkUp(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.parent != up {
		fmt.Printf("fail at node: %p  actual parent: %p  expected: %p\n", p, p.parent, up)
		return false
	}
	if !checkUp(p.children[Left], p) {
		return false
	}
	return checkUp(p.children[Right], p)
}

// CheckBalance - verify every stored balance factor against the
// recomputed sub-tree heights and the ±1 bound
func (tree *Tree) CheckBalance() bool {
	_, ok := checkBalance(tree.root)
	return ok
}

// internal: returns the height of the sub-tree and a validity flag
func checkBalance(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, lok := checkBalance(p.children[Left])
	rh, rok := checkBalance(p.children[Right])
	if !lok || !rok {
		return 0, false
	}
	if rh-lh != p.balance {
		fmt.Printf("fail at node: %p  stored balance: %d  actual: %d\n", p, p.balance, rh-lh)
		return 0, false
	}
	if AbsBalance(rh-lh) > 1 {
		fmt.Printf("fail at node: %p  balance out of range: %d\n", p, rh-lh)
		return 0, false
	}
	if rh > lh {
		return rh + 1, true
	}
	return lh + 1, true
}

// CheckOrder - verify an in-order walk yields strictly increasing
// keys under the supplied comparator
func (tree *Tree) CheckOrder(cmp CompareFunc) bool {
	prev := (*Node)(nil)
	for p := tree.First(); nil != p; p = p.Next() {
		if nil != prev && cmp(prev, p) >= 0 {
			fmt.Printf("fail at node: %p  not greater than predecessor: %p\n", p, prev)
			return false
		}
		prev = p
	}
	return true
}

// Height - recomputed height of the tree: zero when empty, one for a
// single node
func (tree *Tree) Height() int {
	return height(tree.root)
}

func height(p *Node) int {
	if nil == p {
		return 0
	}
	lh := height(p.children[Left])
	rh := height(p.children[Right])
	if rh > lh {
		return rh + 1
	}
	return lh + 1
}
