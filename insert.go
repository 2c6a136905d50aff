// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// Insert - add a caller owned node to the tree
//
// the node's link fields and balance factor are initialised here, the
// caller does not need to prepare them
//
// returns the node itself after a successful insert; if a member with
// an equal key is already present that member is returned instead and
// neither the tree nor the caller's node is modified
func (tree *Tree) Insert(node *Node, cmp CompareFunc) *Node {
	slot := &tree.root
	parent := (*Node)(nil)
	for nil != *slot {
		c := cmp(node, *slot)
		if 0 == c {
			return *slot
		}
		parent = *slot
		slot = &parent.children[side(c)]
	}

	// splice in as a leaf at the empty slot the descent ended on
	*slot = node
	node.parent = parent
	node.children[Left] = nil
	node.children[Right] = nil
	node.balance = 0
	tree.count += 1

	// retrace: adjust ancestor balance factors until the growth is
	// absorbed, rotating at most once
	for p, q := parent, node; nil != p; p, q = p.parent, p {
		adjust := grow(q.WhichChild())
		switch AbsBalance(p.balance + adjust) {
		case 0:
			// perfect balance restored: this sub-tree's height is
			// unchanged so no ancestor is affected
			p.balance += adjust
			return node
		case 1:
			// grew by one, keep walking up
			p.balance += adjust
		default:
			// would reach ±2: a single rebalance here restores the
			// whole tree after an insert
			tree.rebalance(p)
			return node
		}
	}
	return node
}
