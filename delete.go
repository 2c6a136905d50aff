// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// Remove - unlink a member node from the tree
//
// the node must currently be a member of this tree: removing a
// non-member is a contract violation and silently corrupts the tree
//
// only the node's link fields are touched, the caller remains
// responsible for the record's lifetime
func (tree *Tree) Remove(node *Node) {
	var parent *Node
	var which int

	if nil == node.children[Left] && nil == node.children[Right] {

		parent = node.parent
		if nil == parent {
			// this was the only node in the tree
			tree.root = nil
			tree.count -= 1
			return
		}
		which = node.WhichChild()
		parent.children[which] = nil

	} else {

		// replace by the in-order neighbour on the heavier side so
		// the retrace is more likely to stop early, falling back to
		// the other side when that neighbour does not exist
		var replacement *Node
		if node.balance < 0 {
			replacement = node.Prev()
			if nil == replacement {
				replacement = node.Next()
			}
		} else {
			replacement = node.Next()
			if nil == replacement {
				replacement = node.Prev()
			}
		}

		// the retrace starts where the removal's structural effect
		// first lands: at the replacement itself when it is the
		// node's direct child, otherwise at the replacement's old
		// parent
		parent = replacement
		which = replacement.WhichChild()
		if replacement.parent != node {
			parent = replacement.parent

			// the replacement is an extreme node, so its child
			// slot on its own side is empty: fill it with the
			// removed node's sub-tree on that side, and move the
			// replacement's displaced child up into its old slot
			grandchild := replacement.children[side(replacement.balance)]

			replacement.children[which] = node.children[which]
			if nil != replacement.children[which] {
				replacement.children[which].parent = replacement
			}
			parent.children[which] = grandchild
			if nil != grandchild {
				grandchild.parent = parent
			}
		}

		// take over the removed node's other sub-tree, balance and
		// position
		other := 1 - which
		replacement.children[other] = node.children[other]
		if nil != replacement.children[other] {
			replacement.children[other].parent = replacement
		}
		replacement.balance = node.balance

		replacement.parent = node.parent
		if nil == replacement.parent {
			tree.root = replacement
		} else {
			node.parent.children[node.WhichChild()] = replacement
		}
	}
	tree.count -= 1

	// retrace: a removal shrinks the side it came from, so the sign
	// convention is the opposite of insertion; reaching perfect
	// balance means the height dropped and the walk must continue,
	// while ±1 means the height is unchanged and the walk stops
	for nil != parent {
		adjust := -grow(which)

		// capture the next step before any rotation moves p
		which = parent.WhichChild()
		p := parent
		parent = parent.parent

		switch AbsBalance(p.balance + adjust) {
		case 0:
			p.balance += adjust
		case 1:
			p.balance += adjust
			return
		default:
			if !tree.rebalance(p) {
				// case 3: sub-tree height unchanged
				return
			}
		}
	}
}
