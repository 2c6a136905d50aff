// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// internal: restore the height invariant of the sub-tree rooted at a
// node whose balance factor is about to leave -1…+1
//
// the node still carries its old ±1 balance; the pending ±1
// adjustment that would take it to ±2 selects the same heavy side, so
// the stored sign is used to pick the heavy child and the rotation
// case is chosen from that child's own balance
//
// returns true if the sub-tree height shrank by one, in which case a
// removal retrace must continue towards the root; false (case 3 only)
// means the height is unchanged and the retrace stops
func (tree *Tree) rebalance(node *Node) bool {
	which := side(node.balance)
	other := 1 - which
	child := node.children[which]

	// child slot in the parent (or the root) that must be rewritten
	// to the new sub-tree root
	parent := node.parent
	slot := &tree.root
	if nil != parent {
		slot = &parent.children[node.WhichChild()]
	}

	switch {
	case node.balance == child.balance:
		// case 1: single rotation, heavy child leaning the same
		// way; the heavy child becomes the sub-tree root and both
		// nodes end in perfect balance
		inner := child.children[other]

		*slot = child
		child.parent = parent

		node.parent = child
		child.children[other] = node

		node.children[which] = inner
		if nil != inner {
			inner.parent = node
		}

		node.balance = 0
		child.balance = 0
		return true

	case 0 != child.balance:
		// case 2: double rotation, heavy child leaning the other
		// way; the inner grandchild becomes the sub-tree root and
		// its two sub-trees are shared out between the old root and
		// the heavy child
		grand := child.children[other]
		outer := grand.children[other] // re-homed under the old root
		inner := grand.children[which] // re-homed under the heavy child

		*slot = grand
		grand.parent = parent

		node.children[which] = outer
		if nil != outer {
			outer.parent = node
		}
		child.children[other] = inner
		if nil != inner {
			inner.parent = child
		}

		grand.children[other] = node
		node.parent = grand
		grand.children[which] = child
		child.parent = grand

		// the grandchild's old lean decides which of the two
		// re-parented nodes is left one short
		switch grand.balance {
		case child.balance:
			child.balance = -grand.balance
			node.balance = 0
		case 0:
			node.balance = 0
			child.balance = 0
		default:
			node.balance = -grand.balance
			child.balance = 0
		}
		grand.balance = 0
		return true

	default:
		// case 3: single rotation with a heavy child in perfect
		// balance; only a removal on the light side can produce
		// this shape and the sub-tree height does not change
		inner := child.children[other]

		*slot = child
		child.parent = parent

		node.parent = child
		child.children[other] = node

		node.children[which] = inner
		if nil != inner {
			inner.parent = node
		}

		// old root keeps its lean, new root takes the opposite one
		child.balance = -node.balance
		return false
	}
}
