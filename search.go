// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// Search - find the member node comparing equal to a probe
//
// the probe need not be a tree member, it only has to be embedded in
// a record the comparator can read, so a throw-away record on the
// stack is sufficient
//
// returns nil if no member matches
func (tree *Tree) Search(probe *Node, cmp CompareFunc) *Node {
	p := tree.root
	for nil != p {
		c := cmp(probe, p)
		if 0 == c {
			break
		}
		p = p.children[side(c)]
	}
	return p
}
