// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// First - return the node with the lowest key value or nil if the
// tree is empty
func (tree *Tree) First() *Node {
	return tree.extreme(Left)
}

// Last - return the node with the highest key value or nil if the
// tree is empty
func (tree *Tree) Last() *Node {
	return tree.extreme(Right)
}

// internal: outermost node on one side of the tree
func (tree *Tree) extreme(which int) *Node {
	var last *Node
	for p := tree.root; nil != p; p = p.children[which] {
		last = p
	}
	return last
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes
//
// the node must currently be linked into a tree
func (p *Node) Next() *Node {
	return p.neighbour(Right)
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
//
// the node must currently be linked into a tree
func (p *Node) Prev() *Node {
	return p.neighbour(Left)
}

// internal: in-order neighbour on one side
//
// either descend to the far edge of the sub-tree on that side, or
// climb while the node is still that side's child and stop at the
// first crossing
func (p *Node) neighbour(which int) *Node {
	if nil != p.children[which] {
		p = p.children[which]
		for nil != p.children[1-which] {
			p = p.children[1-which]
		}
		return p
	}
	parent := p.parent
	for nil != parent && parent.children[which] == p {
		p = parent
		parent = p.parent
	}
	return parent
}
