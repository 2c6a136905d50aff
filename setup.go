// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// child slot indices
const (
	Left  = 0
	Right = 1
)

// CompareFunc - caller supplied ordering over a pair of embedded
// nodes
//
// must return negative, zero or positive for a < b, a == b and a > b
// respectively, be consistent across calls and only examine fields of
// the owning records, never the node link fields
type CompareFunc func(a, b *Node) int

// Node - intrusive tree node for embedding by value inside a caller
// owned record
//
// all fields are maintained by the tree; the caller must treat an
// embedded node as opaque while its record is a tree member
type Node struct {
	children [2]*Node // left and right sub-trees
	parent   *Node    // points to parent node, nil only at the root
	balance  int      // right height minus left height: -1, 0, +1
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no nodes
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Child - read the left (0) or right (1) sub-tree link of a node
func (p *Node) Child(which int) *Node {
	return p.children[which]
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.parent
}

// Balance - read the stored balance factor of a node
func (p *Node) Balance() int {
	return p.balance
}

// WhichChild - determine which side of its parent a node occupies
//
// returns Left or Right, or -1 when the node is the tree root
func (p *Node) WhichChild() int {
	parent := p.parent
	if nil == parent {
		return -1
	}
	if p == parent.children[Left] {
		return Left
	}
	return Right
}

// AbsBalance - magnitude of a balance factor
func AbsBalance(balance int) int {
	if balance < 0 {
		return -balance
	}
	return balance
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.parent
	for parent != nil {
		count += 1
		parent = parent.parent
	}
	return count
}

// internal: child slot selected by a comparator or balance sign
func side(sign int) int {
	if sign < 0 {
		return Left
	}
	return Right
}

// internal: balance adjustment caused by growth on one side
func grow(which int) int {
	if Left == which {
		return -1
	}
	return 1
}
