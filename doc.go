// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avltree - an AVL balanced binary search tree with parent
// pointers to allow iteration through the nodes
//
// This is the intrusive variant: the caller embeds a Node by value
// inside its own record and supplies a comparison function over node
// pointers.  The library never allocates or frees node memory and
// never stores keys or values of its own; recovering the owning
// record from a node pointer is the caller's business (normally a
// fixed offset subtraction or a zero-offset cast when the node is the
// record's first field).
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Balancing uses the classic balance-factor formulation: each node
// stores the height of its right sub-tree minus the height of its
// left sub-tree, bounded to -1…+1, and insert/remove walk the parent
// chain from the mutation point applying at most one single or double
// rotation to restore the bound.
package avltree
