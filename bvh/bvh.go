// Package bvh implements a bounding volume hierarchy over shapes.
//
// Trees are built once from a shape list using a bucketed surface area
// heuristic and are immutable afterwards. All query methods are safe for
// concurrent use once Build has returned.
package bvh

import (
	"github.com/zhzh2001/litewq/shape"
	"github.com/zhzh2001/litewq/types"
)

// Index of a node inside the tree node list.
type NodeIndex int32

// NoNode marks a missing child or an empty tree root.
const NoNode NodeIndex = -1

// A BVH node. Interior nodes reference two children; leaves have no children
// and reference exactly one shape.
type Node struct {
	Bounds types.Bounds3

	Left  NodeIndex
	Right NodeIndex

	// Index into the BVH shape list for leaves; -1 for interior nodes.
	Shape int32
}

// Returns true if this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.Left == NoNode && n.Right == NoNode
}

// A BVH owns its node list and the (reordered) shape list it was built from.
type BVH struct {
	// Nodes stored as a contiguous list in depth-first order; the root is
	// the first entry.
	nodes []Node
	root  NodeIndex

	shapes []shape.Shape
	stats  Stats
}

// Returns true if the tree was built from an empty shape list.
func (t *BVH) Empty() bool {
	return t.root == NoNode
}

// Number of shapes (and therefore leaves) in the tree.
func (t *BVH) Len() int {
	return len(t.shapes)
}

// Get the shape list. Leaf nodes index into this list; its order does not
// necessarily match the order passed to Build.
func (t *BVH) Shapes() []shape.Shape {
	return t.shapes
}

// Get the root node. The second return value is false for empty trees.
func (t *BVH) Root() (Node, bool) {
	if t.root == NoNode {
		return Node{}, false
	}
	return t.nodes[t.root], true
}

// Get a node by index.
func (t *BVH) Node(index NodeIndex) Node {
	return t.nodes[index]
}

// Number of nodes in the tree.
func (t *BVH) NodeCount() int {
	return len(t.nodes)
}

// Get the build statistics.
func (t *BVH) Stats() Stats {
	return t.stats
}

// Get the bounds of the tree root or the empty box if the tree has no shapes.
func (t *BVH) WorldBound() types.Bounds3 {
	if t.root == NoNode {
		return types.EmptyBounds()
	}
	return t.nodes[t.root].Bounds
}

// Returns true if any leaf bound overlaps box.
//
// Subtrees whose bounds do not overlap box are pruned. Since only a boolean
// is needed the traversal stops at the first overlapping leaf; use
// Overlapping when all overlapping leaves are required.
func (t *BVH) Intersect(box types.Bounds3) bool {
	if t.root == NoNode {
		return false
	}
	return t.intersect(t.root, box)
}

func (t *BVH) intersect(index NodeIndex, box types.Bounds3) bool {
	node := &t.nodes[index]
	if !node.Bounds.Overlaps(box) {
		return false
	}

	if node.IsLeaf() {
		return true
	}

	return t.intersect(node.Left, box) || t.intersect(node.Right, box)
}

// Get the indices (into Shapes()) of all leaves whose bounds overlap box.
func (t *BVH) Overlapping(box types.Bounds3) []int {
	hits := make([]int, 0)
	if t.root == NoNode {
		return hits
	}
	return t.overlapping(t.root, box, hits)
}

func (t *BVH) overlapping(index NodeIndex, box types.Bounds3, hits []int) []int {
	node := &t.nodes[index]
	if !node.Bounds.Overlaps(box) {
		return hits
	}

	if node.IsLeaf() {
		return append(hits, int(node.Shape))
	}

	hits = t.overlapping(node.Left, box, hits)
	return t.overlapping(node.Right, box, hits)
}

// Visit all nodes in depth-first order. If fn returns false the children of
// the visited node are skipped.
func (t *BVH) Visit(fn func(index NodeIndex, node Node, depth int) bool) {
	if t.root == NoNode {
		return
	}
	t.visit(t.root, 0, fn)
}

func (t *BVH) visit(index NodeIndex, depth int, fn func(NodeIndex, Node, int) bool) {
	node := t.nodes[index]
	if !fn(index, node, depth) || node.IsLeaf() {
		return
	}
	t.visit(node.Left, depth+1, fn)
	t.visit(node.Right, depth+1, fn)
}
