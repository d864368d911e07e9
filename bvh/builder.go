package bvh

import (
	"fmt"
	"sort"
	"time"

	"github.com/zhzh2001/litewq/log"
	"github.com/zhzh2001/litewq/shape"
	"github.com/zhzh2001/litewq/types"
)

// Number of buckets used for evaluating SAH split candidates.
const bucketCount = 12

// A shape together with its cached world bound and centroid.
type buildItem struct {
	shape    shape.Shape
	bound    types.Bounds3
	centroid types.Vec3
}

type bucket struct {
	count int
	bound types.Bounds3
}

type builder struct {
	logger log.Logger

	// Work items; partitioned in place while the tree is built.
	items []buildItem

	// Bvh nodes stored as a contiguous list
	nodes []Node

	stats Stats
}

// Construct a BVH from a list of shapes.
//
// The BVH takes ownership of the shapes slice and reorders it while
// partitioning; callers must not rely on the original order afterwards. Each
// leaf references exactly one shape. Shapes must report finite world bounds
// that remain stable for the lifetime of the tree.
func Build(shapes []shape.Shape) *BVH {
	b := &builder{
		logger: log.New("bvh builder"),
		items:  make([]buildItem, len(shapes)),
		nodes:  make([]Node, 0, max(0, 2*len(shapes)-1)),
	}

	start := time.Now()
	for index, s := range shapes {
		bound := s.WorldBound()
		b.items[index] = buildItem{shape: s, bound: bound, centroid: bound.Centroid()}
	}

	tree := &BVH{root: NoNode, shapes: shapes}
	if len(shapes) > 0 {
		tree.root = b.partition(0, len(shapes), 0)
	}

	// Store the shapes in the order referenced by the leaves
	for index, item := range b.items {
		shapes[index] = item.shape
	}

	b.stats.Shapes = len(shapes)
	b.stats.BuildTime = time.Since(start)
	b.logger.Debugf(
		"BVH tree build time: %d ms, shapes: %d, maxDepth: %d, nodes: %d, leafs: %d, median splits: %d",
		b.stats.BuildTime.Nanoseconds()/1e6,
		b.stats.Shapes, b.stats.MaxDepth, b.stats.Nodes, b.stats.Leaves, b.stats.MedianSplits,
	)

	tree.nodes = b.nodes
	tree.stats = b.stats
	return tree
}

// Partition the items in [begin, end) and return the index of the subtree root.
func (b *builder) partition(begin, end, depth int) NodeIndex {
	if begin >= end {
		panic(fmt.Sprintf("bvh: invalid partition range [%d, %d)", begin, end))
	}

	if depth > b.stats.MaxDepth {
		b.stats.MaxDepth = depth
	}

	if end-begin == 1 {
		return b.createLeaf(begin)
	}

	nodeIndex := b.appendNode(Node{Left: NoNode, Right: NoNode, Shape: -1})

	var left, right NodeIndex
	if end-begin == 2 {
		if depth+1 > b.stats.MaxDepth {
			b.stats.MaxDepth = depth + 1
		}
		left = b.createLeaf(begin)
		right = b.createLeaf(begin + 1)
	} else {
		mid := b.split(begin, end)
		left = b.partition(begin, mid, depth+1)
		right = b.partition(mid, end, depth+1)
	}

	// The stored bound is the exact union of the realized children.
	node := &b.nodes[nodeIndex]
	node.Left = left
	node.Right = right
	node.Bounds = b.nodes[left].Bounds.Union(b.nodes[right].Bounds)
	return nodeIndex
}

// Select a split position for the items in [begin, end) using the surface
// area heuristic and partition the items around it. The returned mid point
// always satisfies begin < mid < end.
func (b *builder) split(begin, end int) int {
	nodeBound := types.EmptyBounds()
	centroidBound := types.EmptyBounds()
	for _, item := range b.items[begin:end] {
		nodeBound = nodeBound.Union(item.bound)
		centroidBound = centroidBound.UnionPoint(item.centroid)
	}
	axis := centroidBound.MaximumExtent()

	var buckets [bucketCount]bucket
	for index := range buckets {
		buckets[index].bound = types.EmptyBounds()
	}
	for _, item := range b.items[begin:end] {
		bi := bucketIndex(centroidBound, item.centroid, axis)
		buckets[bi].count++
		buckets[bi].bound = buckets[bi].bound.Union(item.bound)
	}

	splitBucket := minCostSplit(&buckets, nodeBound.SurfaceArea())

	// Move items whose bucket is <= splitBucket to the front of the range
	mid := begin
	for index := begin; index < end; index++ {
		if bucketIndex(centroidBound, b.items[index].centroid, axis) <= splitBucket {
			b.items[index], b.items[mid] = b.items[mid], b.items[index]
			mid++
		}
	}

	// All centroids ended up on the same side of the best split. Fall back
	// to splitting the range in two equally sized halves.
	if mid == begin || mid == end {
		mid = b.medianSplit(begin, end, axis)
		b.stats.MedianSplits++
	}

	if mid <= begin || mid >= end {
		panic(fmt.Sprintf("bvh: split %d does not partition range [%d, %d)", mid, begin, end))
	}
	return mid
}

// Order the items in [begin, end) by their centroid along axis and return
// the index of the median item.
func (b *builder) medianSplit(begin, end, axis int) int {
	work := b.items[begin:end]
	sort.SliceStable(work, func(i, j int) bool {
		return work[i].centroid[axis] < work[j].centroid[axis]
	})
	return begin + (end-begin)/2
}

// Setup a leaf node for the item at the given index and return its node index.
func (b *builder) createLeaf(itemIndex int) NodeIndex {
	b.stats.Leaves++
	return b.appendNode(Node{
		Bounds: b.items[itemIndex].bound,
		Left:   NoNode,
		Right:  NoNode,
		Shape:  int32(itemIndex),
	})
}

func (b *builder) appendNode(node Node) NodeIndex {
	b.nodes = append(b.nodes, node)
	b.stats.Nodes++
	return NodeIndex(len(b.nodes) - 1)
}

// Map a centroid to one of the SAH buckets along axis.
func bucketIndex(centroidBound types.Bounds3, centroid types.Vec3, axis int) int {
	bi := int(centroidBound.Offset(centroid)[axis] * bucketCount)
	if bi >= bucketCount {
		bi = bucketCount - 1
	} else if bi < 0 {
		bi = 0
	}
	return bi
}

// Evaluate the SAH cost of splitting after each bucket and return the index of
// the bucket with the lowest cost. The cost of splitting after bucket i is:
//
// 1 + (count0 * area0 + count1 * area1) / node area
//
// where count0/area0 refer to the union of buckets <= i and count1/area1 to
// the union of the remaining buckets. Ties resolve to the lowest index.
func minCostSplit(buckets *[bucketCount]bucket, nodeArea float32) int {
	var bestCost float32
	bestSplit := 0
	for split := 0; split < bucketCount-1; split++ {
		cost := splitCost(buckets[:split+1], buckets[split+1:], nodeArea)
		if split == 0 || cost < bestCost {
			bestCost = cost
			bestSplit = split
		}
	}
	return bestSplit
}

func splitCost(below, above []bucket, nodeArea float32) float32 {
	weighted := sideCost(below) + sideCost(above)

	// A node without area (all shapes are coincident points or flat and
	// collinear) gives every split the same cost.
	if nodeArea <= 0 {
		return 1
	}
	return 1 + weighted/nodeArea
}

// Number of items in a bucket range multiplied by the surface area of their
// bounds. Empty ranges cost nothing.
func sideCost(buckets []bucket) float32 {
	count := 0
	bound := types.EmptyBounds()
	for _, bk := range buckets {
		count += bk.count
		bound = bound.Union(bk.bound)
	}
	if count == 0 {
		return 0
	}
	return float32(count) * bound.SurfaceArea()
}
