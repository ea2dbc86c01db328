package geometry

import (
	"math"
	"sync"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/log"
)

const (
	// LeafCapacity is the maximum number of primitives stored in a leaf.
	LeafCapacity = 16

	// Number of centroid bins evaluated per axis by the SAH builder.
	sahBins = 16

	// Nodes with at least this many primitives score the three split axes
	// concurrently.
	parallelSplitThreshold = 4096

	// Relative cost of a node traversal step against a primitive test.
	traversalCost = 1.0
)

var bvhLogger = log.New("bvh")

// bvhNode is a node of the flattened tree. Interior nodes store their left
// child right after themselves and the right child at index right. Leaves
// reference indices[start : start+count].
type bvhNode struct {
	bounds core.AABB
	right  int
	start  int
	count  int
}

func (n *bvhNode) isLeaf() bool {
	return n.count > 0
}

// BVH is a bounding volume hierarchy over a fixed list of primitives.
type BVH struct {
	prims   []FiniteGeometry
	indices []int
	nodes   []bvhNode
}

// BVHStats describes the shape of a built tree
type BVHStats struct {
	Nodes      int
	Leaves     int
	MaxDepth   int
	Primitives int
}

// primInfo caches what the builder needs per primitive
type primInfo struct {
	bounds   core.AABB
	centroid core.Vec3
}

// NewBVH builds a BVH over prims using a binned surface area heuristic.
// An empty list yields a tree that never reports hits. The slice is not
// modified but must not be mutated while the tree is in use.
func NewBVH(prims []FiniteGeometry) *BVH {
	bvh := &BVH{prims: prims}
	if len(prims) == 0 {
		return bvh
	}

	start := time.Now()
	info := make([]primInfo, len(prims))
	bvh.indices = make([]int, len(prims))
	for i, p := range prims {
		info[i] = primInfo{bounds: p.Bounds(), centroid: p.Centroid()}
		bvh.indices[i] = i
	}

	bvh.nodes = make([]bvhNode, 0, 2*len(prims)/LeafCapacity+1)
	bvh.build(info, 0, len(prims))

	stats := bvh.Stats()
	bvhLogger.Debugf("built BVH over %d primitives in %s: nodes=%d leaves=%d depth=%d",
		len(prims), time.Since(start), stats.Nodes, stats.Leaves, stats.MaxDepth)
	return bvh
}

// Len returns the number of indexed primitives
func (bvh *BVH) Len() int {
	return len(bvh.prims)
}

// Bounds returns the bounds of the root node
func (bvh *BVH) Bounds() core.AABB {
	if len(bvh.nodes) == 0 {
		return core.EmptyAABB()
	}
	return bvh.nodes[0].bounds
}

// build partitions indices[start:end] and returns the index of the new node
func (bvh *BVH) build(info []primInfo, start, end int) int {
	bounds := core.EmptyAABB()
	centroidBounds := core.EmptyAABB()
	for _, idx := range bvh.indices[start:end] {
		bounds = bounds.Union(info[idx].bounds)
		centroidBounds = centroidBounds.Extend(info[idx].centroid)
	}

	nodeIndex := len(bvh.nodes)
	bvh.nodes = append(bvh.nodes, bvhNode{bounds: bounds})

	count := end - start
	if count <= LeafCapacity {
		bvh.nodes[nodeIndex].start = start
		bvh.nodes[nodeIndex].count = count
		return nodeIndex
	}

	mid := bvh.partitionSAH(info, start, end, bounds, centroidBounds)
	if mid <= start || mid >= end {
		mid = bvh.partitionMedian(info, start, end, centroidBounds.LongestAxis())
	}

	bvh.build(info, start, mid)
	right := bvh.build(info, mid, end)
	bvh.nodes[nodeIndex].right = right
	return nodeIndex
}

// splitScore is the best split found along one axis
type splitScore struct {
	axis  int
	bin   int
	cost  float64
	valid bool
}

// partitionSAH reorders indices[start:end] around the cheapest bin boundary
// and returns the first index of the right half. It returns start when no
// split is possible.
func (bvh *BVH) partitionSAH(info []primInfo, start, end int, bounds, centroidBounds core.AABB) int {
	items := bvh.indices[start:end]

	var scores [3]splitScore
	if len(items) >= parallelSplitThreshold {
		var wg sync.WaitGroup
		for axis := 0; axis < 3; axis++ {
			wg.Add(1)
			go func(axis int) {
				defer wg.Done()
				scores[axis] = scoreAxis(info, items, axis, bounds, centroidBounds)
			}(axis)
		}
		wg.Wait()
	} else {
		for axis := 0; axis < 3; axis++ {
			scores[axis] = scoreAxis(info, items, axis, bounds, centroidBounds)
		}
	}

	best := splitScore{cost: math.Inf(1)}
	for _, s := range scores {
		if s.valid && s.cost < best.cost {
			best = s
		}
	}
	if !best.valid {
		return start
	}

	lo := centroidBounds.Min.Axis(best.axis)
	extent := centroidBounds.Max.Axis(best.axis) - lo
	i, j := 0, len(items)-1
	for i <= j {
		if binIndex(info[items[i]].centroid.Axis(best.axis), lo, extent) <= best.bin {
			i++
		} else {
			items[i], items[j] = items[j], items[i]
			j--
		}
	}
	return start + i
}

// scoreAxis evaluates every bin boundary along axis with the SAH cost
// traversal + (leftArea*leftCount + rightArea*rightCount) / parentArea
func scoreAxis(info []primInfo, items []int, axis int, bounds, centroidBounds core.AABB) splitScore {
	lo := centroidBounds.Min.Axis(axis)
	extent := centroidBounds.Max.Axis(axis) - lo
	if extent <= 0 {
		return splitScore{}
	}

	var binBounds [sahBins]core.AABB
	var binCounts [sahBins]int
	for i := range binBounds {
		binBounds[i] = core.EmptyAABB()
	}
	for _, idx := range items {
		b := binIndex(info[idx].centroid.Axis(axis), lo, extent)
		binCounts[b]++
		binBounds[b] = binBounds[b].Union(info[idx].bounds)
	}

	// Sweep from the right to collect suffix areas
	var rightArea [sahBins]float64
	var rightCount [sahBins]int
	acc := core.EmptyAABB()
	count := 0
	for b := sahBins - 1; b > 0; b-- {
		acc = acc.Union(binBounds[b])
		count += binCounts[b]
		rightArea[b] = acc.SurfaceArea()
		rightCount[b] = count
	}

	parentArea := bounds.SurfaceArea()
	if parentArea <= 0 {
		parentArea = 1
	}

	best := splitScore{axis: axis, cost: math.Inf(1)}
	acc = core.EmptyAABB()
	count = 0
	for b := 0; b < sahBins-1; b++ {
		acc = acc.Union(binBounds[b])
		count += binCounts[b]
		if count == 0 || rightCount[b+1] == 0 {
			continue
		}
		cost := traversalCost + (acc.SurfaceArea()*float64(count)+rightArea[b+1]*float64(rightCount[b+1]))/parentArea
		if cost < best.cost {
			best.cost = cost
			best.bin = b
			best.valid = true
		}
	}
	return best
}

func binIndex(value, lo, extent float64) int {
	b := int(float64(sahBins) * (value - lo) / extent)
	if b < 0 {
		return 0
	}
	if b >= sahBins {
		return sahBins - 1
	}
	return b
}

// partitionMedian splits indices[start:end] in half by centroid order along
// axis. Used when every centroid falls in the same bin.
func (bvh *BVH) partitionMedian(info []primInfo, start, end, axis int) int {
	items := bvh.indices[start:end]
	mid := len(items) / 2
	nthElement(items, mid, func(a, b int) bool {
		return info[a].centroid.Axis(axis) < info[b].centroid.Axis(axis)
	})
	return start + mid
}

// nthElement reorders items so that items[n] holds the element that would
// be there after sorting, smaller ones before it and larger ones after it.
func nthElement(items []int, n int, less func(a, b int) bool) {
	lo, hi := 0, len(items)-1
	for lo < hi {
		pivot := items[(lo+hi)/2]
		i, j := lo, hi
		for i <= j {
			for less(items[i], pivot) {
				i++
			}
			for less(pivot, items[j]) {
				j--
			}
			if i <= j {
				items[i], items[j] = items[j], items[i]
				i++
				j--
			}
		}
		if n <= j {
			hi = j
		} else if n >= i {
			lo = i
		} else {
			return
		}
	}
}

// NearestIntersection returns the nearest hit whose squared distance lies
// in (core.Bias2, bound2). Pass math.Inf(1) for an unbounded search.
func (bvh *BVH) NearestIntersection(ray core.Ray, bound2 float64) (core.Hit, bool) {
	minT, maxT, ok := tSpan(ray, bound2)
	if !ok {
		return core.Hit{}, false
	}
	hit, _, found := bvh.nearest(ray, minT, maxT)
	return hit, found
}

// nearest returns the nearest hit with a parametric distance in
// (minT, maxT) and the index of the primitive that produced it. Nested
// composites receive the same window, so the acceptance rule stays in the
// frame of the outermost ray.
func (bvh *BVH) nearest(ray core.Ray, minT, maxT float64) (core.Hit, int, bool) {
	var best core.Hit
	bestIndex := -1
	if len(bvh.nodes) == 0 {
		return best, bestIndex, false
	}
	bestT := maxT

	type entry struct {
		node int
		t    float64
	}
	var stackBuf [64]entry
	stack := stackBuf[:0]

	if t, ok := bvh.nodes[0].bounds.Entry(ray, 0, bestT); ok {
		stack = append(stack, entry{0, t})
	}

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.t > bestT {
			continue
		}

		node := &bvh.nodes[e.node]
		if node.isLeaf() {
			for _, idx := range bvh.indices[node.start : node.start+node.count] {
				hit, ok := intersectSpan(bvh.prims[idx], ray, minT, bestT)
				if !ok || hit.T <= minT || hit.T >= bestT {
					continue
				}
				best = hit
				bestT = hit.T
				bestIndex = idx
			}
			continue
		}

		left, right := e.node+1, node.right
		tl, okl := bvh.nodes[left].bounds.Entry(ray, 0, bestT)
		tr, okr := bvh.nodes[right].bounds.Entry(ray, 0, bestT)

		// Push the far child first so the near one is visited first
		switch {
		case okl && okr:
			if tl <= tr {
				stack = append(stack, entry{right, tr}, entry{left, tl})
			} else {
				stack = append(stack, entry{left, tl}, entry{right, tr})
			}
		case okl:
			stack = append(stack, entry{left, tl})
		case okr:
			stack = append(stack, entry{right, tr})
		}
	}

	return best, bestIndex, bestIndex >= 0
}

// Stats returns statistics about the tree structure
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{}
	if len(bvh.nodes) == 0 {
		return stats
	}
	bvh.collectStats(0, 0, &stats)
	return stats
}

func (bvh *BVH) collectStats(index, depth int, stats *BVHStats) {
	stats.Nodes++
	stats.MaxDepth = max(stats.MaxDepth, depth)

	node := &bvh.nodes[index]
	if node.isLeaf() {
		stats.Leaves++
		stats.Primitives += node.count
		return
	}
	bvh.collectStats(index+1, depth+1, stats)
	bvh.collectStats(node.right, depth+1, stats)
}

// Refit recomputes node bounds from the current primitive bounds without
// changing the tree structure. Children are stored after their parent, so
// a single reverse sweep suffices.
func (bvh *BVH) Refit() {
	for i := len(bvh.nodes) - 1; i >= 0; i-- {
		node := &bvh.nodes[i]
		bounds := core.EmptyAABB()
		if node.isLeaf() {
			for _, idx := range bvh.indices[node.start : node.start+node.count] {
				bounds = bounds.Union(bvh.prims[idx].Bounds())
			}
		} else {
			bounds = bvh.nodes[i+1].bounds.Union(bvh.nodes[node.right].bounds)
		}
		node.bounds = bounds
	}
}
