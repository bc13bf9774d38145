package forest

import (
	"math/rand"
	"time"
)

// Node is either a split node (Split, Left and Right non-nil) or a leaf
// (Split nil, Dist set).
type Node[I any] struct {
	Split Candidate[I]
	Left  *Node[I]
	Right *Node[I]
	Dist  Distribution
}

func (n *Node[I]) IsLeaf() bool { return n.Split == nil }

func (n *Node[I]) classify(x I) Distribution {
	for !n.IsLeaf() {
		if n.Split.Classify(x) == Left {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Dist
}

func (n *Node[I]) depth() int {
	if n.IsLeaf() {
		return 0
	}
	return 1 + max(n.Left.depth(), n.Right.depth())
}

func (n *Node[I]) leaves() int {
	if n.IsLeaf() {
		return 1
	}
	return n.Left.leaves() + n.Right.leaves()
}

type Tree[I any] struct {
	Root *Node[I]
}

// LearnTree grows a tree over data, reordering it in place. A nil rng is
// replaced by a time seeded source.
func LearnTree[I any](params Parameters, gen Generator[I], rng *rand.Rand, data []Record[I]) (*Tree[I], error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}
	if err := params.validateTree(len(data)); err != nil {
		return nil, err
	}
	return learnTree(params, gen, orDefault(rng), data), nil
}

func learnTree[I any](params Parameters, gen Generator[I], rng *rand.Rand, data []Record[I]) *Tree[I] {
	b := &builder[I]{params: params, gen: gen, rng: rng}
	cur := make([]Side, len(data))
	best := make([]Side, len(data))
	return &Tree[I]{Root: b.build(data, cur, best, 0)}
}

func (t *Tree[I]) Classify(x I) Label { return t.Root.classify(x).MostProbable() }

// ClassifyConfidence returns the distribution of the leaf x reaches.
func (t *Tree[I]) ClassifyConfidence(x I) Distribution { return t.Root.classify(x) }

// Depth is the number of split nodes on the longest root to leaf path.
func (t *Tree[I]) Depth() int { return t.Root.depth() }

func (t *Tree[I]) Leaves() int { return t.Root.leaves() }

type builder[I any] struct {
	params Parameters
	gen    Generator[I]
	rng    *rand.Rand
}

// build holds data, cur and best with equal lengths; cur and best are scratch
// space for the sides of the candidate being probed and of the best so far.
func (b *builder[I]) build(data []Record[I], cur, best []Side, depth int) *Node[I] {
	n := len(data)
	var counts [labelSpace]int
	for _, r := range data {
		counts[r.Label]++
	}
	if n <= b.params.MinSamplesPerLeaf ||
		(b.params.MaxDepth > 0 && depth >= b.params.MaxDepth) ||
		entropyOfCounts(&counts, n) == 0 {
		return &Node[I]{Dist: fromCounts(&counts)}
	}

	var bestC Candidate[I]
	bestGain, bestLeft := 0.0, 0
	for k := 0; k < b.params.CandidatesPerNode; k++ {
		c := b.gen.Generate(b.rng)
		nLeft, g := probe(c, data, &counts, cur)
		if bestC == nil || g > bestGain || (degenerate(bestLeft, n) && !degenerate(nLeft, n) && g >= bestGain) {
			bestC, bestGain, bestLeft = c, g, nLeft
			cur, best = best, cur
		}
	}

	if degenerate(bestLeft, n) {
		return &Node[I]{Dist: fromCounts(&counts)}
	}
	split := partitionSides(best, data)
	return &Node[I]{
		Split: bestC,
		Left:  b.build(data[:split], cur[:split], best[:split], depth+1),
		Right: b.build(data[split:], cur[split:], best[split:], depth+1),
	}
}

// probe scores c on data without reordering it, leaving the side of every
// record in sides.
func probe[I any](c Candidate[I], data []Record[I], whole *[labelSpace]int, sides []Side) (int, float64) {
	var left, right [labelSpace]int
	nLeft := 0
	for i, r := range data {
		s := c.Classify(r.Input)
		sides[i] = s
		if s == Left {
			left[r.Label]++
			nLeft++
		} else {
			right[r.Label]++
		}
	}
	return nLeft, gain(whole, &left, &right, nLeft, len(data))
}

func degenerate(nLeft, n int) bool { return nLeft == 0 || nLeft == n }

func orDefault(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
