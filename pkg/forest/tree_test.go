package forest

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"
)

type bits [2]uint8

type bitIsZero struct {
	bit int
}

func (b bitIsZero) Classify(x bits) Side {
	if x[b.bit] == 0 {
		return Left
	}
	return Right
}

// alternating hands out the first and second bit test in turn.
type alternating struct {
	next int
}

func (a *alternating) Generate(*rand.Rand) Candidate[bits] {
	c := bitIsZero{bit: a.next % 2}
	a.next++
	return c
}

func randomBit() Generator[bits] {
	return GeneratorFunc[bits](func(rng *rand.Rand) Candidate[bits] {
		return bitIsZero{bit: rng.Intn(2)}
	})
}

func xorRecords() []Record[bits] {
	return []Record[bits]{
		{bits{1, 0}, 1},
		{bits{0, 1}, 1},
		{bits{0, 0}, 0},
		{bits{1, 1}, 0},
	}
}

func TestLearnTreeXOR(t *testing.T) {
	params := Parameters{MinSamplesPerLeaf: 1, MaxDepth: 3, CandidatesPerNode: 4}
	tree, err := LearnTree[bits](params, &alternating{}, rand.New(rand.NewSource(1)), xorRecords())
	if err != nil {
		t.Fatalf("LearnTree: %v", err)
	}

	for _, r := range xorRecords() {
		if got := tree.Classify(r.Input); got != r.Label {
			t.Errorf("Classify(%v) = %d, want %d", r.Input, got, r.Label)
		}
		if p := tree.ClassifyConfidence(r.Input).Prob(r.Label); p != 1 {
			t.Errorf("confidence for %v = %v, want 1", r.Input, p)
		}
	}
	if d := tree.Depth(); d != 2 {
		t.Errorf("Depth = %d, want 2", d)
	}
	if l := tree.Leaves(); l != 4 {
		t.Errorf("Leaves = %d, want 4", l)
	}
}

func TestLearnTreeDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	base := make([]Record[int], 200)
	for i := range base {
		x := rng.Intn(1000)
		base[i] = Record[int]{Input: x, Label: Label(x % 4)}
	}
	gen := GeneratorFunc[int](func(rng *rand.Rand) Candidate[int] {
		return modBelow{mod: 2 + rng.Intn(6), below: 1 + rng.Intn(3)}
	})
	params := Parameters{MinSamplesPerLeaf: 2, CandidatesPerNode: 5}

	train := func() *Tree[int] {
		data := append([]Record[int](nil), base...)
		tree, err := LearnTree[int](params, gen, rand.New(rand.NewSource(42)), data)
		if err != nil {
			t.Fatalf("LearnTree: %v", err)
		}
		return tree
	}
	a, b := train(), train()
	if !reflect.DeepEqual(a.Root, b.Root) {
		t.Fatal("same seed produced different trees")
	}
}

func TestLearnTreeSingleLeafAtStoppingBound(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := NewMockGenerator[bits](ctrl)
	gen.EXPECT().Generate(gomock.Any()).Times(0)

	data := xorRecords()
	tree, err := LearnTree[bits](Parameters{MinSamplesPerLeaf: len(data), CandidatesPerNode: 3}, gen, nil, data)
	if err != nil {
		t.Fatalf("LearnTree: %v", err)
	}
	if !tree.Root.IsLeaf() {
		t.Fatal("root is not a leaf")
	}
	if p := tree.ClassifyConfidence(bits{0, 0}).Prob(1); p != 0.5 {
		t.Errorf("leaf mass for 1 = %v, want 0.5", p)
	}
}

func TestLearnTreeTriesEveryCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := NewMockGenerator[bits](ctrl)
	gen.EXPECT().Generate(gomock.Any()).Times(3).Return(bitIsZero{bit: 1})

	params := Parameters{MaxDepth: 1, CandidatesPerNode: 3}
	data := []Record[bits]{{bits{0, 0}, 0}, {bits{0, 1}, 1}, {bits{1, 0}, 0}, {bits{1, 1}, 1}}
	tree, err := LearnTree[bits](params, gen, nil, data)
	if err != nil {
		t.Fatalf("LearnTree: %v", err)
	}
	if tree.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", tree.Depth())
	}
	if got := tree.Classify(bits{1, 1}); got != 1 {
		t.Errorf("Classify = %d, want 1", got)
	}
}

func TestLearnTreeMaxDepth(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	data := make([]Record[int], 300)
	for i := range data {
		x := rng.Intn(1 << 10)
		data[i] = Record[int]{Input: x, Label: Label(x % 7)}
	}
	gen := GeneratorFunc[int](func(rng *rand.Rand) Candidate[int] {
		return modBelow{mod: 2 + rng.Intn(12), below: 1 + rng.Intn(6)}
	})
	for _, depth := range []int{1, 2, 4} {
		tree, err := LearnTree[int](Parameters{MaxDepth: depth, CandidatesPerNode: 8}, gen, rng, data)
		if err != nil {
			t.Fatalf("LearnTree: %v", err)
		}
		if got := tree.Depth(); got > depth {
			t.Errorf("MaxDepth %d: tree depth %d", depth, got)
		}
	}
}

func TestLearnTreePureAndInseparable(t *testing.T) {
	pure := []Record[bits]{{bits{0, 0}, 3}, {bits{1, 1}, 3}, {bits{0, 1}, 3}}
	tree, err := LearnTree[bits](Parameters{CandidatesPerNode: 2}, randomBit(), nil, pure)
	if err != nil {
		t.Fatalf("LearnTree: %v", err)
	}
	if !tree.Root.IsLeaf() || tree.Classify(bits{1, 0}) != 3 {
		t.Errorf("pure data did not give a single leaf")
	}

	same := []Record[bits]{{bits{1, 1}, 0}, {bits{1, 1}, 1}, {bits{1, 1}, 1}}
	tree, err = LearnTree[bits](Parameters{CandidatesPerNode: 2}, randomBit(), nil, same)
	if err != nil {
		t.Fatalf("LearnTree: %v", err)
	}
	if !tree.Root.IsLeaf() || tree.Classify(bits{1, 1}) != 1 {
		t.Errorf("inseparable data did not give a majority leaf")
	}
}

func TestChosenSplitGainNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	data := intRecords(rng, 150)
	gen := GeneratorFunc[int](func(rng *rand.Rand) Candidate[int] {
		return modBelow{mod: 2 + rng.Intn(9), below: rng.Intn(9)}
	})
	tree, err := LearnTree[int](Parameters{MinSamplesPerLeaf: 3, CandidatesPerNode: 6}, gen, rng, data)
	if err != nil {
		t.Fatalf("LearnTree: %v", err)
	}

	fresh := intRecords(rand.New(rand.NewSource(9)), 150)
	var walk func(n *Node[int], view []Record[int])
	walk = func(n *Node[int], view []Record[int]) {
		if n.IsLeaf() {
			return
		}
		split := Partition(n.Split, view)
		if g := InformationGain(split, view); g < 0 {
			t.Fatalf("chosen split has gain %v", g)
		}
		if split == 0 || split == len(view) {
			t.Fatalf("chosen split is degenerate on %d records", len(view))
		}
		walk(n.Left, view[:split])
		walk(n.Right, view[split:])
	}
	walk(tree.Root, fresh)
}

func TestLearnTreeErrors(t *testing.T) {
	if _, err := LearnTree[bits](Parameters{CandidatesPerNode: 1}, nil, nil, xorRecords()); !errors.Is(err, ErrNilGenerator) {
		t.Errorf("nil generator: err = %v", err)
	}
	if _, err := LearnTree[bits](Parameters{CandidatesPerNode: 1}, randomBit(), nil, nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("empty data: err = %v", err)
	}
	_, err := LearnTree[bits](Parameters{CandidatesPerNode: 0, MaxDepth: -1}, randomBit(), nil, xorRecords())
	if !errors.Is(err, ErrInvalidParameters) {
		t.Fatalf("bad params: err = %v", err)
	}
}
