package forest

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"go.uber.org/mock/gomock"
)

type modBelow struct {
	mod, below int
}

func (m modBelow) Classify(x int) Side {
	if x%m.mod < m.below {
		return Left
	}
	return Right
}

func intRecords(rng *rand.Rand, n int) []Record[int] {
	data := make([]Record[int], n)
	for i := range data {
		data[i] = Record[int]{Input: rng.Intn(1000), Label: Label(rng.Intn(3))}
	}
	return data
}

func sortedCopy(data []Record[int]) []Record[int] {
	out := append([]Record[int](nil), data...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Input != out[j].Input {
			return out[i].Input < out[j].Input
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func TestPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		data := intRecords(rng, rng.Intn(60))
		before := sortedCopy(data)
		c := modBelow{mod: 2 + rng.Intn(9), below: rng.Intn(10)}

		split := Partition[int](c, data)
		for j, r := range data {
			want := Right
			if j < split {
				want = Left
			}
			if got := c.Classify(r.Input); got != want {
				t.Fatalf("record %d (%d) at index %d classified %v, split %d", j, r.Input, j, got, split)
			}
		}
		after := sortedCopy(data)
		for j := range before {
			if before[j] != after[j] {
				t.Fatalf("partition is not a permutation: %v vs %v", before, after)
			}
		}
	}
}

func TestPartitionClassifiesEachRecordOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := NewMockCandidate[int](ctrl)
	data := []Record[int]{{Input: 1}, {Input: 2}, {Input: 3}, {Input: 4}, {Input: 5}}
	c.EXPECT().Classify(gomock.Any()).Times(len(data)).DoAndReturn(func(x int) Side {
		if x%2 == 0 {
			return Left
		}
		return Right
	})

	if split := Partition[int](c, data); split != 2 {
		t.Fatalf("split = %d, want 2", split)
	}
	if data[0].Input%2 != 0 || data[1].Input%2 != 0 {
		t.Errorf("prefix holds odd inputs: %v", data[:2])
	}
}

func TestPartitionSidesMatchesPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	data := intRecords(rng, 40)
	c := modBelow{mod: 5, below: 2}
	sides := make([]Side, len(data))
	for i, r := range data {
		sides[i] = c.Classify(r.Input)
	}
	other := append([]Record[int](nil), data...)

	if a, b := partitionSides(sides, data), Partition[int](c, other); a != b {
		t.Fatalf("partitionSides split %d, Partition split %d", a, b)
	}
	for i, r := range data {
		if sides[i] != c.Classify(r.Input) {
			t.Fatalf("sides not permuted with records at %d", i)
		}
	}
}

func TestInformationGain(t *testing.T) {
	data := []Record[int]{{Label: 0}, {Label: 0}, {Label: 1}, {Label: 1}}
	if g := InformationGain(2, data); math.Abs(g-1) > tol {
		t.Errorf("perfect split gain = %v, want 1", g)
	}
	if g := InformationGain(0, data); g != 0 {
		t.Errorf("all right gain = %v, want 0", g)
	}
	if g := InformationGain(4, data); g != 0 {
		t.Errorf("all left gain = %v, want 0", g)
	}
	mixed := []Record[int]{{Label: 0}, {Label: 1}, {Label: 0}, {Label: 1}}
	if g := InformationGain(2, mixed); math.Abs(g) > tol {
		t.Errorf("uninformative split gain = %v, want 0", g)
	}
	if g := InformationGain(0, []Record[int]{}); g != 0 {
		t.Errorf("empty gain = %v", g)
	}
}
