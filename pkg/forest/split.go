package forest

import "math/rand"

// Side is the outcome of a split predicate.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Candidate is a binary predicate over inputs of type I. Classify must be
// deterministic for a given candidate and input.
type Candidate[I any] interface {
	Classify(x I) Side
}

// Generator produces randomly parameterized candidates. All randomness must
// come from rng so that a seeded source reproduces the same trees.
type Generator[I any] interface {
	Generate(rng *rand.Rand) Candidate[I]
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc[I any] func(rng *rand.Rand) Candidate[I]

func (f GeneratorFunc[I]) Generate(rng *rand.Rand) Candidate[I] { return f(rng) }

// Record is one labeled training example.
type Record[I any] struct {
	Input I
	Label Label
}

// Partition reorders data so that every record c sends Left comes first and
// returns the length of that prefix. The order inside each side is not
// preserved.
func Partition[I any](c Candidate[I], data []Record[I]) int {
	split := 0
	for i := range data {
		if c.Classify(data[i].Input) == Left {
			data[split], data[i] = data[i], data[split]
			split++
		}
	}
	return split
}

// partitionSides is Partition driven by sides already computed for data.
// sides is permuted along with data.
func partitionSides[I any](sides []Side, data []Record[I]) int {
	split := 0
	for i := range data {
		if sides[i] == Left {
			data[split], data[i] = data[i], data[split]
			sides[split], sides[i] = sides[i], sides[split]
			split++
		}
	}
	return split
}

// InformationGain is the entropy reduction obtained by cutting data at split.
func InformationGain[I any](split int, data []Record[I]) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}
	var whole, left, right [labelSpace]int
	for i, r := range data {
		whole[r.Label]++
		if i < split {
			left[r.Label]++
		} else {
			right[r.Label]++
		}
	}
	return gain(&whole, &left, &right, split, n)
}

func gain(whole, left, right *[labelSpace]int, nLeft, n int) float64 {
	nRight := n - nLeft
	wl := float64(nLeft) / float64(n)
	wr := float64(nRight) / float64(n)
	g := entropyOfCounts(whole, n) - wl*entropyOfCounts(left, nLeft) - wr*entropyOfCounts(right, nRight)
	if g < 0 {
		// rounding only; the weighted child entropy never exceeds the parent's
		return 0
	}
	return g
}
