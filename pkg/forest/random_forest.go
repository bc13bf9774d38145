package forest

import "math/rand"

// Forest is an ensemble of trees combined by soft voting.
type Forest[I any] struct {
	trees []*Tree[I]
}

// LearnForest trains params.NumberOfTrees trees. Before each tree the whole
// of data is shuffled and the first params.SamplesPerTree records are used,
// so members see samples drawn without replacement. data is left reordered.
func LearnForest[I any](params Parameters, gen Generator[I], rng *rand.Rand, data []Record[I]) (*Forest[I], error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}
	if err := params.validateForest(len(data)); err != nil {
		return nil, err
	}
	rng = orDefault(rng)

	trees := make([]*Tree[I], 0, params.NumberOfTrees)
	for k := 0; k < params.NumberOfTrees; k++ {
		rng.Shuffle(len(data), func(i, j int) { data[i], data[j] = data[j], data[i] })
		trees = append(trees, learnTree(params, gen, rng, data[:params.SamplesPerTree]))
	}
	return &Forest[I]{trees: trees}, nil
}

// NewForest assembles a forest from trained trees.
func NewForest[I any](trees ...*Tree[I]) *Forest[I] {
	return &Forest[I]{trees: append([]*Tree[I](nil), trees...)}
}

func (f *Forest[I]) Classify(x I) Label { return f.ClassifyConfidence(x).MostProbable() }

// ClassifyConfidence sums the leaf distributions of every tree and
// renormalizes once.
func (f *Forest[I]) ClassifyConfidence(x I) Distribution {
	var acc accumulator
	for _, t := range f.trees {
		acc.add(t.ClassifyConfidence(x))
	}
	return acc.distribution()
}

func (f *Forest[I]) Trees() []*Tree[I] { return f.trees }

func (f *Forest[I]) Len() int { return len(f.trees) }
