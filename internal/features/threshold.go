package features

import (
    "math/rand"

    "splitforest/pkg/forest"
)

// Threshold sends x Left when x[Feature] <= Value.
type Threshold struct {
    Feature int
    Value   float64
}

func (t Threshold) Classify(x []float64) forest.Side {
    if x[t.Feature] <= t.Value { return forest.Left }
    return forest.Right
}

// ThresholdGenerator draws a feature uniformly and a cut uniformly inside the
// range that feature spans in the training data.
type ThresholdGenerator struct {
    ranges []Range
}

func NewThresholdGenerator(X [][]float64) *ThresholdGenerator {
    return &ThresholdGenerator{ranges: Ranges(X)}
}

func (g *ThresholdGenerator) Generate(rng *rand.Rand) forest.Candidate[[]float64] {
    f := rng.Intn(len(g.ranges))
    r := g.ranges[f]
    return Threshold{Feature: f, Value: r.Min + rng.Float64()*r.Width()}
}
