package features

import (
    "math/rand"

    "splitforest/pkg/forest"
)

// Hyperplane sends x Left when Weights·x <= Bias.
type Hyperplane struct {
    Weights []float64
    Bias    float64
}

func (h Hyperplane) Classify(x []float64) forest.Side {
    if dot(h.Weights, x) <= h.Bias { return forest.Left }
    return forest.Right
}

// HyperplaneGenerator draws a gaussian normal, scaled per feature by the
// training range, and places the plane through a randomly chosen training
// input so both sides are likely populated.
type HyperplaneGenerator struct {
    inputs [][]float64
    scale  []float64
}

func NewHyperplaneGenerator(X [][]float64) *HyperplaneGenerator {
    ranges := Ranges(X)
    scale := make([]float64, len(ranges))
    for j, r := range ranges {
        scale[j] = 1
        if w := r.Width(); w > 0 { scale[j] = 1 / w }
    }
    return &HyperplaneGenerator{inputs: X, scale: scale}
}

func (g *HyperplaneGenerator) Generate(rng *rand.Rand) forest.Candidate[[]float64] {
    w := make([]float64, len(g.scale))
    for j := range w { w[j] = rng.NormFloat64() * g.scale[j] }
    through := g.inputs[rng.Intn(len(g.inputs))]
    return Hyperplane{Weights: w, Bias: dot(w, through)}
}

func dot(a, b []float64) float64 {
    s := 0.0
    for i := range a { s += a[i] * b[i] }
    return s
}
