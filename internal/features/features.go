package features

import (
    "fmt"
    "math"
    "strings"

    "splitforest/pkg/forest"
)

const (
    KindThreshold  = "threshold"
    KindHyperplane = "hyperplane"
)

// Range is the observed span of one feature column.
type Range struct {
    Min float64
    Max float64
}

func (r Range) Width() float64 { return r.Max - r.Min }

func Ranges(X [][]float64) []Range {
    if len(X) == 0 { return nil }
    out := make([]Range, len(X[0]))
    for j := range out { out[j] = Range{Min: math.Inf(1), Max: math.Inf(-1)} }
    for _, x := range X {
        for j := range out {
            if x[j] < out[j].Min { out[j].Min = x[j] }
            if x[j] > out[j].Max { out[j].Max = x[j] }
        }
    }
    return out
}

// NewGenerator builds the candidate family named by kind from the training
// inputs.
func NewGenerator(kind string, X [][]float64) (forest.Generator[[]float64], error) {
    if len(X) == 0 { return nil, forest.ErrEmptyData }
    switch strings.ToLower(kind) {
    case "", KindThreshold:
        return NewThresholdGenerator(X), nil
    case KindHyperplane:
        return NewHyperplaneGenerator(X), nil
    default:
        return nil, fmt.Errorf("unknown split family %q", kind)
    }
}

func Records(X [][]float64, y []forest.Label) []forest.Record[[]float64] {
    out := make([]forest.Record[[]float64], len(X))
    for i := range X { out[i] = forest.Record[[]float64]{Input: X[i], Label: y[i]} }
    return out
}
