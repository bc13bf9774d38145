package models

import (
    "math/rand"

    "splitforest/internal/features"
    "splitforest/pkg/forest"
)

type DecisionTree struct {
    Params forest.Parameters
    Split  string
    Seed   int64
    Tree   *forest.Tree[[]float64]
}

func NewDecisionTree() *DecisionTree {
    p := forest.DefaultParameters()
    p.MinSamplesPerLeaf = 5
    return &DecisionTree{Params: p, Split: features.KindThreshold, Seed: 1}
}

func (dt *DecisionTree) Name() string { return "DecisionTree" }

// Fit trains on copies of the row headers, X itself is never reordered.
func (dt *DecisionTree) Fit(X [][]float64, y []forest.Label) error {
    gen, err := features.NewGenerator(dt.Split, X)
    if err != nil { return err }
    t, err := forest.LearnTree(dt.Params, gen, rand.New(rand.NewSource(dt.Seed)), features.Records(X, y))
    if err != nil { return err }
    dt.Tree = t
    return nil
}

func (dt *DecisionTree) Predict(X [][]float64) []forest.Label {
    out := make([]forest.Label, len(X))
    if dt.Tree == nil { return out }
    for i := range X { out[i] = dt.Tree.Classify(X[i]) }
    return out
}

func (dt *DecisionTree) PredictProba(X [][]float64) []forest.Distribution {
    out := make([]forest.Distribution, len(X))
    if dt.Tree == nil { return out }
    for i := range X { out[i] = dt.Tree.ClassifyConfidence(X[i]) }
    return out
}
