package models

import (
    "math/rand"

    "splitforest/internal/features"
    "splitforest/pkg/forest"
)

type RandomForest struct {
    Params forest.Parameters
    Split  string
    Seed   int64
    Forest *forest.Forest[[]float64]
}

func NewRandomForest() *RandomForest {
    return &RandomForest{Params: forest.DefaultParameters(), Split: features.KindThreshold, Seed: 1}
}

func (rf *RandomForest) Name() string { return "RandomForest" }

// Fit trains the ensemble. A SamplesPerTree of 0 means every row.
func (rf *RandomForest) Fit(X [][]float64, y []forest.Label) error {
    gen, err := features.NewGenerator(rf.Split, X)
    if err != nil { return err }
    p := rf.Params
    if p.SamplesPerTree == 0 { p.SamplesPerTree = len(X) }
    f, err := forest.LearnForest(p, gen, rand.New(rand.NewSource(rf.Seed)), features.Records(X, y))
    if err != nil { return err }
    rf.Forest = f
    return nil
}

func (rf *RandomForest) Predict(X [][]float64) []forest.Label {
    out := make([]forest.Label, len(X))
    if rf.Forest == nil { return out }
    for i := range X { out[i] = rf.Forest.Classify(X[i]) }
    return out
}

func (rf *RandomForest) PredictProba(X [][]float64) []forest.Distribution {
    out := make([]forest.Distribution, len(X))
    if rf.Forest == nil { return out }
    for i := range X { out[i] = rf.Forest.ClassifyConfidence(X[i]) }
    return out
}
