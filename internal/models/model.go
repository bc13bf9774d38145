package models

import "splitforest/pkg/forest"

type Model interface {
    Fit(X [][]float64, y []forest.Label) error
    Predict(X [][]float64) []forest.Label
    PredictProba(X [][]float64) []forest.Distribution
    Name() string
}

// New returns an untrained model for algo ("tree" or "forest").
func New(algo string, params forest.Parameters, split string, seed int64) Model {
    switch algo {
    case "tree", "dt":
        dt := NewDecisionTree()
        dt.Params = params
        dt.Split = split
        dt.Seed = seed
        return dt
    default:
        rf := NewRandomForest()
        rf.Params = params
        rf.Split = split
        rf.Seed = seed
        return rf
    }
}
