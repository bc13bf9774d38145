package data

import "splitforest/pkg/forest"

// Dataset is a table of feature vectors with one label per row.
type Dataset struct {
    X [][]float64
    Y []forest.Label
}

func (d Dataset) Len() int { return len(d.X) }

func (d Dataset) Dim() int {
    if len(d.X) == 0 { return 0 }
    return len(d.X[0])
}

// Head returns the first n rows, sharing storage with d.
func (d Dataset) Head(n int) Dataset {
    if n > len(d.X) { n = len(d.X) }
    return Dataset{X: d.X[:n], Y: d.Y[:n]}
}

// Counts is the number of rows per label.
func (d Dataset) Counts() map[forest.Label]int {
    out := map[forest.Label]int{}
    for _, l := range d.Y { out[l]++ }
    return out
}
