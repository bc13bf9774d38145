package eval

import (
    "sort"

    "splitforest/pkg/forest"
)

func Accuracy(y, p []forest.Label) float64 {
    if len(y) == 0 { return 0 }
    c := 0
    for i := range y { if y[i] == p[i] { c++ } }
    return float64(c) / float64(len(y))
}

// Confusion counts (true label, predicted label) pairs.
type Confusion map[forest.Label]map[forest.Label]int

func NewConfusion(y, p []forest.Label) Confusion {
    m := Confusion{}
    for i := range y {
        if m[y[i]] == nil { m[y[i]] = map[forest.Label]int{} }
        m[y[i]][p[i]]++
    }
    return m
}

// Labels lists every label seen as truth or prediction, ascending.
func (m Confusion) Labels() []forest.Label {
    seen := map[forest.Label]bool{}
    for t, row := range m {
        seen[t] = true
        for p := range row { seen[p] = true }
    }
    out := make([]forest.Label, 0, len(seen))
    for l := range seen { out = append(out, l) }
    sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
    return out
}

// PRF1 is the one-vs-rest precision, recall and F1 of label l.
func (m Confusion) PRF1(l forest.Label) (precision, recall, f1 float64) {
    tp := m[l][l]
    fp, fn := 0, 0
    for t, row := range m {
        for p, n := range row {
            if p == l && t != l { fp += n }
            if t == l && p != l { fn += n }
        }
    }
    if tp+fp > 0 { precision = float64(tp) / float64(tp+fp) }
    if tp+fn > 0 { recall = float64(tp) / float64(tp+fn) }
    if precision+recall > 0 { f1 = 2 * precision * recall / (precision + recall) }
    return
}

// MacroF1 averages F1 over every label in the matrix.
func (m Confusion) MacroF1() float64 {
    labels := m.Labels()
    if len(labels) == 0 { return 0 }
    s := 0.0
    for _, l := range labels {
        _, _, f1 := m.PRF1(l)
        s += f1
    }
    return s / float64(len(labels))
}

// Report bundles the holdout metrics logged by the binaries.
type Report struct {
    Accuracy float64
    MacroF1  float64
    Size     int
}

func Evaluate(y, p []forest.Label) Report {
    return Report{Accuracy: Accuracy(y, p), MacroF1: NewConfusion(y, p).MacroF1(), Size: len(y)}
}
