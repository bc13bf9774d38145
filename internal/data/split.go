package data

import (
    "math/rand"
    "sort"

    "splitforest/pkg/forest"
)

// StratifiedSplit shuffles d and puts frac of every label's rows in train,
// the rest in test. Rows are shared, not copied.
func StratifiedSplit(d Dataset, frac float64, rng *rand.Rand) (train, test Dataset) {
    byLabel := map[forest.Label][]int{}
    for i, l := range d.Y { byLabel[l] = append(byLabel[l], i) }
    labels := make([]forest.Label, 0, len(byLabel))
    for l := range byLabel { labels = append(labels, l) }
    sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

    var trainIdx, testIdx []int
    for _, l := range labels {
        idx := byLabel[l]
        rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
        cut := int(frac * float64(len(idx)))
        trainIdx = append(trainIdx, idx[:cut]...)
        testIdx = append(testIdx, idx[cut:]...)
    }
    rng.Shuffle(len(trainIdx), func(i, j int) { trainIdx[i], trainIdx[j] = trainIdx[j], trainIdx[i] })
    rng.Shuffle(len(testIdx), func(i, j int) { testIdx[i], testIdx[j] = testIdx[j], testIdx[i] })
    return pick(d, trainIdx), pick(d, testIdx)
}

func pick(d Dataset, idx []int) Dataset {
    out := Dataset{X: make([][]float64, len(idx)), Y: make([]forest.Label, len(idx))}
    for i, j := range idx { out.X[i], out.Y[i] = d.X[j], d.Y[j] }
    return out
}
