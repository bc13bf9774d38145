package features

import (
    "math/rand"

    "splitforest/pkg/forest"
)

// BitTest sends x Left when bit Index of x is zero.
type BitTest struct {
    Index int
}

func (b BitTest) Classify(x []uint8) forest.Side {
    if x[b.Index] == 0 { return forest.Left }
    return forest.Right
}

// BitGenerator picks one of Width bit positions uniformly.
type BitGenerator struct {
    Width int
}

func (g BitGenerator) Generate(rng *rand.Rand) forest.Candidate[[]uint8] {
    return BitTest{Index: rng.Intn(g.Width)}
}
