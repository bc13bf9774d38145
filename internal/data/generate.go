package data

import (
    "fmt"
    "math"
    "math/rand"

    "splitforest/pkg/forest"
)

const (
    ShapeXOR          = "xor"
    ShapeCheckerboard = "checkerboard"
    ShapeBlobs        = "blobs"
)

// Generate draws n synthetic rows of the given shape. noise is the fraction of
// labels replaced by a random label.
func Generate(shape string, n int, noise float64, rng *rand.Rand) (Dataset, error) {
    switch shape {
    case ShapeXOR:
        return XOR(n, 2, noise, rng), nil
    case ShapeCheckerboard:
        return Checkerboard(n, 4, noise, rng), nil
    case ShapeBlobs:
        return Blobs(n, 3, 2, noise, rng), nil
    default:
        return Dataset{}, fmt.Errorf("unknown shape %q", shape)
    }
}

// XOR yields random 0/1 vectors of the given width labeled by their parity.
func XOR(n, width int, noise float64, rng *rand.Rand) Dataset {
    d := Dataset{X: make([][]float64, n), Y: make([]forest.Label, n)}
    for i := 0; i < n; i++ {
        x := make([]float64, width)
        parity := 0
        for j := range x {
            b := rng.Intn(2)
            x[j] = float64(b)
            parity ^= b
        }
        d.X[i] = x
        d.Y[i] = flip(forest.Label(parity), 2, noise, rng)
    }
    return d
}

// Checkerboard covers the unit square with cells x cells squares colored
// alternately 0 and 1.
func Checkerboard(n, cells int, noise float64, rng *rand.Rand) Dataset {
    d := Dataset{X: make([][]float64, n), Y: make([]forest.Label, n)}
    for i := 0; i < n; i++ {
        u, v := rng.Float64(), rng.Float64()
        cu, cv := int(u*float64(cells)), int(v*float64(cells))
        d.X[i] = []float64{u, v}
        d.Y[i] = flip(forest.Label((cu+cv)%2), 2, noise, rng)
    }
    return d
}

// Blobs places k unit-variance gaussian clusters evenly on a circle of radius
// 3 in the first two of dim coordinates; the rest are pure noise.
func Blobs(n, k, dim int, noise float64, rng *rand.Rand) Dataset {
    if dim < 2 { dim = 2 }
    d := Dataset{X: make([][]float64, n), Y: make([]forest.Label, n)}
    for i := 0; i < n; i++ {
        c := rng.Intn(k)
        angle := 2 * math.Pi * float64(c) / float64(k)
        x := make([]float64, dim)
        for j := range x { x[j] = rng.NormFloat64() }
        x[0] += 3 * math.Cos(angle)
        x[1] += 3 * math.Sin(angle)
        d.X[i] = x
        d.Y[i] = flip(forest.Label(c), k, noise, rng)
    }
    return d
}

func flip(l forest.Label, k int, noise float64, rng *rand.Rand) forest.Label {
    if noise > 0 && rng.Float64() < noise { return forest.Label(rng.Intn(k)) }
    return l
}
