package forest

import (
	"math"
	"sort"
)

// Label is a class from a small discrete alphabet.
type Label uint8

// Distribution is a normalized empirical distribution over labels.
// The zero value is the empty distribution.
type Distribution struct {
	mass map[Label]float64
}

// FromLabels counts the labels and normalizes by their total.
// An empty input gives the empty distribution.
func FromLabels(labels []Label) Distribution {
	d := Distribution{mass: make(map[Label]float64)}
	for _, l := range labels {
		d.mass[l] += 1
	}
	d.normalize()
	return d
}

func fromCounts(counts *[labelSpace]int) Distribution {
	d := Distribution{mass: make(map[Label]float64)}
	for l, c := range counts {
		if c > 0 {
			d.mass[Label(l)] = float64(c)
		}
	}
	d.normalize()
	return d
}

// Combine returns the renormalized per-label sum of d and other.
// Neither operand is modified.
func (d Distribution) Combine(other Distribution) Distribution {
	out := Distribution{mass: make(map[Label]float64, len(d.mass)+len(other.mass))}
	for l, p := range d.mass {
		out.mass[l] += p
	}
	for l, p := range other.mass {
		out.mass[l] += p
	}
	out.normalize()
	return out
}

// Entropy is the Shannon entropy in bits.
func (d Distribution) Entropy() float64 {
	h := 0.0
	for _, p := range d.mass {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}

// MostProbable returns the label with the largest mass. Ties go to the
// lowest label; the empty distribution returns 0.
func (d Distribution) MostProbable() Label {
	best, bestP := Label(0), -1.0
	for _, l := range d.Labels() {
		if p := d.mass[l]; p > bestP {
			best, bestP = l, p
		}
	}
	return best
}

// Prob is the mass of l, zero when absent.
func (d Distribution) Prob(l Label) float64 { return d.mass[l] }

// Len is the number of labels with non-zero mass.
func (d Distribution) Len() int { return len(d.mass) }

// Labels lists the labels present, ascending.
func (d Distribution) Labels() []Label {
	out := make([]Label, 0, len(d.mass))
	for l := range d.mass {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Map returns a copy of the label masses.
func (d Distribution) Map() map[Label]float64 {
	out := make(map[Label]float64, len(d.mass))
	for l, p := range d.mass {
		out[l] = p
	}
	return out
}

func (d *Distribution) normalize() {
	sum := 0.0
	for _, p := range d.mass {
		sum += p
	}
	if sum == 0 {
		return
	}
	for l := range d.mass {
		d.mass[l] /= sum
	}
}

// accumulator sums raw masses and normalizes once, so every contribution
// weighs the same.
type accumulator struct {
	mass map[Label]float64
}

func (a *accumulator) add(d Distribution) {
	if a.mass == nil {
		a.mass = make(map[Label]float64)
	}
	for l, p := range d.mass {
		a.mass[l] += p
	}
}

func (a *accumulator) distribution() Distribution {
	d := Distribution{mass: make(map[Label]float64, len(a.mass))}
	for l, p := range a.mass {
		d.mass[l] = p
	}
	d.normalize()
	return d
}

const labelSpace = math.MaxUint8 + 1

// entropyOfCounts matches FromLabels(...).Entropy() without building a map.
func entropyOfCounts(counts *[labelSpace]int, n int) float64 {
	if n == 0 {
		return 0
	}
	h := 0.0
	total := float64(n)
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		h -= p * math.Log2(p)
	}
	return h
}
