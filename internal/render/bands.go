package render

// Band is the stretch of a gradient between two offsets, with the colours
// at both ends.
type Band struct {
	From, To     float64
	Inner, Outer Color
}

// Mid is the colour halfway through the band.
func (b Band) Mid() Color { return Lerp(b.Inner, b.Outer, 0.5) }

// Bands splits g at its stops so hosts limited to solid or two-colour
// primitives can draw one primitive per band. Bands cover [0, 1] in order
// and carry the global alpha.
func (g Gradient) Bands() []Band {
	if len(g.Stops) == 0 {
		return nil
	}
	cuts := make([]float64, 0, len(g.Stops)+2)
	cuts = append(cuts, 0)
	for _, s := range g.Stops {
		o := clamp01(s.Offset)
		if o > cuts[len(cuts)-1] {
			cuts = append(cuts, o)
		}
	}
	if cuts[len(cuts)-1] < 1 {
		cuts = append(cuts, 1)
	}
	if len(cuts) == 1 {
		cuts = append(cuts, 1)
	}

	out := make([]Band, 0, len(cuts)-1)
	for i := 1; i < len(cuts); i++ {
		a, b := cuts[i-1], cuts[i]
		out = append(out, Band{From: a, To: b, Inner: g.At(a), Outer: g.At(b)})
	}
	return out
}
