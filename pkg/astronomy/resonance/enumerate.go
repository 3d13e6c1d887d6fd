package resonance

import (
	astromath "github.com/oxygene76/mmrplane/pkg/astronomy/math"
)

// ResonanceSet is the result of Enumerate. Each slice is free of
// duplicates and ordered by discovery. When the window is square,
// TwoBodyY shares its backing array with TwoBodyX.
type ResonanceSet struct {
	ThreeBody []ThreeBody `json:"three_body" yaml:"three_body"`
	TwoBodyX  []TwoBody   `json:"two_body_x" yaml:"two_body_x"`
	TwoBodyY  []TwoBody   `json:"two_body_y" yaml:"two_body_y"`
}

// Len returns the total number of entries, counting an aliased Y set once.
func (s ResonanceSet) Len() int {
	n := len(s.ThreeBody) + len(s.TwoBodyX)
	if !s.aliased() {
		n += len(s.TwoBodyY)
	}
	return n
}

func (s ResonanceSet) aliased() bool {
	return len(s.TwoBodyX) > 0 && len(s.TwoBodyY) > 0 && &s.TwoBodyX[0] == &s.TwoBodyY[0]
}

// Enumerate lists the resonances whose curves cross w.
//
// Coefficients are visited from opts.MaxInt3 down to -opts.MaxInt3 so the
// output order is reproducible. Each accepted triple is canonical:
// gcd(|i|,|j|,|k|) = 1, i and k non-zero, j zero only with i > 0 and k < 0,
// and never of the form (i<0, j>0, k<0).
func Enumerate(w Window, opts SearchOptions) (ResonanceSet, error) {
	if err := w.Validate(); err != nil {
		return ResonanceSet{}, err
	}
	if err := opts.Validate(); err != nil {
		return ResonanceSet{}, err
	}

	set := ResonanceSet{
		ThreeBody: enumerateThreeBody(w, opts.Order3, opts.MaxInt3),
	}
	if opts.IncludeTwoBody {
		set.TwoBodyX, set.TwoBodyY = enumerateTwoBody(w, opts.Order2, opts.MaxInt2)
	}
	return set, nil
}

func enumerateThreeBody(w Window, order, maxInt int) []ThreeBody {
	found := make([]ThreeBody, 0)
	seen := make(map[ThreeBody]struct{})

	for i := maxInt; i >= -maxInt; i-- {
		for j := maxInt; j >= -maxInt; j-- {
			for k := maxInt; k >= -maxInt; k-- {
				r, ok := candidate(i, j, k, order)
				if !ok {
					continue
				}
				if _, dup := seen[r]; dup {
					continue
				}
				seen[r] = struct{}{}
				if crossesWindow(r, w) {
					found = append(found, r)
				}
			}
		}
	}
	return found
}

// candidate applies the order, degeneracy and sign filters and returns
// the canonical triple.
func candidate(i, j, k, order int) (ThreeBody, bool) {
	if astromath.Abs(i+j+k) > order {
		return ThreeBody{}, false
	}

	zeros := 0
	for _, c := range [3]int{i, j, k} {
		if c == 0 {
			zeros++
		}
	}
	if zeros > 1 {
		return ThreeBody{}, false
	}

	// adjacent two-body resonances
	if i == 0 || k == 0 {
		return ThreeBody{}, false
	}

	// (i,0,-k) and (-i,0,k) draw the same curve
	if j == 0 && !(i > 0 && k < 0) {
		return ThreeBody{}, false
	}

	return ThreeBody{I: i, J: j, K: k}.Canonical(), true
}

func enumerateTwoBody(w Window, order, maxInt int) (xs, ys []TwoBody) {
	xs = make([]TwoBody, 0)
	ys = make([]TwoBody, 0)
	seenX := make(map[TwoBody]struct{})
	seenY := make(map[TwoBody]struct{})
	square := w.IsSquare()

	for p := 1; p <= maxInt; p++ {
		for q := 1; q <= maxInt; q++ {
			if q >= p || p-q > order {
				continue
			}

			g := astromath.GCD(p, q)
			r := TwoBody{P: p / g, Q: q / g}
			ratio := r.Ratio()

			if _, dup := seenX[r]; !dup && w.ContainsX(ratio) {
				seenX[r] = struct{}{}
				xs = append(xs, r)
			}
			if square {
				continue
			}
			if _, dup := seenY[r]; !dup && w.ContainsY(ratio) {
				seenY[r] = struct{}{}
				ys = append(ys, r)
			}
		}
	}

	if square {
		ys = xs
	}
	return xs, ys
}
