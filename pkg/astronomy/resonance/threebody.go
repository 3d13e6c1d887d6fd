package resonance

import (
	"fmt"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"

	astromath "github.com/oxygene76/mmrplane/pkg/astronomy/math"
)

// ThreeBody is the three-body resonance i·n1 + j·n2 + k·n3 = 0, drawn in
// the plane as y = -k/(i·x + j).
type ThreeBody struct {
	I int `json:"i" yaml:"i"`
	J int `json:"j" yaml:"j"`
	K int `json:"k" yaml:"k"`
}

// Order is |i+j+k|.
func (r ThreeBody) Order() int {
	return astromath.Abs(r.I + r.J + r.K)
}

// Validate rejects triples whose curve is undefined: i == 0 gives a
// horizontal two-body line and k == 0 a vertical one.
func (r ThreeBody) Validate() error {
	if r.I == 0 || r.K == 0 {
		return errorsmod.Wrapf(ErrInvalidResonance, "%s: i and k must be non-zero", r)
	}
	return nil
}

// Canonical returns the representative used by Enumerate: triples with
// i<0, j>0, k<0 are negated and the result is divided by gcd(|i|,|j|,|k|).
// The zero triple is returned unchanged.
func (r ThreeBody) Canonical() ThreeBody {
	if r.I < 0 && r.J > 0 && r.K < 0 {
		r = ThreeBody{I: -r.I, J: -r.J, K: -r.K}
	}
	return r.reduce()
}

func (r ThreeBody) reduce() ThreeBody {
	g := astromath.GCD3(r.I, r.J, r.K)
	if g <= 1 {
		return r
	}
	return ThreeBody{I: r.I / g, J: r.J / g, K: r.K / g}
}

func (r ThreeBody) String() string {
	return fmt.Sprintf("(%d, %d, %d)", r.I, r.J, r.K)
}

// ParseThreeBody parses "i,j,k" (spaces or colons also accepted as
// separators) and validates the result.
func ParseThreeBody(s string) (ThreeBody, error) {
	fields := strings.FieldsFunc(s, func(c rune) bool {
		return c == ',' || c == ' ' || c == ':'
	})
	if len(fields) != 3 {
		return ThreeBody{}, errorsmod.Wrapf(ErrInvalidResonance, "expected three integers, got %q", s)
	}

	var coeffs [3]int
	for n, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return ThreeBody{}, errorsmod.Wrapf(ErrInvalidResonance, "coefficient %q: %v", f, err)
		}
		coeffs[n] = v
	}

	r := ThreeBody{I: coeffs[0], J: coeffs[1], K: coeffs[2]}
	if err := r.Validate(); err != nil {
		return ThreeBody{}, err
	}
	return r, nil
}
