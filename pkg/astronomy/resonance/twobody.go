package resonance

import "fmt"

// TwoBody is the p:q commensurability between adjacent bodies, p > q.
type TwoBody struct {
	P int `json:"p" yaml:"p"`
	Q int `json:"q" yaml:"q"`
}

// Ratio returns p/q.
func (r TwoBody) Ratio() float64 {
	return float64(r.P) / float64(r.Q)
}

// Order is p-q.
func (r TwoBody) Order() int {
	return r.P - r.Q
}

func (r TwoBody) String() string {
	return fmt.Sprintf("%d:%d", r.P, r.Q)
}
