package resonance

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// Window is a rectangle of the period-ratio plane.
type Window struct {
	XMin float64 `json:"x_min" yaml:"x_min" mapstructure:"x_min"`
	XMax float64 `json:"x_max" yaml:"x_max" mapstructure:"x_max"`
	YMin float64 `json:"y_min" yaml:"y_min" mapstructure:"y_min"`
	YMax float64 `json:"y_max" yaml:"y_max" mapstructure:"y_max"`
}

// NewWindow builds a window from bounds given in (xMin, xMax, yMin, yMax)
// order and validates it.
func NewWindow(xMin, xMax, yMin, yMax float64) (Window, error) {
	w := Window{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// ParseWindow parses "xmin,xmax,ymin,ymax". Two values "min,max" give a
// square window.
func ParseWindow(s string) (Window, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 && len(parts) != 4 {
		return Window{}, errorsmod.Wrapf(ErrInvalidWindow, "expected 2 or 4 comma separated values, got %q", s)
	}

	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Window{}, errorsmod.Wrapf(ErrInvalidWindow, "bound %q: %v", p, err)
		}
		vals[i] = v
	}

	if len(vals) == 2 {
		return NewWindow(vals[0], vals[1], vals[0], vals[1])
	}
	return NewWindow(vals[0], vals[1], vals[2], vals[3])
}

// Validate checks that both ranges are finite and non-empty.
func (w Window) Validate() error {
	for _, v := range []float64{w.XMin, w.XMax, w.YMin, w.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errorsmod.Wrapf(ErrInvalidWindow, "non-finite bound in %s", w)
		}
	}
	if w.XMin >= w.XMax {
		return errorsmod.Wrapf(ErrInvalidWindow, "xMin (%g) must be less than xMax (%g)", w.XMin, w.XMax)
	}
	if w.YMin >= w.YMax {
		return errorsmod.Wrapf(ErrInvalidWindow, "yMin (%g) must be less than yMax (%g)", w.YMin, w.YMax)
	}
	return nil
}

// IsSquare reports whether both axes share the same range.
func (w Window) IsSquare() bool {
	return w.XMin == w.YMin && w.XMax == w.YMax
}

// ContainsX reports whether x lies in [XMin, XMax].
func (w Window) ContainsX(x float64) bool {
	return x >= w.XMin && x <= w.XMax
}

// ContainsY reports whether y lies in [YMin, YMax].
func (w Window) ContainsY(y float64) bool {
	return y >= w.YMin && y <= w.YMax
}

func (w Window) String() string {
	return fmt.Sprintf("[%g, %g] x [%g, %g]", w.XMin, w.XMax, w.YMin, w.YMax)
}
