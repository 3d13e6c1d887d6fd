package resonance

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the error codespace of this package.
const ModuleName = "resonance"

var (
	// ErrInvalidWindow indicates a window with xMin >= xMax, yMin >= yMax or non-finite bounds.
	ErrInvalidWindow = errorsmod.Register(ModuleName, 2, "invalid window")
	// ErrInvalidSearchBounds indicates non-positive integer bounds or negative orders.
	ErrInvalidSearchBounds = errorsmod.Register(ModuleName, 3, "invalid search bounds")
	// ErrShapeMismatch indicates point sequences of unequal length.
	ErrShapeMismatch = errorsmod.Register(ModuleName, 4, "input shape mismatch")
	// ErrInvalidResonance indicates a coefficient triple that does not describe a curve.
	ErrInvalidResonance = errorsmod.Register(ModuleName, 5, "invalid resonance")
	// ErrInvalidTolerance indicates a non-positive or NaN solver tolerance.
	ErrInvalidTolerance = errorsmod.Register(ModuleName, 6, "invalid tolerance")
	// ErrInvalidPoint indicates a point with a NaN or infinite coordinate.
	ErrInvalidPoint = errorsmod.Register(ModuleName, 7, "invalid point")
)
