package plane

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the error codespace of the plane builder.
const ModuleName = "plane"

var (
	ErrTooFewBodies    = errorsmod.Register(ModuleName, 2, "too few bodies")
	ErrInvalidPeriod   = errorsmod.Register(ModuleName, 3, "invalid orbital period")
	ErrInvalidStarMass = errorsmod.Register(ModuleName, 4, "invalid stellar mass")
)
