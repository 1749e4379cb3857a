package filtration

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/A-Alaa/aleph/core"
)

// ErrUnknownMode reports that a mode string did not match any known
// filtration mode. It is always recovered: ParseMode substitutes
// ModeStandard, so the accompanying Mode is usable regardless.
var ErrUnknownMode = errors.New("filtration: unknown filtration mode")

// Mode names a filtration policy selectable by string, for use by CLI
// wrappers and configuration files.
type Mode int

const (
	// ModeStandard weights simplices by their stored data values (ByData).
	// This is the documented default and the fallback for unknown modes.
	ModeStandard Mode = iota

	// ModeDimension ignores data values and orders by dimension only.
	ModeDimension

	// ModeLowerStar orders by the maximum vertex value (sublevel sets).
	ModeLowerStar

	// ModeUpperStar orders by the minimum vertex value (superlevel sets).
	ModeUpperStar
)

// String returns the canonical spelling accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "standard"
	case ModeDimension:
		return "dimension"
	case ModeLowerStar:
		return "lower-star"
	case ModeUpperStar:
		return "upper-star"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode resolves a mode string. Unknown strings are not fatal: the
// function logs the fallback on log (may be nil), returns ModeStandard,
// and reports ErrUnknownMode for callers that want to surface the
// repair. The returned Mode is always valid.
func ParseMode(mode string, log *zap.Logger) (Mode, error) {
	if log == nil {
		log = zap.NewNop()
	}

	switch mode {
	case "standard", "":
		return ModeStandard, nil
	case "dimension":
		return ModeDimension, nil
	case "lower-star":
		return ModeLowerStar, nil
	case "upper-star":
		return ModeUpperStar, nil
	}

	log.Warn("unknown filtration mode, falling back",
		zap.String("mode", mode),
		zap.String("fallback", ModeStandard.String()),
	)

	return ModeStandard, fmt.Errorf("%q: %w", mode, ErrUnknownMode)
}

// Comparator materializes the comparator behind the mode. The values
// map is only consulted by the star modes and may be nil otherwise.
func (m Mode) Comparator(values map[core.Vertex]float64) core.Less {
	switch m {
	case ModeDimension:
		return ByDimension()
	case ModeLowerStar:
		return LowerStar(values)
	case ModeUpperStar:
		return UpperStar(values)
	default:
		return ByData()
	}
}
