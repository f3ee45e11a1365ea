package allocation

import (
	"fmt"
	"time"

	"github.com/example/dispatch/internal/core/match"
)

// Duration is the value/unit pair produced by the intent layer,
// e.g. {2, "saat"} or {1, "gün"}.
type Duration struct {
	Value int
	Unit  string
}

// unitTable maps normalized unit tokens to their base duration. The
// intent layer emits Turkish unit words; English forms are accepted for
// direct CLI use.
var unitTable = map[string]time.Duration{
	"dakika":  time.Minute,
	"min":     time.Minute,
	"minute":  time.Minute,
	"minutes": time.Minute,
	"saat":    time.Hour,
	"hr":      time.Hour,
	"hour":    time.Hour,
	"hours":   time.Hour,
	"gun":     24 * time.Hour,
	"day":     24 * time.Hour,
	"days":    24 * time.Hour,
}

// Resolve converts the pair into a time.Duration. An unrecognized unit
// or a non-positive value fails with ErrInvalidDuration.
func (d Duration) Resolve() (time.Duration, error) {
	if d.Value <= 0 {
		return 0, fmt.Errorf("%w: value %d must be positive", ErrInvalidDuration, d.Value)
	}

	base, ok := unitTable[match.Normalize(d.Unit)]
	if !ok {
		return 0, fmt.Errorf("%w: unrecognized unit %q", ErrInvalidDuration, d.Unit)
	}

	return time.Duration(d.Value) * base, nil
}
