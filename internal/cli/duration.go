package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/dispatch/internal/ports/primary"
)

// parseDurationFlag parses a "--duration" style value such as "2 saat"
// or "1 gün" into the value/unit pair the coordinator expects. An empty
// string means no duration was given.
func parseDurationFlag(raw string) (*primary.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return nil, fmt.Errorf("duration must be \"<value> <unit>\", e.g. \"2 saat\", got %q", raw)
	}

	value, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("duration value %q is not a number", fields[0])
	}

	return &primary.Duration{Value: value, Unit: fields[1]}, nil
}
