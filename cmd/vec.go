package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zhzh2001/litewq/types"
)

// Parse a vector specified as comma-separated components (e.g. "1,0.5,-2").
func parseVec3(value string) (types.Vec3, error) {
	tokens := strings.Split(value, ",")
	if len(tokens) != 3 {
		return types.Vec3{}, fmt.Errorf("invalid vector %q; expected 3 comma-separated components", value)
	}

	var v types.Vec3
	for axis, token := range tokens {
		coord, err := strconv.ParseFloat(strings.TrimSpace(token), 32)
		if err != nil {
			return types.Vec3{}, fmt.Errorf("invalid vector %q; component %d: %s", value, axis, err.Error())
		}
		v[axis] = float32(coord)
	}
	return v, nil
}

// Parse a required vector flag.
func vecFlag(value, flagName string) (types.Vec3, error) {
	if value == "" {
		return types.Vec3{}, fmt.Errorf("missing required flag --%s", flagName)
	}
	return parseVec3(value)
}
