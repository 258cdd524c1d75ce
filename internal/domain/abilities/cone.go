package abilities

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/aoe-targeting/internal/targeting"
)

// Cone defaults for fields a definition leaves out
const (
	DefaultConeMaxDistance   = 10
	DefaultConeMinDistance   = 0
	DefaultConeMaxAngle      = 90
	DefaultConeMinAngle      = 90
	DefaultConeMaxConeLength = 9999
)

// ConeDefinition holds the unscaled cone parameters
type ConeDefinition struct {
	MaxDistance           float64 `json:"maxDistance" jsonschema:"default=10,description=Range at which the cone reaches MinAngle"`
	MinDistance           float64 `json:"minDistance" jsonschema:"default=0,description=Distance a close target is pushed out to"`
	MaxAngle              float64 `json:"maxAngle" jsonschema:"default=90,description=Cone width in degrees at zero range"`
	MinAngle              float64 `json:"minAngle" jsonschema:"default=90,description=Cone width in degrees at MaxDistance"`
	MaxConeLength         float64 `json:"maxConeLength" jsonschema:"default=9999,description=Longest the cone may be before its start moves forward"`
	MinRadiusAroundTarget float64 `json:"minimumRadiusAroundTarget" jsonschema:"default=0,description=Disc around the target that is always hit"`
	ClampBelowMinDistance bool    `json:"clampBelowMinDistance,omitempty" jsonschema:"description=Push the aim out only when the target is nearer than MinDistance"`
}

// DefaultCone returns a cone with every default applied
func DefaultCone() ConeDefinition {
	return ConeDefinition{
		MaxDistance:   DefaultConeMaxDistance,
		MinDistance:   DefaultConeMinDistance,
		MaxAngle:      DefaultConeMaxAngle,
		MinAngle:      DefaultConeMinAngle,
		MaxConeLength: DefaultConeMaxConeLength,
	}
}

// UnmarshalJSON fills omitted fields with their defaults
func (c *ConeDefinition) UnmarshalJSON(data []byte) error {
	type plain ConeDefinition
	p := plain(DefaultCone())
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = ConeDefinition(p)
	return nil
}

// Params converts the definition into geometry parameters. maxDistance is
// the scaled range; the width still narrows over the unscaled MaxDistance.
func (c *ConeDefinition) Params(maxDistance float64) targeting.ConeParams {
	return targeting.ConeParams{
		MaxDistance:           maxDistance,
		WidthDistance:         c.MaxDistance,
		MinDistance:           c.MinDistance,
		MaxAngle:              c.MaxAngle,
		MinAngle:              c.MinAngle,
		MaxConeLength:         c.MaxConeLength,
		MinRadiusAroundTarget: c.MinRadiusAroundTarget,
		ClampBelowMinDistance: c.ClampBelowMinDistance,
	}
}

func (c *ConeDefinition) validate() error {
	switch {
	case c.MaxDistance < 0, c.MinDistance < 0:
		return fmt.Errorf("cone distances must not be negative")
	case c.MaxAngle < 0, c.MinAngle < 0, c.MaxAngle > 360, c.MinAngle > 360:
		return fmt.Errorf("cone angles must be within [0, 360]")
	case c.MaxConeLength <= 0:
		return fmt.Errorf("cone length must be positive")
	case c.MinRadiusAroundTarget < 0:
		return fmt.Errorf("radius around target must not be negative")
	}
	return nil
}
