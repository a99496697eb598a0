package theme

import (
	"maps"

	"github.com/visdev-lib/color/pkg/colorspace"
)

// Role names recognised by the base scheme.
const (
	RolePrimary   = "primary"
	RoleSecondary = "secondary"
	RoleTertiary  = "tertiary"
	RoleError     = "error"
	RoleSuccess   = "success"
	RoleWarning   = "warning"
	RoleInfo      = "info"
	RoleNeutral   = "neutral"
)

// Scheme maps role names to colors of a single representation.
type Scheme[T colorspace.Any] map[string]T

// Clone returns a shallow copy of the scheme.
func (s Scheme[T]) Clone() Scheme[T] {
	if s == nil {
		return nil
	}
	return maps.Clone(s)
}

// derivation describes how a role is computed from the seed's HSL triple.
// When absoluteHue is set, hue replaces the seed hue; otherwise it is added to it.
// A zero lightness range keeps the seed lightness.
type derivation struct {
	hue         float64
	absoluteHue bool
	satScale    float64
	satFloor    float64
	lightLo     float64
	lightHi     float64
}

var baseRoles = []string{
	RolePrimary,
	RoleSecondary,
	RoleTertiary,
	RoleError,
	RoleSuccess,
	RoleWarning,
	RoleInfo,
	RoleNeutral,
}

// Semantic hues follow the usual red/green/amber/blue conventions.
var derivations = map[string]derivation{
	RoleSecondary: {hue: 30, satScale: 0.8},
	RoleTertiary:  {hue: 60, satScale: 0.9},
	RoleError:     {hue: 0, absoluteHue: true, satScale: 1, satFloor: 0.6, lightLo: 0.4, lightHi: 0.6},
	RoleSuccess:   {hue: 140, absoluteHue: true, satScale: 1, satFloor: 0.6, lightLo: 0.4, lightHi: 0.6},
	RoleWarning:   {hue: 40, absoluteHue: true, satScale: 1, satFloor: 0.6, lightLo: 0.4, lightHi: 0.6},
	RoleInfo:      {hue: 205, absoluteHue: true, satScale: 1, satFloor: 0.6, lightLo: 0.4, lightHi: 0.6},
	RoleNeutral:   {satScale: 0.1, lightLo: 0.4, lightHi: 0.6},
}

// BaseRoles returns the roles every base scheme defines, in display order.
func BaseRoles() []string {
	out := make([]string, len(baseRoles))
	copy(out, baseRoles)
	return out
}

// IsBaseRole reports whether role is produced by CreateBaseScheme.
func IsBaseRole(role string) bool {
	for _, r := range baseRoles {
		if r == role {
			return true
		}
	}
	return false
}

// CreateBaseScheme derives every base role from seed. The primary role is the seed itself
// (an HSL object seed is normalised); every other role is rendered in the seed's representation.
func CreateBaseScheme[T colorspace.Any](seed T) (Scheme[T], error) {
	tag, err := colorspace.Detect(seed)
	if err != nil {
		return nil, err
	}
	base, err := colorspace.ToHSL(seed)
	if err != nil {
		return nil, err
	}

	scheme := make(Scheme[T], len(baseRoles))
	scheme[RolePrimary] = normalizeSeed(seed)
	for _, role := range baseRoles[1:] {
		c, err := colorspace.Convert[T](derive(base, derivations[role]), tag)
		if err != nil {
			return nil, err
		}
		scheme[role] = c
	}
	return scheme, nil
}

func derive(seed colorspace.HSL, d derivation) colorspace.HSL {
	out := seed.Rotate(d.hue)
	if d.absoluteHue {
		out.H = d.hue
	}

	out.S *= d.satScale
	if out.S < d.satFloor {
		out.S = d.satFloor
	}

	if d.lightLo != 0 || d.lightHi != 0 {
		if out.L < d.lightLo {
			out.L = d.lightLo
		}
		if out.L > d.lightHi {
			out.L = d.lightHi
		}
	}
	return out.Normalize()
}

func normalizeSeed[T colorspace.Any](seed T) T {
	if h, ok := any(seed).(colorspace.HSL); ok {
		return any(h.Normalize()).(T)
	}
	return seed
}
