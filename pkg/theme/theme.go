package theme

import (
	"errors"
	"fmt"
	"slices"

	"github.com/visdev-lib/color/pkg/colorspace"
	colorerrors "github.com/visdev-lib/color/pkg/errors"
	"github.com/visdev-lib/color/pkg/logger"
	"github.com/visdev-lib/color/pkg/palette"
)

// ErrUnknownRole is returned when a role is not present in a theme.
var ErrUnknownRole = errors.New("unknown theme role")

// Option configures theme construction.
type Option func(*options)

type options struct {
	logger *logger.Logger
}

// WithLogger records scheme derivation and overrides at debug level. Palettes built from the
// theme inherit the logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Theme is a read-only set of role colors sharing one representation.
type Theme[T colorspace.Any] struct {
	scheme Scheme[T]
	tag    colorspace.Tag
	logger *logger.Logger
}

// CreateTheme derives the base scheme from main and applies custom overrides.
//
// Each override must be a valid color in the same representation as main; the first
// offending key, in sorted order, aborts construction with an InvalidColorError or a
// TypeMismatchError. Keys outside the base roles are added as new roles.
func CreateTheme[T colorspace.Any](main T, custom Scheme[T], opts ...Option) (*Theme[T], error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	primaryType, err := colorspace.Detect(main)
	if err != nil {
		return nil, err
	}

	scheme, err := CreateBaseScheme(main)
	if err != nil {
		return nil, err
	}
	o.logger.WithFields(map[string]any{
		"seed": fmt.Sprint(main),
		"type": primaryType.String(),
	}).Debug("base scheme derived")

	keys := make([]string, 0, len(custom))
	for key := range custom {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		value := custom[key]
		tag, err := colorspace.Detect(value)
		if err != nil {
			return nil, colorerrors.NewInvalidSchemeColorError(key, value, err)
		}
		if tag != primaryType {
			return nil, colorerrors.NewTypeMismatchError(key, primaryType.String(), tag.String())
		}
		scheme[key] = value
		o.logger.Debugf("custom color scheme %s overrides base role", key)
	}

	return &Theme[T]{scheme: scheme, tag: primaryType, logger: o.logger}, nil
}

// Type returns the representation shared by every role.
func (t *Theme[T]) Type() colorspace.Tag {
	return t.tag
}

// Get returns the color for role.
func (t *Theme[T]) Get(role string) (T, bool) {
	c, ok := t.scheme[role]
	return c, ok
}

// MustGet returns the color for role and panics when it is missing.
func (t *Theme[T]) MustGet(role string) T {
	c, ok := t.scheme[role]
	if !ok {
		panic(fmt.Sprintf("theme: %v: %s", ErrUnknownRole, role))
	}
	return c
}

func (t *Theme[T]) Primary() T   { return t.scheme[RolePrimary] }
func (t *Theme[T]) Secondary() T { return t.scheme[RoleSecondary] }
func (t *Theme[T]) Tertiary() T  { return t.scheme[RoleTertiary] }
func (t *Theme[T]) Error() T     { return t.scheme[RoleError] }
func (t *Theme[T]) Success() T   { return t.scheme[RoleSuccess] }
func (t *Theme[T]) Warning() T   { return t.scheme[RoleWarning] }
func (t *Theme[T]) Info() T      { return t.scheme[RoleInfo] }
func (t *Theme[T]) Neutral() T   { return t.scheme[RoleNeutral] }

// Roles lists the theme's roles: base roles in display order, then custom roles sorted.
func (t *Theme[T]) Roles() []string {
	roles := make([]string, 0, len(t.scheme))
	for _, role := range baseRoles {
		if _, ok := t.scheme[role]; ok {
			roles = append(roles, role)
		}
	}

	var extra []string
	for role := range t.scheme {
		if !IsBaseRole(role) {
			extra = append(extra, role)
		}
	}
	slices.Sort(extra)
	return append(roles, extra...)
}

// Scheme returns a copy of the role mapping.
func (t *Theme[T]) Scheme() Scheme[T] {
	return t.scheme.Clone()
}

// Palette builds a palette of size shades from the color of role.
func (t *Theme[T]) Palette(role string, size int, opts ...palette.Option) (*palette.Palette[T], error) {
	c, ok := t.scheme[role]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}

	all := make([]palette.Option, 0, len(opts)+1)
	all = append(all, palette.WithLogger(t.logger))
	all = append(all, opts...)
	return palette.New(c, size, all...)
}
