package colorspace

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	colorerrors "github.com/visdev-lib/color/pkg/errors"
)

// Tag names the representation a color value is written in.
type Tag string

const (
	TagHex       Tag = "hex"
	TagRGB       Tag = "rgb"
	TagHSL       Tag = "hsl"
	TagRGBObject Tag = "rgb-object"
	TagHSLObject Tag = "hsl-object"
)

// Tags lists every supported representation.
func Tags() []Tag {
	return []Tag{TagHex, TagRGB, TagHSL, TagRGBObject, TagHSLObject}
}

// Valid reports whether the tag is a known representation.
func (t Tag) Valid() bool {
	return slices.Contains(Tags(), t)
}

// IsString reports whether colors of this representation are Go strings.
func (t Tag) IsString() bool {
	return t == TagHex || t == TagRGB || t == TagHSL
}

func (t Tag) String() string {
	return string(t)
}

// HSL is a hue/saturation/lightness triple. H is in degrees, S and L are fractions in [0, 1].
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

// RGB is an 8-bit per channel color.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// Any is the set of Go types accepted as colors.
type Any interface {
	string | RGB | HSL
}

// Detect returns the representation of c, or an InvalidColorError when c is not a color.
func Detect(c any) (Tag, error) {
	tag, _, err := parse(c)
	return tag, err
}

// ToHSL normalises any supported color to its HSL triple.
func ToHSL(c any) (HSL, error) {
	_, hsl, err := parse(c)
	return hsl, err
}

// ToHex renders any supported color as a lower-case #rrggbb string.
func ToHex(c any) (string, error) {
	hsl, err := ToHSL(c)
	if err != nil {
		return "", err
	}
	return toColorful(hsl).Hex(), nil
}

// FromHSL renders h in the representation named by tag.
func FromHSL(h HSL, tag Tag) (any, error) {
	h = h.Normalize()
	switch tag {
	case TagHex:
		return toColorful(h).Hex(), nil
	case TagRGB:
		r, g, b := toColorful(h).RGB255()
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b), nil
	case TagHSL:
		return fmt.Sprintf("hsl(%s, %s%%, %s%%)", formatFloat(h.H), formatFloat(h.S*100), formatFloat(h.L*100)), nil
	case TagRGBObject:
		r, g, b := toColorful(h).RGB255()
		return RGB{R: r, G: g, B: b}, nil
	case TagHSLObject:
		return h, nil
	default:
		return nil, colorerrors.NewConstructionError("type", fmt.Sprintf("unsupported color type %q", tag), nil)
	}
}

// Convert is the typed form of FromHSL.
func Convert[T Any](h HSL, tag Tag) (T, error) {
	var zero T
	if !Accepts[T](tag) {
		return zero, colorerrors.NewConstructionError("type", fmt.Sprintf("color type %q cannot be produced as %T", tag, zero), nil)
	}
	v, err := FromHSL(h, tag)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// Accepts reports whether colors tagged tag are represented by the Go type T.
func Accepts[T Any](tag Tag) bool {
	var zero T
	switch any(zero).(type) {
	case string:
		return tag.IsString()
	case RGB:
		return tag == TagRGBObject
	case HSL:
		return tag == TagHSLObject
	default:
		return false
	}
}

// Normalize wraps the hue into [0, 360) and clamps saturation and lightness into [0, 1].
func (h HSL) Normalize() HSL {
	hue := math.Mod(h.H, 360)
	if hue < 0 {
		hue += 360
	}
	return HSL{H: hue, S: clamp01(h.S), L: clamp01(h.L)}
}

// Rotate returns h with its hue shifted by deg degrees.
func (h HSL) Rotate(deg float64) HSL {
	h.H += deg
	return h.Normalize()
}

func (h HSL) String() string {
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", formatFloat(h.H), formatFloat(h.S*100), formatFloat(h.L*100))
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func parse(c any) (Tag, HSL, error) {
	switch v := c.(type) {
	case string:
		return parseString(v)
	case RGB:
		return TagRGBObject, fromColorful(colorful.Color{R: float64(v.R) / 255, G: float64(v.G) / 255, B: float64(v.B) / 255}), nil
	case HSL:
		if !validHSL(v) {
			return "", HSL{}, colorerrors.NewInvalidColorError(v, fmt.Errorf("hsl channels out of range"))
		}
		return TagHSLObject, v.Normalize(), nil
	default:
		return "", HSL{}, colorerrors.NewInvalidColorError(c, fmt.Errorf("unsupported color value of type %T", c))
	}
}

func parseString(s string) (Tag, HSL, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))

	var tag Tag
	switch {
	case strings.HasPrefix(trimmed, "#"):
		col, err := colorful.Hex(trimmed)
		if err != nil {
			return "", HSL{}, colorerrors.NewInvalidColorError(s, err)
		}
		return TagHex, fromColorful(col), nil
	case strings.HasPrefix(trimmed, "rgb("):
		tag = TagRGB
	case strings.HasPrefix(trimmed, "hsl("):
		tag = TagHSL
	default:
		return "", HSL{}, colorerrors.NewInvalidColorError(s, fmt.Errorf("unrecognised color format"))
	}

	// Out-of-range channels are clamped as in CSS.
	col, err := csscolorparser.Parse(trimmed)
	if err != nil {
		return "", HSL{}, colorerrors.NewInvalidColorError(s, err)
	}
	if col.A < 1 {
		return "", HSL{}, colorerrors.NewInvalidColorError(s, fmt.Errorf("translucent colors are not supported"))
	}
	return tag, fromColorful(colorful.Color{R: col.R, G: col.G, B: col.B}), nil
}

func validHSL(h HSL) bool {
	if math.IsNaN(h.H) || math.IsInf(h.H, 0) {
		return false
	}
	return h.S >= 0 && h.S <= 1 && h.L >= 0 && h.L <= 1
}

func toColorful(h HSL) colorful.Color {
	return colorful.Hsl(h.H, h.S, h.L).Clamped()
}

func fromColorful(c colorful.Color) HSL {
	h, s, l := c.Hsl()
	return HSL{H: h, S: s, L: l}.Normalize()
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
