package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/visdev-lib/color/pkg/colorspace"
	"github.com/visdev-lib/color/pkg/palette"
	"github.com/visdev-lib/color/pkg/theme"
)

// Text colours placed on top of a swatch, picked by the swatch lightness.
const (
	onLight = "#111827"
	onDark  = "#f9fafb"

	// onLightThreshold is the HSL lightness above which dark text is used.
	onLightThreshold = 0.55
	swatchWidth      = 12
)

// tailwindSteps names the shades of a ten step palette.
var tailwindSteps = [...]string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Width(10)
	valueStyle = lipgloss.NewStyle().Width(24)
)

// Swatch is one labelled color ready for printing or encoding.
type Swatch struct {
	Label string  `json:"label" yaml:"label"`
	Value any     `json:"value" yaml:"value"`
	Hex   string  `json:"hex" yaml:"hex"`
	L     float64 `json:"-" yaml:"-"`
}

// PalettePayload is the encoded form of a palette.
type PalettePayload struct {
	Source string   `json:"source" yaml:"source"`
	Type   string   `json:"type" yaml:"type"`
	Size   int      `json:"size" yaml:"size"`
	Min    float64  `json:"min" yaml:"min"`
	Max    float64  `json:"max" yaml:"max"`
	Shades []Swatch `json:"shades" yaml:"shades"`
}

// ThemePayload is the encoded form of a theme.
type ThemePayload struct {
	Seed  string   `json:"seed" yaml:"seed"`
	Type  string   `json:"type" yaml:"type"`
	Roles []Swatch `json:"roles" yaml:"roles"`
}

// ShadeLabel names shade i of a palette of size shades. Ten step palettes use Tailwind numbering.
func ShadeLabel(i, size int) string {
	if size == len(tailwindSteps) && i >= 0 && i < size {
		return tailwindSteps[i]
	}
	return strconv.Itoa(i)
}

// NewSwatch describes c under label.
func NewSwatch(label string, c any) (Swatch, error) {
	hsl, err := colorspace.ToHSL(c)
	if err != nil {
		return Swatch{}, err
	}
	hex, err := colorspace.ToHex(c)
	if err != nil {
		return Swatch{}, err
	}
	return Swatch{Label: label, Value: c, Hex: hex, L: hsl.L}, nil
}

// PaletteSwatches materialises every shade of p.
func PaletteSwatches[T colorspace.Any](p *palette.Palette[T]) ([]Swatch, error) {
	out := make([]Swatch, 0, p.Size())
	for i, shade := range p.Indexed() {
		s, err := NewSwatch(ShadeLabel(i, p.Size()), shade)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// ThemeSwatches lists every role of t in display order.
func ThemeSwatches[T colorspace.Any](t *theme.Theme[T]) ([]Swatch, error) {
	roles := t.Roles()
	out := make([]Swatch, 0, len(roles))
	for _, role := range roles {
		s, err := NewSwatch(role, t.MustGet(role))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// NewPalettePayload builds the encodable description of p.
func NewPalettePayload[T colorspace.Any](p *palette.Palette[T]) (PalettePayload, error) {
	shades, err := PaletteSwatches(p)
	if err != nil {
		return PalettePayload{}, err
	}
	opts := p.Options()
	return PalettePayload{
		Source: fmt.Sprint(p.Source()),
		Type:   p.Type().String(),
		Size:   p.Size(),
		Min:    opts.Min,
		Max:    opts.Max,
		Shades: shades,
	}, nil
}

// NewThemePayload builds the encodable description of t.
func NewThemePayload[T colorspace.Any](t *theme.Theme[T]) (ThemePayload, error) {
	roles, err := ThemeSwatches(t)
	if err != nil {
		return ThemePayload{}, err
	}
	return ThemePayload{
		Seed:  fmt.Sprint(t.Primary()),
		Type:  t.Type().String(),
		Roles: roles,
	}, nil
}

// Encode writes v as indented JSON or YAML.
func Encode(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// Table writes one line per swatch under title. With swatches enabled each line ends with a
// colored block; otherwise the output is plain text.
func Table(w io.Writer, title string, swatches []Swatch, withSwatches bool) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	for _, s := range swatches {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(s.Label))
		b.WriteString(valueStyle.Render(fmt.Sprint(s.Value)))
		if withSwatches {
			b.WriteString(Block(s, swatchWidth))
		} else {
			b.WriteString(s.Hex)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Block renders a swatch as a colored block with its hex code written in a readable color.
func Block(s Swatch, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(s.Hex)).
		Foreground(lipgloss.Color(OnColor(s.L))).
		Width(width).
		Align(lipgloss.Center).
		Render(s.Hex)
}

// OnColor returns the text color that stays legible on a background of the given lightness.
func OnColor(lightness float64) string {
	if lightness > onLightThreshold {
		return onLight
	}
	return onDark
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
