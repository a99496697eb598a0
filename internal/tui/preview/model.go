package preview

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/visdev-lib/color/pkg/palette"
	"github.com/visdev-lib/color/pkg/theme"
)

// MaxSize caps the number of shades the preview will render.
const MaxSize = 32

// Model previews the palette of one theme role at a time.
type Model struct {
	theme *theme.Theme[string]
	roles []string

	cursor int
	size   int

	// palettes caches the palette per role and size so repeated renders reuse computed shades.
	palettes map[paletteKey]*palette.Palette[string]
	err      error

	keys keyMap
	help help.Model

	width  int
	height int
}

type paletteKey struct {
	role string
	size int
}

// NewModel creates a preview for t starting at size shades.
func NewModel(t *theme.Theme[string], size int) Model {
	if size < palette.MinSize {
		size = palette.MinSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	return Model{
		theme:    t,
		roles:    t.Roles(),
		size:     size,
		palettes: make(map[paletteKey]*palette.Palette[string]),
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    80,
		height:   24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Role returns the role currently shown.
func (m Model) Role() string {
	return m.roles[m.cursor]
}

// Size returns the current shade count.
func (m Model) Size() int {
	return m.size
}

func (m Model) currentPalette() (*palette.Palette[string], error) {
	k := paletteKey{role: m.Role(), size: m.size}
	if p, ok := m.palettes[k]; ok {
		return p, nil
	}
	p, err := m.theme.Palette(k.role, k.size)
	if err != nil {
		return nil, err
	}
	m.palettes[k] = p
	return p, nil
}
