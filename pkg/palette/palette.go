package palette

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"sync"

	"github.com/visdev-lib/color/internal/validation"
	"github.com/visdev-lib/color/pkg/colorspace"
	colorerrors "github.com/visdev-lib/color/pkg/errors"
)

// MinSize is the smallest accepted step count.
const MinSize = 9

// DefaultSize is the step count used by callers that do not pick one.
const DefaultSize = 11

// Palette is an indexable sequence of shades derived from a source color.
//
// Shades are computed on first access and cached for the lifetime of the palette.
// Each cache slot is computed at most once, so a Palette may be shared between goroutines.
type Palette[T colorspace.Any] struct {
	source T
	hsl    colorspace.HSL
	size   int
	opts   Options
	cache  []slot[T]
}

type slot[T any] struct {
	once  sync.Once
	value T
}

// New builds a palette of size shades around source.
//
// It fails with a ConstructionError when size is less than MinSize or the options are
// out of range, and with an InvalidColorError when source cannot be normalised.
func New[T colorspace.Any](source T, size int, opts ...Option) (*Palette[T], error) {
	if size < MinSize {
		return nil, colorerrors.NewConstructionError("size", fmt.Sprintf("must not be less than %d, got %d", MinSize, size), nil)
	}

	tag, err := colorspace.Detect(source)
	if err != nil {
		return nil, err
	}
	hsl, err := colorspace.ToHSL(source)
	if err != nil {
		return nil, err
	}

	options := defaultOptions(tag)
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	if options.shade == nil {
		options.shade = ShadeAt
	}

	if err := validation.Struct(options, colorerrors.NewConstructionError); err != nil {
		return nil, err
	}
	if !colorspace.Accepts[T](options.Type) {
		var zero T
		return nil, colorerrors.NewConstructionError("type", fmt.Sprintf("color type %q cannot be produced as %T", options.Type, zero), nil)
	}

	p := &Palette[T]{
		source: source,
		hsl:    hsl,
		size:   size,
		opts:   options,
		cache:  make([]slot[T], size),
	}

	options.Logger.WithFields(map[string]any{
		"source": fmt.Sprint(source),
		"size":   size,
		"type":   options.Type.String(),
	}).Debug("palette created")

	return p, nil
}

// Create builds a palette with default options.
func Create[T colorspace.Any](source T, size int) (*Palette[T], error) {
	return New(source, size)
}

// Source returns the color the palette was built from.
func (p *Palette[T]) Source() T {
	return p.source
}

// HSL returns a copy of the source color's HSL triple.
func (p *Palette[T]) HSL() colorspace.HSL {
	return p.hsl
}

// Type returns the representation shades are rendered in.
func (p *Palette[T]) Type() colorspace.Tag {
	return p.opts.Type
}

// Size returns the number of shades.
func (p *Palette[T]) Size() int {
	return p.size
}

// Options returns a copy of the effective options.
func (p *Palette[T]) Options() Options {
	return p.opts
}

// Get returns shade i. Indexes outside [0, Size) are computed on every call and never cached.
func (p *Palette[T]) Get(i int) T {
	if i < 0 || i >= p.size {
		return p.compute(i)
	}

	s := &p.cache[i]
	s.once.Do(func() {
		s.value = p.compute(i)
		p.opts.Logger.Debugf("computed shade %d of %d", i, p.size)
	})
	return s.value
}

// All returns every shade in index order.
func (p *Palette[T]) All() []T {
	return slices.Collect(p.Values())
}

// Values returns a fresh traversal of the shades from index 0.
func (p *Palette[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < p.size; i++ {
			if !yield(p.Get(i)) {
				return
			}
		}
	}
}

// Indexed is Values with the shade index attached.
func (p *Palette[T]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < p.size; i++ {
			if !yield(i, p.Get(i)) {
				return
			}
		}
	}
}

// Iter returns an explicit cursor positioned before the first shade.
func (p *Palette[T]) Iter() *Iterator[T] {
	return &Iterator[T]{palette: p}
}

// Closest returns the index of the shade whose lightness is nearest to c.
func (p *Palette[T]) Closest(c T) (int, error) {
	target, err := colorspace.ToHSL(c)
	if err != nil {
		return 0, err
	}

	best, bestDist := 0, math.Inf(1)
	for i := 0; i < p.size; i++ {
		shade := p.opts.shade(i, p.hsl, p.size, p.opts)
		if d := math.Abs(shade.L - target.L); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, nil
}

func (p *Palette[T]) String() string {
	return fmt.Sprintf("Palette(%s, size=%d, source=%v)", p.opts.Type, p.size, p.source)
}

func (p *Palette[T]) compute(i int) T {
	hsl := p.opts.shade(i, p.hsl, p.size, p.opts)
	out, err := colorspace.Convert[T](hsl, p.opts.Type)
	if err != nil {
		// New rejects every type Convert cannot produce.
		panic(fmt.Sprintf("palette: %v", err))
	}
	return out
}

// Iterator walks a palette one shade at a time. Each Iterator keeps its own cursor.
type Iterator[T colorspace.Any] struct {
	palette *Palette[T]
	index   int
}

// Next returns the next shade and true, or the zero value and false once exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.index >= it.palette.size {
		var zero T
		return zero, false
	}
	v := it.palette.Get(it.index)
	it.index++
	return v, true
}

// Reset rewinds the cursor to the first shade.
func (it *Iterator[T]) Reset() {
	it.index = 0
}
