package palette

import (
	"bytes"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visdev-lib/color/pkg/colorspace"
	colorerrors "github.com/visdev-lib/color/pkg/errors"
	"github.com/visdev-lib/color/pkg/logger"
)

const seed = "#3366ff"

func countingShade(counts *[64]atomic.Int32) ShadeFunc {
	return func(i int, base colorspace.HSL, size int, opts Options) colorspace.HSL {
		if i >= 0 && i < len(counts) {
			counts[i].Add(1)
		}
		return ShadeAt(i, base, size, opts)
	}
}

func TestNewSizeBoundary(t *testing.T) {
	t.Parallel()

	cases := []struct {
		size    int
		wantErr bool
	}{
		{size: 0, wantErr: true},
		{size: 8, wantErr: true},
		{size: 9, wantErr: false},
		{size: 10, wantErr: false},
	}

	for _, tc := range cases {
		p, err := Create(seed, tc.size)
		if tc.wantErr {
			var constructionErr *colorerrors.ConstructionError
			require.ErrorAs(t, err, &constructionErr, "size %d", tc.size)
			require.Equal(t, "size", constructionErr.Field)
			require.Nil(t, p)
			continue
		}
		require.NoError(t, err, "size %d", tc.size)
		require.Equal(t, tc.size, p.Size())
	}
}

func TestNewRejectsInvalidSource(t *testing.T) {
	t.Parallel()

	_, err := Create("not-a-color", 10)

	var colorErr *colorerrors.InvalidColorError
	require.ErrorAs(t, err, &colorErr)
}

func TestNewDefaultsAndOverrides(t *testing.T) {
	t.Parallel()

	p, err := Create(seed, 10)
	require.NoError(t, err)
	assert.Equal(t, colorspace.TagHex, p.Type())
	assert.Equal(t, 0.0, p.Options().Min)
	assert.Equal(t, 1.0, p.Options().Max)
	assert.Equal(t, seed, p.Source())

	p, err = New(seed, 10, WithType(colorspace.TagRGB), WithRange(0.1, 0.9))
	require.NoError(t, err)
	assert.Equal(t, colorspace.TagRGB, p.Type())
	assert.Equal(t, 0.1, p.Options().Min)
	assert.Equal(t, 0.9, p.Options().Max)
	assert.True(t, strings.HasPrefix(p.Get(0), "rgb("))
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		opts  []Option
		field string
	}{
		{name: "min above max", opts: []Option{WithRange(0.8, 0.2)}, field: "max"},
		{name: "max out of range", opts: []Option{WithMax(1.5)}, field: "max"},
		{name: "negative min", opts: []Option{WithMin(-0.1)}, field: "min"},
		{name: "unknown type", opts: []Option{WithType("cmyk")}, field: "type"},
		{name: "object type for string palette", opts: []Option{WithType(colorspace.TagRGBObject)}, field: "type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(seed, 10, tc.opts...)

			var constructionErr *colorerrors.ConstructionError
			require.ErrorAs(t, err, &constructionErr)
			require.Equal(t, tc.field, constructionErr.Field)
		})
	}
}

func TestGetIsDeterministic(t *testing.T) {
	t.Parallel()

	p, err := Create(seed, 11)
	require.NoError(t, err)

	other, err := Create(seed, 11)
	require.NoError(t, err)

	all := p.All()
	for i := 0; i < p.Size(); i++ {
		assert.Equal(t, p.Get(i), p.Get(i))
		assert.Equal(t, all[i], p.Get(i))
		assert.Equal(t, other.Get(i), p.Get(i), "fresh palette must agree at %d", i)
	}
}

func TestGetComputesEachIndexOnce(t *testing.T) {
	t.Parallel()

	var counts [64]atomic.Int32
	p, err := New(seed, 12, WithShadeFunc(countingShade(&counts)))
	require.NoError(t, err)

	first := p.Get(3)
	second := p.Get(3)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), counts[3].Load())

	p.All()
	p.All()
	for i := 0; i < p.Size(); i++ {
		assert.Equal(t, int32(1), counts[i].Load(), "index %d", i)
	}
}

func TestGetComputesOnceUnderConcurrency(t *testing.T) {
	t.Parallel()

	var counts [64]atomic.Int32
	p, err := New(seed, 20, WithShadeFunc(countingShade(&counts)))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < p.Size(); i++ {
				p.Get(i)
			}
		}()
	}
	wg.Wait()

	for i := 0; i < p.Size(); i++ {
		assert.Equal(t, int32(1), counts[i].Load(), "index %d", i)
	}
}

func TestGetOutOfRangeIsNotCached(t *testing.T) {
	t.Parallel()

	var counts [64]atomic.Int32
	p, err := New(seed, 10, WithShadeFunc(func(i int, base colorspace.HSL, size int, opts Options) colorspace.HSL {
		if i == 12 {
			counts[0].Add(1)
		}
		return ShadeAt(i, base, size, opts)
	}))
	require.NoError(t, err)

	require.NotPanics(t, func() {
		p.Get(-1)
		p.Get(12)
		p.Get(12)
	})
	assert.Equal(t, int32(2), counts[0].Load())
}

func TestIterationIsCompleteAndRestartable(t *testing.T) {
	t.Parallel()

	p, err := Create(seed, 10)
	require.NoError(t, err)

	first := slices.Collect(p.Values())
	second := slices.Collect(p.Values())
	require.Len(t, first, 10)
	assert.Equal(t, first, second)

	for i, v := range p.Indexed() {
		assert.Equal(t, p.Get(i), v)
	}

	it := p.Iter()
	other := p.Iter()
	var got []string
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	assert.Equal(t, first, got)

	v, ok := other.Next()
	require.True(t, ok, "a second iterator keeps its own cursor")
	assert.Equal(t, first[0], v)

	_, ok = it.Next()
	assert.False(t, ok)
	it.Reset()
	v, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, first[0], v)
}

func TestValuesStopsEarly(t *testing.T) {
	t.Parallel()

	var counts [64]atomic.Int32
	p, err := New(seed, 10, WithShadeFunc(countingShade(&counts)))
	require.NoError(t, err)

	for i := range p.Indexed() {
		if i == 2 {
			break
		}
	}
	assert.Equal(t, int32(0), counts[5].Load())
}

func TestHSLAccessorReturnsCopy(t *testing.T) {
	t.Parallel()

	p, err := Create(seed, 10)
	require.NoError(t, err)

	hsl := p.HSL()
	original := hsl
	hsl.L = 0
	hsl.H = 12

	assert.Equal(t, original, p.HSL())
}

func TestShadesRunLightToDark(t *testing.T) {
	t.Parallel()

	p, err := New(seed, 11, WithRange(0.05, 0.95))
	require.NoError(t, err)

	prev := 2.0
	for i, shade := range p.Indexed() {
		hsl, err := colorspace.ToHSL(shade)
		require.NoError(t, err)
		assert.Less(t, hsl.L, prev, "index %d", i)
		assert.GreaterOrEqual(t, hsl.L, 0.05-1e-2)
		assert.LessOrEqual(t, hsl.L, 0.95+1e-2)
		prev = hsl.L
	}

	assert.Equal(t, seed, p.Get(p.Size()/2), "the middle shade is the source")
}

func TestObjectPalettes(t *testing.T) {
	t.Parallel()

	rgb, err := Create(colorspace.RGB{R: 51, G: 102, B: 255}, 9)
	require.NoError(t, err)
	assert.Equal(t, colorspace.TagRGBObject, rgb.Type())
	assert.Equal(t, colorspace.RGB{R: 51, G: 102, B: 255}, rgb.Get(4))

	hsl, err := Create(colorspace.HSL{H: 225, S: 1, L: 0.6}, 9)
	require.NoError(t, err)
	assert.Equal(t, colorspace.TagHSLObject, hsl.Type())
	assert.InDelta(t, 225, hsl.Get(0).H, 1e-9)
}

func TestClosest(t *testing.T) {
	t.Parallel()

	p, err := Create(seed, 11)
	require.NoError(t, err)

	idx, err := p.Closest(seed)
	require.NoError(t, err)
	assert.Equal(t, 5, idx)

	idx, err = p.Closest("#000000")
	require.NoError(t, err)
	assert.Equal(t, 10, idx)

	_, err = p.Closest("bogus")
	require.Error(t, err)
}

func TestLoggerRecordsCacheMisses(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	p, err := New(seed, 9, WithLogger(log))
	require.NoError(t, err)
	p.Get(1)
	p.Get(1)

	out := buf.String()
	assert.Contains(t, out, "palette created")
	assert.Equal(t, 1, strings.Count(out, "computed shade 1 of 9"))
}

func TestString(t *testing.T) {
	t.Parallel()

	p, err := Create(seed, 10)
	require.NoError(t, err)
	assert.Equal(t, "Palette(hex, size=10, source=#3366ff)", p.String())
}
