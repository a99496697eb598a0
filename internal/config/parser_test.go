package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/visdev-lib/color/pkg/colorspace"
	colorerrors "github.com/visdev-lib/color/pkg/errors"
	"github.com/visdev-lib/color/pkg/palette"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	validYAML := `palette:
  size: 12
  min: 0.1
  max: 0.9
  type: rgb
output:
  format: json
`

	partialYAML := `log:
  level: debug
`

	invalidYAML := `palette:
  size: [1, 2]
`

	badSize := `palette:
  size: 5
`

	badType := `palette:
  type: cmyk
`

	badRange := `palette:
  min: 0.7
  max: 0.2
`

	badFormat := `output:
  format: xml
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, 12, cfg.Palette.Size)
				require.Equal(t, 0.1, cfg.Palette.Min)
				require.Equal(t, "rgb", cfg.Palette.Type)
				require.Equal(t, "json", cfg.Output.Format)
				require.True(t, cfg.Output.Swatches, "unset fields keep defaults")
			},
		},
		{
			name:     "partial configuration keeps defaults",
			contents: partialYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "debug", cfg.Log.Level)
				require.Equal(t, palette.DefaultSize, cfg.Palette.Size)
				require.Equal(t, 1.0, cfg.Palette.Max)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *colorerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "size below minimum",
			contents: badSize,
			assert:   expectValidationField("palette.size"),
		},
		{
			name:     "unknown color type",
			contents: badType,
			assert:   expectValidationField("palette.type"),
		},
		{
			name:     "min above max",
			contents: badRange,
			assert:   expectValidationField("palette.max"),
		},
		{
			name:     "unknown output format",
			contents: badFormat,
			assert:   expectValidationField("output.format"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := Load(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)
	require.NoError(t, Validate(cfg))
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	var parseErr *colorerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestValidateNil(t *testing.T) {
	t.Parallel()

	var validationErr *colorerrors.ValidationError
	require.ErrorAs(t, Validate(nil), &validationErr)
}

func TestPaletteOptions(t *testing.T) {
	t.Parallel()

	settings := PaletteSettings{Size: 10, Min: 0.2, Max: 0.8, Type: "hsl"}
	p, err := palette.New("#3366ff", settings.Size, settings.PaletteOptions()...)
	require.NoError(t, err)
	require.Equal(t, colorspace.TagHSL, p.Type())
	require.Equal(t, 0.2, p.Options().Min)

	settings.Type = ""
	p, err = palette.New("#3366ff", settings.Size, settings.PaletteOptions()...)
	require.NoError(t, err)
	require.Equal(t, colorspace.TagHex, p.Type())
}

func expectValidationField(field string) func(t *testing.T, cfg *Config, err error) {
	return func(t *testing.T, cfg *Config, err error) {
		t.Helper()

		require.Nil(t, cfg)
		var validationErr *colorerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Equal(t, field, validationErr.Field)
	}
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
