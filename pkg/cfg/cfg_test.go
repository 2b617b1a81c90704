package cfg_test

import (
	"os"
	"path/filepath"
	"testing"

	"svgreduce/pkg/cfg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := cfg.Default()
	assert.Equal(t, 2, c.MaxDecimalPlaces)
	assert.True(t, c.ConvertToRelative)
	assert.True(t, c.KeepShorter)
	assert.True(t, c.CompactLetters)
	assert.False(t, c.DevMode)
	assert.False(t, c.Lenient)
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	c := cfg.Default()
	c.MaxDecimalPlaces = -1
	assert.Error(t, c.Validate())
	c.MaxDecimalPlaces = cfg.MaxDecimalPlacesLimit + 1
	assert.Error(t, c.Validate())
	c.MaxDecimalPlaces = cfg.MaxDecimalPlacesLimit
	assert.NoError(t, c.Validate())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		data string
		want func(c *cfg.Config)
	}{
		{
			name: "options.toml",
			data: "maxDecimalPlaces = 3\ndevmode = true\n",
			want: func(c *cfg.Config) { c.MaxDecimalPlaces = 3; c.DevMode = true },
		},
		{
			name: "options.yaml",
			data: "maxDecimalPlaces: 1\nlenient: true\n",
			want: func(c *cfg.Config) { c.MaxDecimalPlaces = 1; c.Lenient = true },
		},
		{
			name: "options.json",
			data: `{"maxDecimalPlaces": 0, "keepShorter": false}`,
			want: func(c *cfg.Config) { c.MaxDecimalPlaces = 0; c.KeepShorter = false },
		},
	}

	dir := t.TempDir()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(dir, test.name)
			require.NoError(t, os.WriteFile(path, []byte(test.data), 0o644))

			got, err := cfg.Load(path)
			require.NoError(t, err)

			want := cfg.Default()
			test.want(&want)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := cfg.Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	unknown := filepath.Join(dir, "options.ini")
	require.NoError(t, os.WriteFile(unknown, []byte("x=1"), 0o644))
	_, err = cfg.Load(unknown)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "options.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"maxDecimalPlaces": 99}`), 0o644))
	_, err = cfg.Load(invalid)
	assert.Error(t, err)
}
