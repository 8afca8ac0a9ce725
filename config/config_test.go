package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedFlags(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "000"},
		{"1", "100"},
		{"01", "010"},
		{"101", "101"},
		{"1100", "110"},
		{"111111", "111"},
		{"éé", "000"},
		{"é1", "010"},
		{"1x1", "101"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FixedFlags(tt.in))
		})
	}
}

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "101", FlagsString(true, false, true))
	assert.Equal(t, "000", FlagsString(false, false, false))
	assert.True(t, FlagSet("010", 1))
	assert.False(t, FlagSet("010", 0))
	assert.False(t, FlagSet("01", 5))
}

func TestStore_LoadMissingFileUsesDefaults(t *testing.T) {
	s := NewStore(afero.NewMemMapFs(), FileName)
	cfg := s.Load()
	assert.Equal(t, Default(), cfg)
}

func TestStore_LoadMalformedFileUsesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, FileName, []byte(`{"query": "forest",`), 0644))

	cfg := NewStore(fs, FileName).Load()
	assert.Equal(t, Default(), cfg)
}

func TestStore_LoadMergesOntoDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, FileName, []byte(`{"query":"mountains","sorting":"toplist","change_interval":15}`), 0644))

	cfg := NewStore(fs, FileName).Load()
	assert.Equal(t, "mountains", cfg.Query)
	assert.Equal(t, SortToplist, cfg.Sorting)
	assert.Equal(t, 15, cfg.ChangeInterval)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultCategories, cfg.Categories)
	assert.Equal(t, Range1Month, cfg.TopRange)
	assert.Equal(t, OrderDesc, cfg.Order)
}

func TestStore_LoadNormalizesFlags(t *testing.T) {
	tests := []struct {
		name                 string
		categories, purity   string
		wantCats, wantPurity string
	}{
		{"short", "1", "", "100", "000"},
		{"long", "11010", "1001", "110", "100"},
		{"exact", "011", "110", "011", "110"},
		{"non-ascii", "é1", "éé", "010", "000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			raw, _ := json.Marshal(map[string]string{"categories": tt.categories, "purity": tt.purity})
			require.NoError(t, afero.WriteFile(fs, FileName, raw, 0644))

			cfg := NewStore(fs, FileName).Load()
			assert.Len(t, cfg.Categories, 3)
			assert.Len(t, cfg.Purity, 3)
			assert.Equal(t, tt.wantCats, cfg.Categories)
			assert.Equal(t, tt.wantPurity, cfg.Purity)
		})
	}
}

func TestStore_LoadRaisesNonPositiveInterval(t *testing.T) {
	for _, raw := range []string{`{"change_interval":0}`, `{"change_interval":-5}`} {
		t.Run(raw, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, FileName, []byte(raw), 0644))

			cfg := NewStore(fs, FileName).Load()
			assert.Equal(t, DefaultChangeInterval, cfg.ChangeInterval)
		})
	}
}

func TestStore_NonASCIIFlagsSurviveRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, FileName, []byte(`{"categories":"é1","purity":"éé"}`), 0644))
	s := NewStore(fs, FileName)

	first := s.Load()
	require.NoError(t, s.Save(first))
	assert.Equal(t, first, s.Load())
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewStore(fs, "settings/"+FileName)

	cfg := s.Load()
	cfg.APIKey = "abcdefghijklmnopqrstuvwxyz012345"
	cfg.Query = "mountains"
	cfg.Categories = "100"
	cfg.StartMinimized = true
	cfg.LaunchOnBoot = true
	require.NoError(t, s.Save(cfg))

	loaded := s.Load()
	assert.Equal(t, cfg, loaded)

	// saving what was just loaded must not change anything
	require.NoError(t, s.Save(loaded))
	assert.Equal(t, loaded, s.Load())
}

func TestStore_SaveWritesExactKeys(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewStore(fs, FileName)
	require.NoError(t, s.Save(Default()))

	data, err := afero.ReadFile(fs, FileName)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{
		"api_key", "query", "categories", "purity", "resolutions", "ratios", "sorting",
		"order", "change_interval", "download_dir", "topRange", "start_minimized", "launch_on_boot",
	}, keys)
}

func TestStore_SaveFailsOnReadOnlyFs(t *testing.T) {
	s := NewStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), FileName)
	err := s.Save(Default())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config file")
}

func TestConfig_IntervalAndClone(t *testing.T) {
	cfg := Default()
	assert.Equal(t, time.Hour, cfg.Interval())

	cfg.ChangeInterval = 0
	assert.Equal(t, time.Minute, cfg.Interval())

	cp := cfg.Clone()
	cp.Query = "changed"
	assert.NotEqual(t, cfg.Query, cp.Query, "clone must not share state")
}

func TestNormalize_UnknownChoices(t *testing.T) {
	cfg := Default()
	cfg.Sorting = "views"
	cfg.Order = "sideways"
	cfg.TopRange = "2w"
	cfg.Normalize()
	assert.Equal(t, SortRandom, cfg.Sorting)
	assert.Equal(t, OrderDesc, cfg.Order)
	assert.Equal(t, Range1Month, cfg.TopRange)

	cfg.Sorting = SortDateAdded
	cfg.Order = OrderAsc
	cfg.TopRange = Range1Year
	cfg.Normalize()
	assert.Equal(t, SortDateAdded, cfg.Sorting)
	assert.Equal(t, OrderAsc, cfg.Order)
	assert.Equal(t, Range1Year, cfg.TopRange)
}
