package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "Sydney", cfg.CityFilter)
	assert.Equal(t, 7, cfg.WindowDays)
	assert.Equal(t, "jobs_report", cfg.ReportPrefix)
	assert.Equal(t, []string{"azure", "fabric", "powerbi"}, cfg.TechPref)
	assert.Empty(t, cfg.Sources)
	assert.Empty(t, cfg.LinkedInSearchURL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CITY_FILTER", "Melbourne")
	t.Setenv("TIME_WINDOW_DAYS", "14")
	t.Setenv("SOURCES", " Seek , indeed ,")
	t.Setenv("SECTOR_PRIORITY", "Banking,Health")

	cfg := Load()

	assert.Equal(t, "Melbourne", cfg.CityFilter)
	assert.Equal(t, 14, cfg.WindowDays)
	assert.Equal(t, []string{"seek", "indeed"}, cfg.Sources)
	assert.Equal(t, []string{"banking", "health"}, cfg.SectorPriority)
}
