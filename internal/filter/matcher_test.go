package filter

import (
	"testing"

	"jobscan-automation/internal/scraper"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "a b", NormalizeText("  a\n\tb "))
	assert.Equal(t, "", NormalizeText(""))
	assert.Equal(t, "", NormalizeText("   \n\t"))
	assert.Equal(t, "Head of Data", NormalizeText("Head of  Data"))

	//idempotent
	once := NormalizeText("  Head   of\nData  ")
	assert.Equal(t, once, NormalizeText(once))
}

func TestTitleMatches(t *testing.T) {
	assert.True(t, TitleMatches("Head Of Data"))
	assert.True(t, TitleMatches("Director of Analytics (FinTech)"))
	assert.True(t, TitleMatches("Chief Data Officer"))
	assert.False(t, TitleMatches("Senior Analyst"))
	assert.False(t, TitleMatches(""))
}

func TestEngagement(t *testing.T) {
	assert.Equal(t, scraper.Contract, Engagement("Head of Data - 6 month contract"))
	assert.Equal(t, scraper.Contract, Engagement("Day Rate negotiable"))
	assert.Equal(t, scraper.Permanent, Engagement("Head of Data"))
	assert.Equal(t, scraper.Permanent, Engagement(""))
}

func TestSectorOf(t *testing.T) {
	priority := []string{"banking", "health", "retail"}

	assert.Equal(t, "banking", SectorOf("digital banking and retail analytics", priority))
	assert.Equal(t, "health", SectorOf("Health insurer seeks leader", priority))
	assert.Equal(t, scraper.SectorOther, SectorOf("mining company", priority))
	assert.Equal(t, scraper.SectorOther, SectorOf("anything", nil))
	assert.Equal(t, scraper.SectorOther, SectorOf("", priority))
}
