package filter

// Leadership-role phrases. A title qualifies if it contains any of these
// (case-insensitive).
var leadershipPhrases = []string{
	"head of data",
	"head of analytics",
	"head of data & analytics",
	"director of data",
	"director of analytics",
	"head of bi",
	"head of insights",
	"head of data platform",
	"director of insights",
	"data transformation",
	"chief data officer",
	"cdo",
}

// Contract engagement indicators.
var contractIndicators = []string{
	"contract",
	"day rate",
	"daily rate",
	"contractor",
}
