package static

import "jobscan-automation/internal/fetch"

// NewSeek targets the Seek search results for the leadership-role query.
func NewSeek(client *fetch.Client) *Adapter {
	return &Adapter{
		name: "seek",
		searchURL: "https://www.seek.com.au/jobs" +
			"?where=Sydney&keywords=head%20of%20data%20OR%20head%20of%20analytics%20" +
			"OR%20director%20of%20data%20OR%20director%20of%20analytics",
		origin:      "https://www.seek.com.au",
		selector:    "a[href*='/job/']",
		placeholder: "Seek Listing",
		client:      client,
	}
}

// NewIndeed targets the Indeed AU search results for the same query.
func NewIndeed(client *fetch.Client) *Adapter {
	return &Adapter{
		name: "indeed",
		searchURL: "https://au.indeed.com/jobs" +
			"?q=head+of+data+OR+head+of+analytics+OR+director+of+data+OR+director+of+analytics" +
			"&l=Sydney+NSW",
		origin:      "https://au.indeed.com",
		selector:    "a[href*='/pagead/'], a[href*='/viewjob']",
		placeholder: "Indeed Listing",
		client:      client,
	}
}
