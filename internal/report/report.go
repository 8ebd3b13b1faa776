// Report assembly: the ranked table rendered as delimited text and HTML,
// plus the JSON run summary written next to them.

package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"jobscan-automation/internal/pipeline"
	"jobscan-automation/internal/scraper"
)

var columns = []string{
	"Role",
	"Company/Agency",
	"Source (with link)",
	"Posting Date",
	"Engagement Type (Perm/Contract)",
	"Status (Active/Closed)",
	"Sector",
	"Rationale (why it fits)",
	"Alignment Score (1–10)",
}

// Title builds the report heading for a run.
func Title(city string, now time.Time) string {
	return fmt.Sprintf("%s Data Leadership Intelligence Report — %s (08:30 %s)",
		city, now.Format("02 January 2006"), city)
}

// Folder is the dated artifact folder for a run: <prefix>/<ISO-date>.
func Folder(prefix string, now time.Time) string {
	return prefix + "/" + now.UTC().Format("2006-01-02")
}

func rowValues(l scraper.Listing) []string {
	posted := ""
	if !l.PostedAt.IsZero() {
		posted = l.PostedAt.UTC().Format("2006-01-02")
	}
	return []string{
		l.Role,
		l.Company,
		l.SourceURL,
		posted,
		string(l.Engagement),
		string(l.Status),
		l.Sector,
		l.Rationale,
		strconv.Itoa(l.Score),
	}
}

// CSV renders the ranked table as comma-delimited text. An empty run
// renders to nothing, matching the artifact the notifier checks for.
func CSV(records []scraper.Listing) ([]byte, error) {
	if len(records) == 0 {
		return nil, nil
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return nil, err
	}
	for _, l := range records {
		if err := w.Write(rowValues(l)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var htmlTmpl = template.Must(template.New("report").Parse(`<h2>{{.Title}}</h2>
<table border="1">
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
`))

// HTML renders the ranked table with a title heading. An empty run
// renders the short stub the original report used.
func HTML(records []scraper.Listing, title string) ([]byte, error) {
	if len(records) == 0 {
		return []byte("<p>No matching roles today.</p>"), nil
	}

	rows := make([][]string, 0, len(records))
	for _, l := range records {
		rows = append(rows, rowValues(l))
	}

	var buf bytes.Buffer
	err := htmlTmpl.Execute(&buf, struct {
		Title   string
		Columns []string
		Rows    [][]string
	}{title, columns, rows})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Summary is the JSON debug artifact describing the run window and the
// per-source tally; written even when the table is empty.
func Summary(res pipeline.Result) ([]byte, error) {
	return json.MarshalIndent(struct {
		SinceUTC        string                      `json:"since_utc"`
		NowUTC          string                      `json:"now_utc"`
		SelectedSources []string                    `json:"selected_sources"`
		PerSource       map[string]pipeline.Outcome `json:"per_source"`
		TotalRows       int                         `json:"total_rows"`
	}{
		SinceUTC:        res.Run.Since.Format(time.RFC3339),
		NowUTC:          res.Run.Now.Format(time.RFC3339),
		SelectedSources: res.Selected,
		PerSource:       res.PerSource,
		TotalRows:       len(res.Records),
	}, "", "  ")
}
