package service

import (
	"html/template"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/polyscan-dev/polyscan/domain"
)

// HTMLRow is one per-extension line of the breakdown table
type HTMLRow struct {
	Ext string
	Agg *domain.ExtensionAggregate
}

// HTMLData represents the data for the HTML template
type HTMLData struct {
	GeneratedAt  string
	Duration     int64
	Version      string
	HasSummary   bool
	Summary      *domain.ProjectSummary
	SkippedFiles int
	Rows         []HTMLRow
	CodePct      float64
	CommentPct   float64
	BlankPct     float64
}

// WriteHTML writes the analysis result as a standalone HTML report
func (f *OutputFormatterImpl) WriteHTML(response *domain.AnalyzeResponse, sortBy domain.SortCriteria, writer io.Writer) error {
	data := HTMLData{
		GeneratedAt:  response.GeneratedAt,
		Duration:     response.DurationMs,
		Version:      response.Version,
		HasSummary:   response.Summary != nil,
		Summary:      response.Summary,
		SkippedFiles: response.SkippedFiles,
	}

	if summary := response.Summary; summary != nil {
		for _, ext := range SortedExtensions(summary, sortBy) {
			data.Rows = append(data.Rows, HTMLRow{Ext: ext, Agg: summary.Extensions[ext]})
		}
		data.CodePct = percent(summary.LinesCode, summary.TotalLines)
		data.CommentPct = percent(summary.LinesComment, summary.TotalLines)
		data.BlankPct = percent(summary.LinesBlank, summary.TotalLines)
	}

	funcMap := template.FuncMap{
		"comma": func(n int) string {
			return humanize.Comma(int64(n))
		},
	}

	tmpl := template.Must(template.New("report").Funcs(funcMap).Parse(htmlTemplate))
	return tmpl.Execute(writer, data)
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>polyscan Analysis Report</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: -apple-system, "Segoe UI", sans-serif; background: #f5f6fa; color: #2f3640; padding: 40px; }
        h1 { color: #6d5dfc; margin-bottom: 8px; }
        .meta { color: #718093; font-size: 13px; margin-bottom: 30px; }
        .cards { display: flex; gap: 16px; margin-bottom: 30px; }
        .card { flex: 1; background: #fff; border-radius: 8px; padding: 18px; box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
        .card .label { font-size: 12px; color: #718093; text-transform: uppercase; }
        .card .value { font-size: 26px; font-weight: bold; color: #6d5dfc; }
        .card .value.danger { color: #e84118; }
        .bar { display: flex; height: 14px; border-radius: 7px; overflow: hidden; margin: 10px 0 6px; }
        .bar .code { background: #44bd32; }
        .bar .comment { background: #6d5dfc; }
        .bar .blank { background: #b2bec3; }
        .legend { font-size: 12px; color: #718093; margin-bottom: 30px; }
        table { width: 100%; border-collapse: collapse; background: #fff; border-radius: 8px; overflow: hidden; box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
        th, td { padding: 10px 14px; text-align: right; font-size: 14px; }
        th:first-child, td:first-child { text-align: left; }
        th { background: #6d5dfc; color: #fff; font-size: 12px; text-transform: uppercase; }
        tr:nth-child(even) { background: #f5f6fa; }
        td.ext { color: #6d5dfc; font-weight: bold; }
        .empty { background: #fff; border-radius: 8px; padding: 30px; text-align: center; color: #718093; }
    </style>
</head>
<body>
    <h1>polyscan Analysis Report</h1>
    <div class="meta">Generated: {{.GeneratedAt}} &middot; Duration: {{.Duration}}ms &middot; Version: {{.Version}}</div>

    {{if .HasSummary}}
    <div class="cards">
        <div class="card"><div class="label">Files</div><div class="value">{{comma .Summary.TotalFiles}}</div></div>
        <div class="card"><div class="label">Total Lines</div><div class="value">{{comma .Summary.TotalLines}}</div></div>
        <div class="card"><div class="label">Debt Tags</div><div class="value danger">{{comma .Summary.TotalTodos}}</div></div>
    </div>

    {{if gt .Summary.TotalLines 0}}
    <h3>Composition</h3>
    <div class="bar">
        <div class="code" style="width: {{printf "%.1f" .CodePct}}%"></div>
        <div class="comment" style="width: {{printf "%.1f" .CommentPct}}%"></div>
        <div class="blank" style="width: {{printf "%.1f" .BlankPct}}%"></div>
    </div>
    <div class="legend">
        Code: {{comma .Summary.LinesCode}} ({{printf "%.1f" .CodePct}}%) &nbsp;
        Comments: {{comma .Summary.LinesComment}} ({{printf "%.1f" .CommentPct}}%) &nbsp;
        Blank: {{comma .Summary.LinesBlank}} ({{printf "%.1f" .BlankPct}}%)
    </div>
    {{end}}

    <h3>Language Breakdown</h3>
    <table>
        <tr><th>Ext</th><th>Files</th><th>Total Lines</th><th>Code</th><th>Comments</th><th>Blank</th><th>Todo</th></tr>
        {{range .Rows}}
        <tr>
            <td class="ext">{{.Ext}}</td>
            <td>{{.Agg.FileCount}}</td>
            <td>{{comma .Agg.TotalLines}}</td>
            <td>{{comma .Agg.Code}}</td>
            <td>{{comma .Agg.Comment}}</td>
            <td>{{comma .Agg.Blank}}</td>
            <td>{{.Agg.Todo}}</td>
        </tr>
        {{end}}
    </table>
    {{else}}
    <div class="empty">No code files found.</div>
    {{end}}
</body>
</html>
`
