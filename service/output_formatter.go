package service

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/polyscan-dev/polyscan/domain"
)

// OutputFormatterImpl implements the OutputFormatter interface
type OutputFormatterImpl struct{}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

var _ domain.OutputFormatter = (*OutputFormatterImpl)(nil)

// WriteJSON writes data as indented JSON to the writer
func WriteJSON(writer io.Writer, data interface{}) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Write renders the analysis response in the specified format
func (f *OutputFormatterImpl) Write(response *domain.AnalyzeResponse, format domain.OutputFormat, sortBy domain.SortCriteria, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return WriteJSON(writer, response)
	case domain.OutputFormatYAML:
		return f.writeYAML(response, writer)
	case domain.OutputFormatText:
		return f.writeText(response, sortBy, writer)
	case domain.OutputFormatHTML:
		return f.WriteHTML(response, sortBy, writer)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// writeYAML writes the response as YAML
func (f *OutputFormatterImpl) writeYAML(response *domain.AnalyzeResponse, writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(response)
}

// writeText writes the response as a terminal report
func (f *OutputFormatterImpl) writeText(response *domain.AnalyzeResponse, sortBy domain.SortCriteria, writer io.Writer) error {
	header := color.New(color.FgCyan, color.Bold)
	danger := color.New(color.FgRed, color.Bold)

	header.Fprintf(writer, "\n=== polyscan Analysis Report ===\n\n")
	fmt.Fprintf(writer, "Generated: %s\n", response.GeneratedAt)
	fmt.Fprintf(writer, "Duration: %dms\n", response.DurationMs)
	fmt.Fprintf(writer, "Version: %s\n\n", response.Version)

	if response.Summary == nil {
		fmt.Fprintf(writer, "No code files found.\n")
		return nil
	}
	summary := response.Summary

	fmt.Fprintf(writer, "Summary:\n")
	fmt.Fprintf(writer, "  Files analyzed: %s\n", humanize.Comma(int64(summary.TotalFiles)))
	fmt.Fprintf(writer, "  Total lines: %s\n", humanize.Comma(int64(summary.TotalLines)))
	if response.SkippedFiles > 0 {
		fmt.Fprintf(writer, "  Skipped files: %d\n", response.SkippedFiles)
	}
	fmt.Fprintf(writer, "  Debt tags: ")
	danger.Fprintf(writer, "%d\n", summary.TotalTodos)
	fmt.Fprintf(writer, "\n")

	if summary.TotalLines > 0 {
		fmt.Fprintf(writer, "Composition:\n")
		fmt.Fprintf(writer, "  Code: %s (%.1f%%)\n",
			humanize.Comma(int64(summary.LinesCode)), percent(summary.LinesCode, summary.TotalLines))
		fmt.Fprintf(writer, "  Comments: %s (%.1f%%)\n",
			humanize.Comma(int64(summary.LinesComment)), percent(summary.LinesComment, summary.TotalLines))
		fmt.Fprintf(writer, "  Blank: %s (%.1f%%)\n",
			humanize.Comma(int64(summary.LinesBlank)), percent(summary.LinesBlank, summary.TotalLines))
		fmt.Fprintf(writer, "\n")
	}

	fmt.Fprintf(writer, "Language Breakdown:\n")
	t := table.NewWriter()
	t.SetOutputMirror(writer)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Ext", "Files", "Total Lines", "Code", "Comments", "Blank", "Todo"})
	for _, ext := range SortedExtensions(summary, sortBy) {
		agg := summary.Extensions[ext]
		t.AppendRow(table.Row{
			ext,
			agg.FileCount,
			humanize.Comma(int64(agg.TotalLines)),
			humanize.Comma(int64(agg.Code)),
			humanize.Comma(int64(agg.Comment)),
			humanize.Comma(int64(agg.Blank)),
			agg.Todo,
		})
	}
	t.Render()

	if len(response.Warnings) > 0 {
		fmt.Fprintf(writer, "\nWarnings:\n")
		for _, w := range response.Warnings {
			fmt.Fprintf(writer, "  - %s\n", w)
		}
	}

	return nil
}

// SortedExtensions returns the breakdown keys ordered by the sort criteria.
// Ties fall back to extension name so report ordering stays deterministic.
func SortedExtensions(summary *domain.ProjectSummary, sortBy domain.SortCriteria) []string {
	exts := make([]string, 0, len(summary.Extensions))
	for ext := range summary.Extensions {
		exts = append(exts, ext)
	}

	sort.Slice(exts, func(i, j int) bool {
		a, b := summary.Extensions[exts[i]], summary.Extensions[exts[j]]
		switch sortBy {
		case domain.SortByFiles:
			if a.FileCount != b.FileCount {
				return a.FileCount > b.FileCount
			}
		case domain.SortByExtension:
			return exts[i] < exts[j]
		default: // SortByLines
			if a.TotalLines != b.TotalLines {
				return a.TotalLines > b.TotalLines
			}
		}
		return exts[i] < exts[j]
	})

	return exts
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
