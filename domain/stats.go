package domain

// NoExtension is the sentinel extension key for admitted files that carry no
// extension (e.g. a Dockerfile matched by base name).
const NoExtension = "no ext"

// CandidateFile is a filesystem entry admitted for content analysis.
// Immutable once produced by the traversal planner.
type CandidateFile struct {
	// Path is the absolute path of the file
	Path string `json:"path" yaml:"path"`

	// Ext is the lowercased extension including the leading dot,
	// or NoExtension for extensionless special-cased files
	Ext string `json:"ext" yaml:"ext"`
}

// LineStats is the per-file classification tally. Created fresh per file and
// never mutated after the file has been fully read.
type LineStats struct {
	Code    int `json:"code" yaml:"code"`
	Comment int `json:"comment" yaml:"comment"`
	Blank   int `json:"blank" yaml:"blank"`
	Todo    int `json:"todo" yaml:"todo"`
}

// TotalLines returns the number of classified lines.
// Todo is an orthogonal marker count and does not contribute.
func (s LineStats) TotalLines() int {
	return s.Code + s.Comment + s.Blank
}

// SkipReason explains why a candidate file contributed nothing to the summary.
type SkipReason string

const (
	// SkipNone marks a file that was classified normally
	SkipNone SkipReason = ""

	// SkipEmpty marks a file whose content was empty after decoding
	SkipEmpty SkipReason = "empty"

	// SkipBinary marks a file whose content contained a NUL byte
	SkipBinary SkipReason = "binary"

	// SkipTooLarge marks a file above the configured size limit
	SkipTooLarge SkipReason = "too_large"

	// SkipReadError marks a file that could not be opened or read
	SkipReadError SkipReason = "read_error"
)

// FileResult is the outcome of classifying one candidate: either a stats
// tally, or a skip reason. The aggregation step branches on Skipped() rather
// than on suppressed errors, so the skip-vs-count decision stays testable.
type FileResult struct {
	File  CandidateFile
	Stats LineStats
	Skip  SkipReason

	// Err holds the underlying failure for SkipReadError results.
	// It never aborts a run; it exists for diagnostics only.
	Err error
}

// Skipped reports whether the file contributed nothing to any aggregate.
func (r FileResult) Skipped() bool {
	return r.Skip != SkipNone
}

// ExtensionAggregate accumulates line statistics for one extension.
// Created lazily on the first file of that extension, mutated additively,
// and alive for the duration of one analysis run.
type ExtensionAggregate struct {
	FileCount  int `json:"file_count" yaml:"file_count"`
	TotalLines int `json:"total_lines" yaml:"total_lines"`
	Code       int `json:"code" yaml:"code"`
	Comment    int `json:"comment" yaml:"comment"`
	Blank      int `json:"blank" yaml:"blank"`
	Todo       int `json:"todo" yaml:"todo"`
}

// Add folds one file's stats into the aggregate.
func (a *ExtensionAggregate) Add(s LineStats) {
	a.FileCount++
	a.TotalLines += s.TotalLines()
	a.Code += s.Code
	a.Comment += s.Comment
	a.Blank += s.Blank
	a.Todo += s.Todo
}

// ProjectSummary is the terminal artifact of a run. Owned exclusively by the
// analysis goroutine while under construction, handed to the consumer fully
// built, immutable afterwards.
//
// Invariants: TotalLines == LinesCode + LinesComment + LinesBlank, the same
// per extension entry, and the sum of extension FileCounts equals TotalFiles.
type ProjectSummary struct {
	TotalFiles   int `json:"total_files" yaml:"total_files"`
	TotalLines   int `json:"total_lines" yaml:"total_lines"`
	LinesCode    int `json:"lines_code" yaml:"lines_code"`
	LinesComment int `json:"lines_comment" yaml:"lines_comment"`
	LinesBlank   int `json:"lines_blank" yaml:"lines_blank"`
	TotalTodos   int `json:"total_todos" yaml:"total_todos"`

	// Extensions maps extension keys to their aggregates
	Extensions map[string]*ExtensionAggregate `json:"extensions" yaml:"extensions"`
}

// NewProjectSummary creates an empty summary ready for aggregation.
func NewProjectSummary() *ProjectSummary {
	return &ProjectSummary{
		Extensions: make(map[string]*ExtensionAggregate),
	}
}

// AddFile folds one classified file into the project totals and into the
// aggregate for its extension, creating the aggregate on first sight.
func (p *ProjectSummary) AddFile(file CandidateFile, s LineStats) {
	p.TotalFiles++
	p.TotalLines += s.TotalLines()
	p.LinesCode += s.Code
	p.LinesComment += s.Comment
	p.LinesBlank += s.Blank
	p.TotalTodos += s.Todo

	agg, ok := p.Extensions[file.Ext]
	if !ok {
		agg = &ExtensionAggregate{}
		p.Extensions[file.Ext] = agg
	}
	agg.Add(s)
}
