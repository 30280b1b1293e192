package domain

import (
	"context"
	"io"
)

// OutputFormat represents the supported report formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatHTML OutputFormat = "html"
)

// SortCriteria represents the ordering of the per-extension breakdown
type SortCriteria string

const (
	SortByLines     SortCriteria = "lines"
	SortByFiles     SortCriteria = "files"
	SortByExtension SortCriteria = "extension"
)

// AnalyzeRequest represents a request to analyze one project tree
type AnalyzeRequest struct {
	// Root is the project directory to analyze
	Root string

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer
	OutputPath   string // Path to save output file (for HTML format)
	NoOpen       bool   // Don't auto-open HTML report in browser
	SortBy       SortCriteria

	// Traversal policy. Zero values mean the built-in defaults.
	ExcludedDirs     []string
	Extensions       []string
	SpecialBaseNames []string
	RespectGitignore bool

	// MaxFileSize skips files above this many bytes; 0 means no limit
	MaxFileSize int64

	// ProgressStride emits a progress event every Nth file (min 1)
	ProgressStride int

	// Progress receives throttled notifications; nil disables them
	Progress ProgressFunc

	// Configuration
	ConfigPath string
}

// AnalyzeResponse represents the complete result of one run
type AnalyzeResponse struct {
	// Summary is nil when the traversal found zero candidates
	Summary *ProjectSummary `json:"summary" yaml:"summary"`

	// CandidateCount is the planner's total, including skipped files
	CandidateCount int `json:"candidate_count" yaml:"candidate_count"`

	// SkippedFiles counts candidates excluded as empty, binary, oversized,
	// or unreadable
	SkippedFiles int `json:"skipped_files" yaml:"skipped_files"`

	// Warnings collects non-fatal per-file notes
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// Metadata
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	DurationMs  int64  `json:"duration_ms" yaml:"duration_ms"`
	Version     string `json:"version" yaml:"version"`
}

// CandidatePlanner defines the traversal pass: walk the tree, prune excluded
// directories, and admit files by extension or special-cased base name.
type CandidatePlanner interface {
	// Plan produces the ordered candidate list for a root directory.
	// A walk failure is fatal; zero candidates is not.
	Plan(root string, req AnalyzeRequest) ([]CandidateFile, error)
}

// AnalyzerService defines the classification and aggregation pass
type AnalyzerService interface {
	// Analyze classifies the candidates in order and builds the summary,
	// emitting throttled progress and tolerating per-file failures
	Analyze(ctx context.Context, req AnalyzeRequest, candidates []CandidateFile) (*AnalyzeResponse, error)
}

// OutputFormatter defines the interface for rendering analysis results
type OutputFormatter interface {
	// Write renders the response in the given format to the writer
	Write(response *AnalyzeResponse, format OutputFormat, sortBy SortCriteria, writer io.Writer) error
}

// ConfigurationLoader defines the interface for loading configuration
type ConfigurationLoader interface {
	// LoadConfig loads configuration from the specified path
	LoadConfig(path string) (*AnalyzeRequest, error)

	// LoadDefaultConfig loads configuration from discovered files,
	// falling back to built-in defaults
	LoadDefaultConfig() *AnalyzeRequest

	// MergeConfig merges CLI flags over a base configuration
	MergeConfig(base *AnalyzeRequest, override *AnalyzeRequest) *AnalyzeRequest
}
