package domain

// CheckResult represents the result of a quality-gate check
type CheckResult struct {
	Passed      bool             `json:"passed"`
	ExitCode    int              `json:"exit_code"`
	Violations  []CheckViolation `json:"violations"`
	Summary     CheckSummary     `json:"summary"`
	Duration    int64            `json:"duration_ms"`
	GeneratedAt string           `json:"generated_at"`
	Version     string           `json:"version"`
}

// CheckViolation represents a single threshold violation
type CheckViolation struct {
	Rule      string `json:"rule"`                // max-todos, min-comment-ratio, no-empty-result
	Severity  string `json:"severity"`            // error, warning
	Message   string `json:"message"`             // Human-readable description
	Actual    string `json:"actual"`              // Actual value
	Threshold string `json:"threshold,omitempty"` // Configured threshold
}

// CheckSummary provides aggregate statistics for the gate run
type CheckSummary struct {
	FilesAnalyzed       int     `json:"files_analyzed"`
	TotalViolations     int     `json:"total_violations"`
	TodosChecked        bool    `json:"todos_checked"`
	CommentRatioChecked bool    `json:"comment_ratio_checked"`
	TotalTodos          int     `json:"total_todos"`
	CommentRatio        float64 `json:"comment_ratio"`
}
