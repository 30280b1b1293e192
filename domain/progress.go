package domain

// ProgressFunc receives throttled progress notifications from the analysis
// run: a percentage in [0, 100] and a short status message. Implementations
// must not block; the run is strictly sequential and a slow sink stalls it.
type ProgressFunc func(percentage int, message string)

// EventKind discriminates analysis events on the result channel.
type EventKind string

const (
	// EventProgress carries an intermediate percentage and status message
	EventProgress EventKind = "progress"

	// EventCompleted carries the final response; emitted exactly once
	EventCompleted EventKind = "completed"

	// EventFailed carries a fatal run-level error; emitted instead of
	// EventCompleted, never alongside it
	EventFailed EventKind = "failed"
)

// AnalysisEvent is the one-way notification sent from the analysis goroutine
// to its consumer. A run emits zero or more EventProgress events in
// non-decreasing percentage order, then exactly one terminal event.
type AnalysisEvent struct {
	Kind       EventKind
	Percentage int
	Message    string

	// Response is set on EventCompleted
	Response *AnalyzeResponse

	// Err is set on EventFailed
	Err error
}

// ProgressManager abstracts interactive progress display for the CLI
type ProgressManager interface {
	// StartTask creates a new progress task with a description and total count
	StartTask(description string, total int) TaskProgress

	// IsInteractive returns true if progress output is being rendered
	IsInteractive() bool

	// Close cleans up all tasks
	Close()
}

// TaskProgress tracks progress of a single task
type TaskProgress interface {
	// Set moves the task to an absolute position
	Set(n int)

	// Describe updates the current item description
	Describe(description string)

	// Complete marks the task as finished
	Complete()
}
