package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/polyscan-dev/polyscan/domain"
)

// ScanningMessage is the status text of the pre-traversal notification.
// It is emitted at 0% because the candidate total is unknown until the
// walk completes.
const ScanningMessage = "Scanning directory structure..."

// AnalyzeUseCase orchestrates the two-pass pipeline: the traversal planner
// runs to completion first, then the classifier consumes the candidate list.
type AnalyzeUseCase struct {
	planner  domain.CandidatePlanner
	analyzer domain.AnalyzerService
}

// NewAnalyzeUseCase creates a new analyze use case
func NewAnalyzeUseCase(planner domain.CandidatePlanner, analyzer domain.AnalyzerService) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		planner:  planner,
		analyzer: analyzer,
	}
}

// Execute runs the pipeline synchronously on the calling goroutine.
// A traversal failure is fatal and returns an error with no partial summary;
// zero candidates is a success whose response carries a nil Summary.
func (uc *AnalyzeUseCase) Execute(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalyzeResponse, error) {
	if req.Root == "" {
		return nil, domain.NewInvalidInputError("no root path specified", nil)
	}

	if req.Progress != nil {
		req.Progress(0, ScanningMessage)
	}

	candidates, err := uc.planner.Plan(req.Root, req)
	if err != nil {
		return nil, domain.NewTraversalError("failed to scan "+req.Root, err)
	}

	return uc.analyzer.Analyze(ctx, req, candidates)
}

// ExecuteAsync runs the pipeline on a background goroutine and returns a
// one-way event channel. The channel carries progress events in
// non-decreasing percentage order followed by exactly one terminal event
// (completed or failed), then closes.
func (uc *AnalyzeUseCase) ExecuteAsync(ctx context.Context, req domain.AnalyzeRequest) <-chan domain.AnalysisEvent {
	events := make(chan domain.AnalysisEvent, 16)

	forward := req.Progress
	req.Progress = func(percentage int, message string) {
		events <- domain.AnalysisEvent{
			Kind:       domain.EventProgress,
			Percentage: percentage,
			Message:    message,
		}
		if forward != nil {
			forward(percentage, message)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := uc.Execute(gctx, req)
		if err != nil {
			events <- domain.AnalysisEvent{Kind: domain.EventFailed, Err: err}
			return nil
		}
		events <- domain.AnalysisEvent{
			Kind:       domain.EventCompleted,
			Percentage: 100,
			Response:   resp,
		}
		return nil
	})
	go func() {
		_ = g.Wait()
		close(events)
	}()

	return events
}
