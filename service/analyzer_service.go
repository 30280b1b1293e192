package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/polyscan-dev/polyscan/domain"
	"github.com/polyscan-dev/polyscan/internal/classifier"
	"github.com/polyscan-dev/polyscan/internal/constants"
	"github.com/polyscan-dev/polyscan/internal/version"
)

// AnalyzerServiceImpl implements the classification and aggregation pass.
// It consumes the planner's candidate list strictly sequentially: progress
// accounting stays exact and the summary under construction has a single
// writer.
type AnalyzerServiceImpl struct{}

// NewAnalyzerService creates a new analyzer service
func NewAnalyzerService() *AnalyzerServiceImpl {
	return &AnalyzerServiceImpl{}
}

var _ domain.AnalyzerService = (*AnalyzerServiceImpl)(nil)

// Analyze classifies every candidate in list order and folds the results
// into a ProjectSummary. Individual file failures are recorded as skips and
// never abort the run. An empty candidate list yields a response with a nil
// Summary, which is the "no files found" sentinel, not an error.
func (s *AnalyzerServiceImpl) Analyze(ctx context.Context, req domain.AnalyzeRequest, candidates []domain.CandidateFile) (*domain.AnalyzeResponse, error) {
	startTime := time.Now()

	stride := req.ProgressStride
	if stride < 1 {
		stride = constants.DefaultProgressStride
	}

	total := len(candidates)
	if total == 0 {
		return s.newResponse(nil, 0, 0, nil, startTime), nil
	}

	summary := domain.NewProjectSummary()
	var skipped int
	var warnings []string

	for i, cand := range candidates {
		select {
		case <-ctx.Done():
			return nil, domain.NewAnalysisError("analysis cancelled", ctx.Err())
		default:
		}

		// 1-based position; the last file always notifies so the
		// terminal percentage of 100 is guaranteed.
		pos := i + 1
		if pos%stride == 0 || pos == total {
			if req.Progress != nil {
				req.Progress(pos*100/total, "Analyzing: "+filepath.Base(cand.Path))
			}
		}

		result := s.classifyFile(cand, req.MaxFileSize)
		if result.Skipped() {
			skipped++
			if result.Skip == domain.SkipReadError {
				warnings = append(warnings, fmt.Sprintf("skipped %s: %v", cand.Path, result.Err))
			}
			continue
		}
		summary.AddFile(cand, result.Stats)
	}

	return s.newResponse(summary, total, skipped, warnings, startTime), nil
}

// classifyFile reads and classifies one candidate. Every failure is scoped
// to this file and surfaces as a FileResult skip, keeping the
// skip-vs-count decision an explicit branch in Analyze.
func (s *AnalyzerServiceImpl) classifyFile(cand domain.CandidateFile, maxFileSize int64) domain.FileResult {
	result := domain.FileResult{File: cand}

	content, err := os.ReadFile(cand.Path)
	if err != nil {
		result.Skip = domain.SkipReadError
		result.Err = err
		return result
	}
	if maxFileSize > 0 && int64(len(content)) > maxFileSize {
		result.Skip = domain.SkipTooLarge
		return result
	}
	if classifier.IsBinary(content) {
		result.Skip = domain.SkipBinary
		return result
	}

	text := classifier.DecodeText(content)
	if text == "" {
		result.Skip = domain.SkipEmpty
		return result
	}

	result.Stats = classifier.Classify(text, cand.Ext)
	return result
}

func (s *AnalyzerServiceImpl) newResponse(summary *domain.ProjectSummary, total, skipped int, warnings []string, startTime time.Time) *domain.AnalyzeResponse {
	return &domain.AnalyzeResponse{
		Summary:        summary,
		CandidateCount: total,
		SkippedFiles:   skipped,
		Warnings:       warnings,
		GeneratedAt:    time.Now().Format(time.RFC3339),
		DurationMs:     time.Since(startTime).Milliseconds(),
		Version:        version.Version,
	}
}
