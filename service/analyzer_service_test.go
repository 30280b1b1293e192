package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/polyscan-dev/polyscan/domain"
	"github.com/polyscan-dev/polyscan/internal/testutil"
)

func plannedCandidates(t *testing.T, root string, files map[string]string) []domain.CandidateFile {
	t.Helper()
	testutil.WriteTree(t, root, files)

	var candidates []domain.CandidateFile
	for rel := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		ext := strings.ToLower(filepath.Ext(path))
		if ext == "" {
			ext = domain.NoExtension
		}
		candidates = append(candidates, domain.CandidateFile{Path: path, Ext: ext})
	}
	return candidates
}

func TestAnalyzeEmptyCandidateList(t *testing.T) {
	svc := NewAnalyzerService()

	resp, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{}, nil)
	testutil.AssertNoError(t, err)

	if resp.Summary != nil {
		t.Error("zero candidates must yield a nil summary")
	}
	testutil.AssertEqual(t, 0, resp.CandidateCount)
	testutil.AssertEqual(t, 0, resp.SkippedFiles)
}

func TestAnalyzeClassifiesAndAggregates(t *testing.T) {
	root := t.TempDir()
	candidates := plannedCandidates(t, root, map[string]string{
		"a.py": "x = 1\n# comment\n\n# TODO fix\n",
		"b.py": "y = 2\n",
		"c.go": "package c\n// doc\n",
	})

	svc := NewAnalyzerService()
	resp, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{}, candidates)
	testutil.AssertNoError(t, err)

	summary := resp.Summary
	if summary == nil {
		t.Fatal("expected a summary")
	}
	testutil.AssertEqual(t, 3, summary.TotalFiles)
	testutil.AssertEqual(t, 7, summary.TotalLines)
	testutil.AssertEqual(t, 4, summary.LinesCode)
	testutil.AssertEqual(t, 2, summary.LinesComment)
	testutil.AssertEqual(t, 1, summary.LinesBlank)
	testutil.AssertEqual(t, 1, summary.TotalTodos)

	py := summary.Extensions[".py"]
	if py == nil || py.FileCount != 2 || py.Todo != 1 {
		t.Errorf("unexpected .py aggregate: %+v", py)
	}
	goAgg := summary.Extensions[".go"]
	if goAgg == nil || goAgg.FileCount != 1 || goAgg.Comment != 1 {
		t.Errorf("unexpected .go aggregate: %+v", goAgg)
	}
}

func TestAnalyzeSkipsBinary(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "blob.py")
	if err := os.WriteFile(path, []byte{'x', 0x00, 'y'}, 0o644); err != nil {
		t.Fatal(err)
	}

	svc := NewAnalyzerService()
	resp, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{},
		[]domain.CandidateFile{{Path: path, Ext: ".py"}})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, 1, resp.SkippedFiles)
	if resp.Summary.TotalFiles != 0 {
		t.Errorf("binary file must not be counted, got %d files", resp.Summary.TotalFiles)
	}
}

func TestAnalyzeSkipsEmpty(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "empty.py")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	svc := NewAnalyzerService()
	resp, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{},
		[]domain.CandidateFile{{Path: path, Ext: ".py"}})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, 1, resp.SkippedFiles)
	testutil.AssertEqual(t, 0, resp.Summary.TotalFiles)
}

func TestAnalyzeSkipsOversized(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "big.py")
	if err := os.WriteFile(path, []byte(strings.Repeat("x = 1\n", 100)), 0o644); err != nil {
		t.Fatal(err)
	}

	svc := NewAnalyzerService()
	resp, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{MaxFileSize: 10},
		[]domain.CandidateFile{{Path: path, Ext: ".py"}})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, 1, resp.SkippedFiles)
	testutil.AssertEqual(t, 0, resp.Summary.TotalFiles)
}

func TestAnalyzeReadErrorProducesWarning(t *testing.T) {
	root := t.TempDir()
	missing := filepath.Join(root, "missing.py")
	good := filepath.Join(root, "good.py")
	if err := os.WriteFile(good, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	svc := NewAnalyzerService()
	resp, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{},
		[]domain.CandidateFile{
			{Path: missing, Ext: ".py"},
			{Path: good, Ext: ".py"},
		})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, 1, resp.SkippedFiles)
	testutil.AssertEqual(t, 1, resp.Summary.TotalFiles)
	if len(resp.Warnings) != 1 {
		t.Fatalf("expected one warning, got %v", resp.Warnings)
	}
	if !strings.Contains(resp.Warnings[0], "missing.py") {
		t.Errorf("warning should name the file: %q", resp.Warnings[0])
	}
}

func TestAnalyzeProgressThrottling(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{}
	for i := 0; i < 12; i++ {
		files[filepath.Join("f", string(rune('a'+i))+".py")] = "x = 1\n"
	}
	candidates := plannedCandidates(t, root, files)

	var percentages []int
	req := domain.AnalyzeRequest{
		ProgressStride: 5,
		Progress: func(percentage int, message string) {
			percentages = append(percentages, percentage)
		},
	}

	svc := NewAnalyzerService()
	_, err := svc.Analyze(context.Background(), req, candidates)
	testutil.AssertNoError(t, err)

	// 12 files, stride 5: files 5, 10, and the final 12 notify
	testutil.AssertEqual(t, 3, len(percentages))
	for i := 1; i < len(percentages); i++ {
		if percentages[i] < percentages[i-1] {
			t.Errorf("progress went backwards: %v", percentages)
		}
	}
	testutil.AssertEqual(t, 100, percentages[len(percentages)-1])
}

func TestAnalyzeLastFileAlwaysNotifies(t *testing.T) {
	root := t.TempDir()
	candidates := plannedCandidates(t, root, map[string]string{
		"only.py": "x = 1\n",
	})

	var percentages []int
	req := domain.AnalyzeRequest{
		ProgressStride: 5,
		Progress: func(percentage int, message string) {
			percentages = append(percentages, percentage)
		},
	}

	svc := NewAnalyzerService()
	_, err := svc.Analyze(context.Background(), req, candidates)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, 1, len(percentages))
	testutil.AssertEqual(t, 100, percentages[0])
}

func TestAnalyzeCancellation(t *testing.T) {
	root := t.TempDir()
	candidates := plannedCandidates(t, root, map[string]string{
		"a.py": "x\n",
		"b.py": "x\n",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewAnalyzerService()
	_, err := svc.Analyze(ctx, domain.AnalyzeRequest{}, candidates)
	testutil.AssertError(t, err)
}

func TestAnalyzeResponseMetadata(t *testing.T) {
	root := t.TempDir()
	candidates := plannedCandidates(t, root, map[string]string{
		"a.py": "x = 1\n",
	})

	svc := NewAnalyzerService()
	resp, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{}, candidates)
	testutil.AssertNoError(t, err)

	if resp.GeneratedAt == "" {
		t.Error("GeneratedAt should be set")
	}
	if resp.Version == "" {
		t.Error("Version should be set")
	}
	testutil.AssertEqual(t, 1, resp.CandidateCount)
}
