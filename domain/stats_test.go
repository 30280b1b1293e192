package domain

import "testing"

func TestLineStatsTotalLines(t *testing.T) {
	tests := []struct {
		name     string
		stats    LineStats
		expected int
	}{
		{"zero value", LineStats{}, 0},
		{"code only", LineStats{Code: 10}, 10},
		{"mixed", LineStats{Code: 5, Comment: 3, Blank: 2}, 10},
		{"todo does not contribute", LineStats{Code: 1, Todo: 7}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.TotalLines(); got != tt.expected {
				t.Errorf("TotalLines() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestFileResultSkipped(t *testing.T) {
	tests := []struct {
		name    string
		skip    SkipReason
		skipped bool
	}{
		{"classified", SkipNone, false},
		{"empty", SkipEmpty, true},
		{"binary", SkipBinary, true},
		{"too large", SkipTooLarge, true},
		{"read error", SkipReadError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FileResult{Skip: tt.skip}
			if r.Skipped() != tt.skipped {
				t.Errorf("Skipped() = %v, want %v", r.Skipped(), tt.skipped)
			}
		})
	}
}

func TestExtensionAggregateAdd(t *testing.T) {
	var agg ExtensionAggregate
	agg.Add(LineStats{Code: 3, Comment: 2, Blank: 1, Todo: 1})
	agg.Add(LineStats{Code: 7, Blank: 2})

	if agg.FileCount != 2 {
		t.Errorf("FileCount = %d, want 2", agg.FileCount)
	}
	if agg.TotalLines != 15 {
		t.Errorf("TotalLines = %d, want 15", agg.TotalLines)
	}
	if agg.Code != 10 || agg.Comment != 2 || agg.Blank != 3 {
		t.Errorf("got code=%d comment=%d blank=%d, want 10/2/3", agg.Code, agg.Comment, agg.Blank)
	}
	if agg.Todo != 1 {
		t.Errorf("Todo = %d, want 1", agg.Todo)
	}
}

func TestProjectSummaryAddFile(t *testing.T) {
	summary := NewProjectSummary()

	summary.AddFile(CandidateFile{Path: "/p/a.py", Ext: ".py"}, LineStats{Code: 4, Comment: 1, Blank: 1, Todo: 1})
	summary.AddFile(CandidateFile{Path: "/p/b.py", Ext: ".py"}, LineStats{Code: 2})
	summary.AddFile(CandidateFile{Path: "/p/Dockerfile", Ext: NoExtension}, LineStats{Code: 3, Comment: 2})

	if summary.TotalFiles != 3 {
		t.Errorf("TotalFiles = %d, want 3", summary.TotalFiles)
	}
	if summary.TotalLines != 13 {
		t.Errorf("TotalLines = %d, want 13", summary.TotalLines)
	}
	if summary.TotalLines != summary.LinesCode+summary.LinesComment+summary.LinesBlank {
		t.Error("TotalLines should equal code + comment + blank")
	}
	if summary.TotalTodos != 1 {
		t.Errorf("TotalTodos = %d, want 1", summary.TotalTodos)
	}

	if len(summary.Extensions) != 2 {
		t.Fatalf("Extensions has %d entries, want 2", len(summary.Extensions))
	}
	py := summary.Extensions[".py"]
	if py == nil || py.FileCount != 2 {
		t.Errorf("expected 2 .py files, got %+v", py)
	}
	noExt := summary.Extensions[NoExtension]
	if noExt == nil || noExt.FileCount != 1 || noExt.TotalLines != 5 {
		t.Errorf("expected 1 extensionless file with 5 lines, got %+v", noExt)
	}

	fileSum := 0
	for _, agg := range summary.Extensions {
		fileSum += agg.FileCount
	}
	if fileSum != summary.TotalFiles {
		t.Errorf("extension file counts sum to %d, want %d", fileSum, summary.TotalFiles)
	}
}
