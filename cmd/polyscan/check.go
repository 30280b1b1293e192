package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/polyscan-dev/polyscan/app"
	"github.com/polyscan-dev/polyscan/domain"
	"github.com/polyscan-dev/polyscan/internal/version"
	"github.com/polyscan-dev/polyscan/service"
)

// CheckExitError is a custom error type for check command exit codes
type CheckExitError struct {
	Code    int
	Message string
}

func (e *CheckExitError) Error() string {
	return e.Message
}

var (
	checkMaxTodos        int
	checkMinCommentRatio float64
	checkFailOnEmpty     bool
	checkJSON            bool
	checkConfigPath      string
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Fast debt check for CI/CD pipelines",
		Long: `Run the analyzer and gate the result against configurable thresholds.

Exit codes:
  0 - All checks pass
  1 - Threshold(s) violated
  2 - Analysis error (root not accessible, bad configuration, etc.)

Examples:
  # Fail when any TODO/FIXME/HACK/BUG/XXX tag remains
  polyscan check --max-todos 0 src/

  # Require at least 10% comment lines
  polyscan check --min-comment-ratio 0.10 src/

  # JSON output for machine parsing
  polyscan check --json src/`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runCheck,
		SilenceUsage:  true, // Don't print usage on errors (we handle our own output)
		SilenceErrors: true, // Don't print error messages (we handle our own output)
	}

	cmd.Flags().IntVar(&checkMaxTodos, "max-todos", -1,
		"Maximum allowed debt-tag lines (-1 = unlimited)")
	cmd.Flags().Float64Var(&checkMinCommentRatio, "min-comment-ratio", 0,
		"Minimum comment/total line ratio (0 = disabled)")
	cmd.Flags().BoolVar(&checkFailOnEmpty, "fail-on-empty", false,
		"Fail when the tree contains no admitted files")
	cmd.Flags().BoolVar(&checkJSON, "json", false,
		"Output results as JSON")
	cmd.Flags().StringVarP(&checkConfigPath, "config", "c", "",
		"Path to config file")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	startTime := time.Now()

	loader := service.NewConfigurationLoader()
	var req *domain.AnalyzeRequest
	if checkConfigPath != "" {
		loaded, err := loader.LoadConfig(checkConfigPath)
		if err != nil {
			return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to load configuration: %v", err)}
		}
		req = loaded
	} else {
		req = loader.LoadDefaultConfig()
	}
	req.Root = root

	usecase := app.NewAnalyzeUseCase(app.NewFileHelper(), service.NewAnalyzerService())
	resp, err := usecase.Execute(cmd.Context(), *req)
	if err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}

	result := evaluateCheck(resp)
	result.Duration = time.Since(startTime).Milliseconds()
	result.GeneratedAt = time.Now().Format(time.RFC3339)
	result.Version = version.Version

	if checkJSON {
		if err := service.WriteJSON(os.Stdout, result); err != nil {
			return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to write result: %v", err)}
		}
	} else {
		writeCheckText(result)
	}

	if !result.Passed {
		return &CheckExitError{Code: result.ExitCode}
	}
	return nil
}

// evaluateCheck applies the gate thresholds to one analysis response
func evaluateCheck(resp *domain.AnalyzeResponse) *domain.CheckResult {
	result := &domain.CheckResult{Passed: true}

	var totalTodos, totalLines, commentLines, filesAnalyzed int
	if resp.Summary != nil {
		totalTodos = resp.Summary.TotalTodos
		totalLines = resp.Summary.TotalLines
		commentLines = resp.Summary.LinesComment
		filesAnalyzed = resp.Summary.TotalFiles
	}

	commentRatio := 0.0
	if totalLines > 0 {
		commentRatio = float64(commentLines) / float64(totalLines)
	}

	result.Summary = domain.CheckSummary{
		FilesAnalyzed: filesAnalyzed,
		TotalTodos:    totalTodos,
		CommentRatio:  commentRatio,
	}

	if checkFailOnEmpty && resp.Summary == nil {
		result.Violations = append(result.Violations, domain.CheckViolation{
			Rule:     "no-empty-result",
			Severity: "error",
			Message:  "no admitted files found in the tree",
			Actual:   "0 files",
		})
	}

	if checkMaxTodos >= 0 {
		result.Summary.TodosChecked = true
		if totalTodos > checkMaxTodos {
			result.Violations = append(result.Violations, domain.CheckViolation{
				Rule:      "max-todos",
				Severity:  "error",
				Message:   fmt.Sprintf("%d debt-tag lines exceed the allowed maximum", totalTodos),
				Actual:    strconv.Itoa(totalTodos),
				Threshold: strconv.Itoa(checkMaxTodos),
			})
		}
	}

	if checkMinCommentRatio > 0 {
		result.Summary.CommentRatioChecked = true
		if totalLines > 0 && commentRatio < checkMinCommentRatio {
			result.Violations = append(result.Violations, domain.CheckViolation{
				Rule:      "min-comment-ratio",
				Severity:  "warning",
				Message:   "comment ratio below the required minimum",
				Actual:    fmt.Sprintf("%.3f", commentRatio),
				Threshold: fmt.Sprintf("%.3f", checkMinCommentRatio),
			})
		}
	}

	result.Summary.TotalViolations = len(result.Violations)
	if len(result.Violations) > 0 {
		result.Passed = false
		result.ExitCode = 1
	}

	return result
}

func writeCheckText(result *domain.CheckResult) {
	if result.Passed {
		fmt.Printf("OK: %d files analyzed, %d debt tags, comment ratio %.3f\n",
			result.Summary.FilesAnalyzed, result.Summary.TotalTodos, result.Summary.CommentRatio)
		return
	}

	fmt.Printf("FAIL: %d violation(s)\n", result.Summary.TotalViolations)
	for _, v := range result.Violations {
		if v.Threshold != "" {
			fmt.Printf("  [%s] %s: %s (actual %s, threshold %s)\n",
				v.Severity, v.Rule, v.Message, v.Actual, v.Threshold)
		} else {
			fmt.Printf("  [%s] %s: %s\n", v.Severity, v.Rule, v.Message)
		}
	}
}
