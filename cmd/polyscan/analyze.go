package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/polyscan-dev/polyscan/app"
	"github.com/polyscan-dev/polyscan/domain"
	"github.com/polyscan-dev/polyscan/internal/constants"
	"github.com/polyscan-dev/polyscan/internal/logging"
	"github.com/polyscan-dev/polyscan/service"
)

var (
	outputFormat     string
	jsonOutput       bool
	htmlOutput       bool
	noOpenBrowser    bool
	outputPath       string
	sortBy           string
	configPath       string
	progressStride   int
	respectGitignore bool
	maxFileSize      int64
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Analyze a project directory",
		Long: `Analyze a project directory: classify every line of each admitted source
file as code, comment, or blank, count technical-debt tags, and report
per-extension and project-wide statistics.

Examples:
  polyscan analyze .
  polyscan analyze --format json src/
  polyscan analyze --html --output report.html src/
  polyscan analyze --sort files --respect-gitignore .`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text",
		"Output format: text, json, yaml, html")
	cmd.Flags().BoolVar(&jsonOutput, "json", false,
		"Output results as JSON (shorthand for --format json)")
	cmd.Flags().BoolVar(&htmlOutput, "html", false,
		"Output results as HTML (shorthand for --format html)")
	cmd.Flags().BoolVar(&noOpenBrowser, "no-open", false,
		"Don't auto-open HTML report in browser")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Output file path (default: polyscan-report.html for HTML)")
	cmd.Flags().StringVar(&sortBy, "sort", "",
		"Breakdown ordering: lines, files, extension")
	cmd.Flags().StringVarP(&configPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().IntVar(&progressStride, "progress-stride", 0,
		"Emit a progress update every Nth file (default 5)")
	cmd.Flags().BoolVar(&respectGitignore, "respect-gitignore", false,
		"Filter candidates through the root .gitignore")
	cmd.Flags().Int64Var(&maxFileSize, "max-file-size", 0,
		"Skip files above this many bytes (0 = no limit)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	req, err := buildAnalyzeRequest(cmd, root)
	if err != nil {
		return err
	}
	format := req.OutputFormat

	// Progress bars only make sense for reports that go to a file or a
	// human; machine-readable stdout output stays clean.
	interactive := format == domain.OutputFormatText || format == domain.OutputFormatHTML
	pm := service.NewProgressManager(interactive)
	defer pm.Close()
	task := pm.StartTask("Analyzing", 100)

	usecase := app.NewAnalyzeUseCase(app.NewFileHelper(), service.NewAnalyzerService())

	var resp *domain.AnalyzeResponse
	var runErr error
	for event := range usecase.ExecuteAsync(cmd.Context(), *req) {
		switch event.Kind {
		case domain.EventProgress:
			task.Set(event.Percentage)
			task.Describe(event.Message)
		case domain.EventCompleted:
			resp = event.Response
			task.Set(100)
		case domain.EventFailed:
			runErr = event.Err
		}
	}
	task.Complete()

	if runErr != nil {
		return runErr
	}

	logging.Logger().Debug().
		Int("candidates", resp.CandidateCount).
		Int("skipped", resp.SkippedFiles).
		Int64("duration_ms", resp.DurationMs).
		Msg("analysis finished")

	formatter := service.NewOutputFormatter()

	if format == domain.OutputFormatHTML {
		htmlPath := req.OutputPath
		if htmlPath == "" {
			htmlPath = constants.DefaultHTMLReportName
		}

		file, err := os.Create(htmlPath)
		if err != nil {
			return domain.NewOutputError("failed to create HTML file", err)
		}
		defer file.Close()

		if err := formatter.Write(resp, format, req.SortBy, file); err != nil {
			return err
		}

		absPath, _ := filepath.Abs(htmlPath)
		fmt.Printf("HTML report saved to: %s\n", absPath)

		if !req.NoOpen && !service.IsSSH() {
			if err := service.OpenBrowser("file://" + absPath); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Could not open browser: %v\n", err)
			}
		}

		return nil
	}

	return formatter.Write(resp, format, req.SortBy, os.Stdout)
}

// buildAnalyzeRequest layers CLI flags over discovered configuration
func buildAnalyzeRequest(cmd *cobra.Command, root string) (*domain.AnalyzeRequest, error) {
	loader := service.NewConfigurationLoader()

	var base *domain.AnalyzeRequest
	if configPath != "" {
		loaded, err := loader.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		base = loaded
	} else {
		base = loader.LoadDefaultConfig()
	}

	override := &domain.AnalyzeRequest{
		Root:             root,
		OutputPath:       outputPath,
		NoOpen:           noOpenBrowser,
		SortBy:           domain.SortCriteria(sortBy),
		RespectGitignore: respectGitignore,
		MaxFileSize:      maxFileSize,
		ProgressStride:   progressStride,
		ConfigPath:       configPath,
	}
	switch {
	case jsonOutput:
		override.OutputFormat = domain.OutputFormatJSON
	case htmlOutput:
		override.OutputFormat = domain.OutputFormatHTML
	case cmd.Flags().Changed("format"):
		override.OutputFormat = domain.OutputFormat(outputFormat)
	}

	req := loader.MergeConfig(base, override)

	switch req.OutputFormat {
	case domain.OutputFormatText, domain.OutputFormatJSON,
		domain.OutputFormatYAML, domain.OutputFormatHTML:
	default:
		return nil, domain.NewInvalidInputError(
			fmt.Sprintf("unsupported output format: %s", req.OutputFormat), nil)
	}

	return req, nil
}
