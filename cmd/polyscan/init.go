package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/polyscan-dev/polyscan/internal/config"
	"github.com/polyscan-dev/polyscan/internal/constants"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a polyscan configuration file",
		Long: `Generate a documented polyscan configuration file with sensible defaults.

By default, creates .polyscan.toml in the current directory with full
documentation. Use --interactive for a guided setup wizard.

Examples:
  # Create .polyscan.toml in current directory
  polyscan init

  # Custom output path
  polyscan init --config custom.toml

  # Overwrite existing file
  polyscan init --force

  # Generate smaller config with essential options only
  polyscan init --minimal

  # Interactive setup wizard
  polyscan init --interactive
  polyscan init -i`,
		RunE: runInit,
	}

	cmd.Flags().StringP("config", "c", constants.ConfigFileName,
		"Output path for the config file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing config file")
	cmd.Flags().Bool("minimal", false,
		"Generate minimal config with essential options only")
	cmd.Flags().BoolP("interactive", "i", false,
		"Interactive setup wizard")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	force, _ := cmd.Flags().GetBool("force")
	minimal, _ := cmd.Flags().GetBool("minimal")
	interactive, _ := cmd.Flags().GetBool("interactive")

	cfg := config.DefaultConfig()

	if interactive {
		interactivePath, err := runInteractiveSetup(cfg, configPath)
		if err != nil {
			return err
		}
		configPath = interactivePath
	}

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists. Use --force to overwrite", configPath)
		}
	}

	dir := filepath.Dir(configPath)
	if dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", dir)
		}
	}

	content := config.GenerateConfigTemplate(cfg, minimal)

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	displayPath := configPath
	if absPath, err := filepath.Abs(configPath); err == nil {
		displayPath = absPath
	}
	fmt.Printf("Created %s\n", displayPath)
	fmt.Println("\nRun 'polyscan analyze .' to analyze your project.")

	return nil
}

// runInteractiveSetup mutates cfg from wizard answers and returns the
// chosen output path.
func runInteractiveSetup(cfg *config.Config, defaultConfigPath string) (string, error) {
	fmt.Println()
	fmt.Println("polyscan Configuration Setup")
	fmt.Println("============================")
	fmt.Println()

	formats := []struct {
		Label       string
		Description string
		Value       string
	}{
		{"Text (recommended)", "Colored table on stdout", "text"},
		{"JSON", "Machine-readable summary", "json"},
		{"YAML", "Machine-readable summary", "yaml"},
		{"HTML", "Standalone report file", "html"},
	}

	formatTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }} - {{ .Description | faint }}",
		Inactive: "   {{ .Label | white }} - {{ .Description | faint }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}

	formatPrompt := promptui.Select{
		Label:     "Default report format?",
		Items:     formats,
		Templates: formatTemplates,
	}

	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return "", fmt.Errorf("format selection cancelled: %w", err)
	}
	cfg.Output.Format = formats[formatIdx].Value

	fmt.Println()

	gitignorePrompt := promptui.Select{
		Label: "Filter candidates through the root .gitignore?",
		Items: []string{"No", "Yes"},
	}
	_, gitignoreAnswer, err := gitignorePrompt.Run()
	if err != nil {
		return "", fmt.Errorf("gitignore selection cancelled: %w", err)
	}
	cfg.Traversal.RespectGitignore = gitignoreAnswer == "Yes"

	fmt.Println()

	stridePrompt := promptui.Prompt{
		Label:   "Progress update stride (every Nth file)",
		Default: strconv.Itoa(cfg.Analysis.ProgressStride),
		Validate: func(input string) error {
			n, err := strconv.Atoi(input)
			if err != nil || n < 1 {
				return fmt.Errorf("must be a positive integer")
			}
			return nil
		},
	}
	strideAnswer, err := stridePrompt.Run()
	if err != nil {
		return "", fmt.Errorf("stride input cancelled: %w", err)
	}
	if n, err := strconv.Atoi(strideAnswer); err == nil {
		cfg.Analysis.ProgressStride = n
	}

	fmt.Println()

	outputPrompt := promptui.Prompt{
		Label:   "Output file path",
		Default: defaultConfigPath,
	}
	outputPath, err := outputPrompt.Run()
	if err != nil {
		return "", fmt.Errorf("output path input cancelled: %w", err)
	}
	if outputPath == "" {
		outputPath = defaultConfigPath
	}

	fmt.Println()
	fmt.Printf("Creating %s... ", outputPath)

	return outputPath, nil
}
