// Package config defines the polyscan configuration model and its
// viper-backed loading, discovery, and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/polyscan-dev/polyscan/internal/constants"
	"github.com/polyscan-dev/polyscan/internal/syntax"
)

// Config represents the main configuration structure
type Config struct {
	// Traversal holds traversal-planner configuration
	Traversal TraversalConfig `json:"traversal" mapstructure:"traversal" yaml:"traversal"`

	// Analysis holds classifier and progress configuration
	Analysis AnalysisConfig `json:"analysis" mapstructure:"analysis" yaml:"analysis"`

	// Output holds report formatting configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`
}

// TraversalConfig holds configuration for the traversal planner
type TraversalConfig struct {
	// ExcludeDirs are directory names pruned at every depth
	ExcludeDirs []string `json:"exclude_dirs" mapstructure:"exclude_dirs" yaml:"exclude_dirs"`

	// Extensions is the admitted-extension allow-list (lowercased, with dot)
	Extensions []string `json:"extensions" mapstructure:"extensions" yaml:"extensions"`

	// SpecialFiles admits extensionless files by base name
	SpecialFiles []string `json:"special_files" mapstructure:"special_files" yaml:"special_files"`

	// RespectGitignore filters candidates through the root .gitignore
	RespectGitignore bool `json:"respect_gitignore" mapstructure:"respect_gitignore" yaml:"respect_gitignore"`
}

// AnalysisConfig holds configuration for the classification pass
type AnalysisConfig struct {
	// ProgressStride emits a progress event every Nth file; the last file
	// always emits
	ProgressStride int `json:"progress_stride" mapstructure:"progress_stride" yaml:"progress_stride"`

	// MaxFileSize skips files above this many bytes; 0 means no limit
	MaxFileSize int64 `json:"max_file_size" mapstructure:"max_file_size" yaml:"max_file_size"`
}

// OutputConfig holds configuration for report formatting
type OutputConfig struct {
	// Format specifies the report format: text, json, yaml, html
	Format string `json:"format" mapstructure:"format" yaml:"format"`

	// SortBy orders the per-extension breakdown: lines, files, extension
	SortBy string `json:"sort_by" mapstructure:"sort_by" yaml:"sort_by"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Traversal: TraversalConfig{
			ExcludeDirs:  syntax.DefaultExcludedDirs(),
			Extensions:   syntax.DefaultExtensions(),
			SpecialFiles: syntax.DefaultSpecialBaseNames(),
		},
		Analysis: AnalysisConfig{
			ProgressStride: constants.DefaultProgressStride,
		},
		Output: OutputConfig{
			Format: constants.OutputFormatText,
			SortBy: "lines",
		},
	}
}

// LoadConfig loads configuration from file or returns default config
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, "")
}

// LoadConfigWithTarget loads configuration with target path context.
// If no config path is specified, one is discovered near the target.
func LoadConfigWithTarget(configPath string, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfig(targetPath)
	}
	return loadConfigFromFile(configPath)
}

// loadConfigFromFile reads and parses one configuration file
func loadConfigFromFile(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	// A fresh viper instance per load avoids shared global state
	v := viper.New()
	v.SetEnvPrefix(constants.EnvVarPrefix)
	v.AutomaticEnv()
	v.SetConfigFile(configPath)

	config := DefaultConfig()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// configFileCandidates in order of preference
func configFileCandidates() []string {
	return []string{
		"polyscan.yaml",
		"polyscan.yml",
		constants.ConfigFileName,
		".polyscan.yml",
		"polyscan.json",
		".polyscan.json",
	}
}

// searchConfigInDirectory returns the first candidate present in dir
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findDefaultConfig looks for configuration files in common locations:
// the target directory and its parents, the working directory, the XDG
// config directory, and the home directory.
func findDefaultConfig(targetPath string) string {
	candidates := configFileCandidates()

	if targetPath != "" {
		if absPath, err := filepath.Abs(targetPath); err == nil {
			if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
				absPath = filepath.Dir(absPath)
			}
			for dir := absPath; ; dir = filepath.Dir(dir) {
				if config := searchConfigInDirectory(dir, candidates); config != "" {
					return config
				}
				if filepath.Dir(dir) == dir {
					break
				}
			}
		}
	}

	if config := searchConfigInDirectory(".", candidates); config != "" {
		return config
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		if config := searchConfigInDirectory(filepath.Join(xdgConfig, constants.ToolName), candidates); config != "" {
			return config
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		if config := searchConfigInDirectory(filepath.Join(home, ".config", constants.ToolName), candidates); config != "" {
			return config
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.Analysis.ProgressStride < 1 {
		return fmt.Errorf("analysis.progress_stride must be >= 1, got %d", c.Analysis.ProgressStride)
	}
	if c.Analysis.MaxFileSize < 0 {
		return fmt.Errorf("analysis.max_file_size must be >= 0, got %d", c.Analysis.MaxFileSize)
	}
	switch c.Output.Format {
	case constants.OutputFormatText, constants.OutputFormatJSON,
		constants.OutputFormatYAML, constants.OutputFormatHTML:
	default:
		return fmt.Errorf("output.format must be one of text, json, yaml, html, got %q", c.Output.Format)
	}
	switch c.Output.SortBy {
	case "lines", "files", "extension":
	default:
		return fmt.Errorf("output.sort_by must be one of lines, files, extension, got %q", c.Output.SortBy)
	}
	return nil
}
