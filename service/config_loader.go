package service

import (
	"github.com/polyscan-dev/polyscan/domain"
	"github.com/polyscan-dev/polyscan/internal/config"
)

// ConfigurationLoaderImpl implements the ConfigurationLoader interface
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

var _ domain.ConfigurationLoader = (*ConfigurationLoaderImpl)(nil)

// LoadConfig loads configuration from the specified path
func (c *ConfigurationLoaderImpl) LoadConfig(path string) (*domain.AnalyzeRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}
	return c.convertToAnalyzeRequest(cfg), nil
}

// LoadDefaultConfig loads discovered configuration, falling back to the
// built-in defaults when discovery fails
func (c *ConfigurationLoaderImpl) LoadDefaultConfig() *domain.AnalyzeRequest {
	cfg, err := config.LoadConfigWithTarget("", "")
	if err != nil {
		cfg = config.DefaultConfig()
	}
	return c.convertToAnalyzeRequest(cfg)
}

// MergeConfig merges CLI flags over a base configuration
func (c *ConfigurationLoaderImpl) MergeConfig(base *domain.AnalyzeRequest, override *domain.AnalyzeRequest) *domain.AnalyzeRequest {
	merged := *base

	if override.Root != "" {
		merged.Root = override.Root
	}
	if override.OutputFormat != "" {
		merged.OutputFormat = override.OutputFormat
	}
	if override.OutputWriter != nil {
		merged.OutputWriter = override.OutputWriter
	}
	if override.OutputPath != "" {
		merged.OutputPath = override.OutputPath
	}
	if override.NoOpen {
		merged.NoOpen = override.NoOpen
	}
	if override.SortBy != "" {
		merged.SortBy = override.SortBy
	}
	if len(override.ExcludedDirs) > 0 {
		merged.ExcludedDirs = override.ExcludedDirs
	}
	if len(override.Extensions) > 0 {
		merged.Extensions = override.Extensions
	}
	if len(override.SpecialBaseNames) > 0 {
		merged.SpecialBaseNames = override.SpecialBaseNames
	}
	if override.RespectGitignore {
		merged.RespectGitignore = override.RespectGitignore
	}
	if override.MaxFileSize > 0 {
		merged.MaxFileSize = override.MaxFileSize
	}
	if override.ProgressStride > 0 {
		merged.ProgressStride = override.ProgressStride
	}
	if override.Progress != nil {
		merged.Progress = override.Progress
	}
	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}

	return &merged
}

// convertToAnalyzeRequest converts a Config to an AnalyzeRequest
func (c *ConfigurationLoaderImpl) convertToAnalyzeRequest(cfg *config.Config) *domain.AnalyzeRequest {
	return &domain.AnalyzeRequest{
		OutputFormat:     domain.OutputFormat(cfg.Output.Format),
		SortBy:           domain.SortCriteria(cfg.Output.SortBy),
		ExcludedDirs:     cfg.Traversal.ExcludeDirs,
		Extensions:       cfg.Traversal.Extensions,
		SpecialBaseNames: cfg.Traversal.SpecialFiles,
		RespectGitignore: cfg.Traversal.RespectGitignore,
		MaxFileSize:      cfg.Analysis.MaxFileSize,
		ProgressStride:   cfg.Analysis.ProgressStride,
	}
}
