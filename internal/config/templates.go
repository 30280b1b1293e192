package config

import (
	"fmt"
	"strings"
)

// GenerateConfigTemplate renders a documented TOML config file seeded from
// cfg. Used by the init command.
func GenerateConfigTemplate(cfg *Config, minimal bool) string {
	var sb strings.Builder

	sb.WriteString("# polyscan configuration\n")
	sb.WriteString("# Values shown are the defaults; delete anything you don't override.\n\n")

	sb.WriteString("[traversal]\n")
	if !minimal {
		sb.WriteString("# Directory names pruned at every depth before descent.\n")
	}
	sb.WriteString(fmt.Sprintf("exclude_dirs = %s\n", tomlStringArray(cfg.Traversal.ExcludeDirs)))
	if !minimal {
		sb.WriteString("\n# Admitted file extensions (lowercased, with leading dot).\n")
		sb.WriteString(fmt.Sprintf("extensions = %s\n", tomlStringArray(cfg.Traversal.Extensions)))
		sb.WriteString("\n# Extensionless files admitted by base name.\n")
		sb.WriteString(fmt.Sprintf("special_files = %s\n", tomlStringArray(cfg.Traversal.SpecialFiles)))
	}
	if !minimal {
		sb.WriteString("\n# Filter candidates through the root .gitignore.\n")
	}
	sb.WriteString(fmt.Sprintf("respect_gitignore = %t\n\n", cfg.Traversal.RespectGitignore))

	sb.WriteString("[analysis]\n")
	if !minimal {
		sb.WriteString("# Emit a progress event every Nth file (the last file always emits).\n")
	}
	sb.WriteString(fmt.Sprintf("progress_stride = %d\n", cfg.Analysis.ProgressStride))
	if !minimal {
		sb.WriteString("\n# Skip files above this many bytes (0 = no limit).\n")
	}
	sb.WriteString(fmt.Sprintf("max_file_size = %d\n\n", cfg.Analysis.MaxFileSize))

	sb.WriteString("[output]\n")
	if !minimal {
		sb.WriteString("# Report format: text, json, yaml, html.\n")
	}
	sb.WriteString(fmt.Sprintf("format = %q\n", cfg.Output.Format))
	if !minimal {
		sb.WriteString("\n# Breakdown ordering: lines, files, extension.\n")
	}
	sb.WriteString(fmt.Sprintf("sort_by = %q\n", cfg.Output.SortBy))

	return sb.String()
}

func tomlStringArray(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
