// Package syntax holds the static language knowledge used by the analyzer:
// the single-line comment marker table, the admitted-extension allow-list,
// the excluded-directory set, and the technical-debt tag matcher.
package syntax

import (
	"regexp"
	"strings"
)

// commentMarkers maps each single-line comment marker to the extensions that
// use it. Only line-leading markers are recognized; block comments are not.
var commentMarkers = map[string][]string{
	"//":   {".c", ".cpp", ".h", ".hpp", ".cc", ".java", ".js", ".jsx", ".ts", ".tsx", ".cs", ".go", ".rs", ".swift", ".kt", ".dart", ".scala", ".groovy", ".php"},
	"#":    {".py", ".pyw", ".rb", ".sh", ".bash", ".yaml", ".yml", ".dockerfile", ".pl", ".r", ".ps1"},
	"--":   {".sql", ".lua", ".hs"},
	"%":    {".m", ".tex"},
	"<!--": {".html", ".xml", ".htm"},
}

// markerByExt is the inverted lookup built once at package init.
var markerByExt = func() map[string]string {
	m := make(map[string]string)
	for marker, exts := range commentMarkers {
		for _, ext := range exts {
			m[ext] = marker
		}
	}
	return m
}()

// admittedExtensions is the allow-list of text-based source extensions.
var admittedExtensions = []string{
	".py", ".pyw", ".c", ".cpp", ".h", ".hpp", ".cc", ".java", ".js", ".jsx",
	".ts", ".tsx", ".html", ".htm", ".css", ".scss", ".less", ".json", ".xml",
	".yaml", ".yml", ".md", ".txt", ".php", ".rb", ".go", ".rs", ".swift",
	".kt", ".kts", ".cs", ".sh", ".bash", ".bat", ".ps1", ".lua", ".pl",
	".sql", ".r", ".m", ".mm", ".dart", ".vb", ".vbs", ".scala", ".groovy",
	".asm", ".s", ".properties", ".ini", ".toml", ".dockerfile",
}

// excludedDirs are pruned before descent at every depth: version-control
// metadata, caches, dependency trees, IDE settings, and build output.
var excludedDirs = []string{
	".git", "__pycache__", ".vscode", "node_modules", "venv", ".idea",
	".pytest_cache", "build", "dist", ".vs", ".egg-info", "coverage",
	"bin", "obj", "target", ".gradle", "vendor",
}

// specialBaseNames admits extensionless files by case-insensitive base name.
var specialBaseNames = []string{"dockerfile"}

// debtTagPattern matches whole-word technical-debt tags, case-insensitively.
// The word boundaries keep "mastodon" from matching "TODO".
var debtTagPattern = regexp.MustCompile(`(?i)\b(TODO|FIXME|HACK|BUG|XXX)\b`)

// CommentMarker returns the single-line comment marker for a lowercased
// extension, or the empty string when the extension has no recognized
// comment syntax.
func CommentMarker(ext string) string {
	return markerByExt[strings.ToLower(ext)]
}

// HasDebtTag reports whether the raw, unstripped line contains at least one
// debt tag. A line counts once no matter how many tags it carries.
func HasDebtTag(line string) bool {
	return debtTagPattern.MatchString(line)
}

// DefaultExtensions returns a copy of the built-in extension allow-list.
func DefaultExtensions() []string {
	return append([]string(nil), admittedExtensions...)
}

// DefaultExcludedDirs returns a copy of the built-in exclusion set.
func DefaultExcludedDirs() []string {
	return append([]string(nil), excludedDirs...)
}

// DefaultSpecialBaseNames returns a copy of the extensionless base names
// admitted despite the allow-list.
func DefaultSpecialBaseNames() []string {
	return append([]string(nil), specialBaseNames...)
}
