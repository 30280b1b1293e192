package app

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/polyscan-dev/polyscan/domain"
	"github.com/polyscan-dev/polyscan/internal/syntax"
)

// FileHelper implements the traversal planner: it walks the project tree
// once, prunes excluded directories before descent, and admits files by
// extension or special-cased base name. It performs no file content I/O.
type FileHelper struct{}

// NewFileHelper creates a new FileHelper
func NewFileHelper() *FileHelper {
	return &FileHelper{}
}

var _ domain.CandidatePlanner = (*FileHelper)(nil)

// Plan produces the ordered candidate list for a root directory. The walk
// order is lexical, so repeated runs over an unmodified tree yield identical
// candidate lists. A failure during the walk propagates as a fatal error.
func (h *FileHelper) Plan(root string, req domain.AnalyzeRequest) ([]domain.CandidateFile, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, domain.NewInvalidInputError("root path is not a directory: "+root, nil)
	}

	excluded := toSet(orDefault(req.ExcludedDirs, syntax.DefaultExcludedDirs))
	extensions := toSet(orDefault(req.Extensions, syntax.DefaultExtensions))
	specials := toSet(orDefault(req.SpecialBaseNames, syntax.DefaultSpecialBaseNames))

	var matcher *ignore.GitIgnore
	if req.RespectGitignore {
		// A missing or unreadable .gitignore simply disables filtering.
		if m, err := ignore.CompileIgnoreFile(filepath.Join(absRoot, ".gitignore")); err == nil {
			matcher = m
		}
	}

	var candidates []domain.CandidateFile
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()
		if d.IsDir() {
			if path != absRoot {
				if _, skip := excluded[name]; skip {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(name))
		_, admittedExt := extensions[ext]
		_, admittedName := specials[strings.ToLower(name)]
		if !admittedExt && !admittedName {
			return nil
		}

		if matcher != nil {
			if rel, relErr := filepath.Rel(absRoot, path); relErr == nil && matcher.MatchesPath(rel) {
				return nil
			}
		}

		key := ext
		if key == "" {
			key = domain.NoExtension
		}
		candidates = append(candidates, domain.CandidateFile{Path: path, Ext: key})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return candidates, nil
}

func orDefault(values []string, fallback func() []string) []string {
	if len(values) > 0 {
		return values
	}
	return fallback()
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = struct{}{}
	}
	return set
}
