package app

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/polyscan-dev/polyscan/domain"
	"github.com/polyscan-dev/polyscan/internal/testutil"
)

func candidateNames(candidates []domain.CandidateFile) []string {
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = filepath.Base(c.Path)
	}
	sort.Strings(names)
	return names
}

func TestPlanAdmitsByExtension(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"main.py":     "x = 1\n",
		"lib/util.go": "package lib\n",
		"README.md":   "# readme\n",
		"image.png":   "binary-ish",
		"archive.exe": "nope",
	})

	helper := NewFileHelper()
	candidates, err := helper.Plan(root, domain.AnalyzeRequest{})
	testutil.AssertNoError(t, err)

	got := candidateNames(candidates)
	want := []string{"README.md", "main.py", "util.go"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		testutil.AssertEqual(t, want[i], got[i])
	}
}

func TestPlanPrunesExcludedDirs(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"src/app.py":                "x = 1\n",
		"node_modules/dep/index.js": "module.exports = {}\n",
		".git/hooks/sample.sh":      "#!/bin/sh\n",
		"__pycache__/app.pyc":       "",
		"venv/lib/site.py":          "x\n",
		"build/out.js":              "x\n",
	})

	helper := NewFileHelper()
	candidates, err := helper.Plan(root, domain.AnalyzeRequest{})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, 1, len(candidates))
	testutil.AssertEqual(t, "app.py", filepath.Base(candidates[0].Path))
}

func TestPlanExcludedOnlyTreeYieldsNoCandidates(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"node_modules/a.js":    "x\n",
		"node_modules/b/c.ts":  "x\n",
		".git/config.ini":      "x\n",
		"dist/bundle.min.js":   "x\n",
		"__pycache__/cache.py": "x\n",
	})

	helper := NewFileHelper()
	candidates, err := helper.Plan(root, domain.AnalyzeRequest{})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, 0, len(candidates))
}

func TestPlanSpecialBaseNames(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"Dockerfile":     "FROM scratch\n",
		"sub/dockerfile": "FROM scratch\n",
		"Makefile":       "all:\n",
	})

	helper := NewFileHelper()
	candidates, err := helper.Plan(root, domain.AnalyzeRequest{})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, 2, len(candidates))
	for _, c := range candidates {
		testutil.AssertEqual(t, domain.NoExtension, c.Ext)
	}
}

func TestPlanExtensionIsLowercased(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"Main.PY": "x = 1\n",
	})

	helper := NewFileHelper()
	candidates, err := helper.Plan(root, domain.AnalyzeRequest{})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, 1, len(candidates))
	testutil.AssertEqual(t, ".py", candidates[0].Ext)
}

func TestPlanCustomPolicy(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"a.py":         "x\n",
		"b.go":         "x\n",
		"skipme/c.py":  "x\n",
		"special.conf": "x\n",
	})

	helper := NewFileHelper()
	candidates, err := helper.Plan(root, domain.AnalyzeRequest{
		Extensions:       []string{".py"},
		ExcludedDirs:     []string{"skipme"},
		SpecialBaseNames: []string{"special.conf"},
	})
	testutil.AssertNoError(t, err)

	got := candidateNames(candidates)
	want := []string{"a.py", "special.conf"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		testutil.AssertEqual(t, want[i], got[i])
	}
}

func TestPlanRespectGitignore(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		".gitignore":      "generated/\n*.gen.py\n",
		"app.py":          "x\n",
		"thing.gen.py":    "x\n",
		"generated/g.py":  "x\n",
		"src/kept.py":     "x\n",
		"src/also.gen.py": "x\n",
	})

	helper := NewFileHelper()
	candidates, err := helper.Plan(root, domain.AnalyzeRequest{RespectGitignore: true})
	testutil.AssertNoError(t, err)

	names := candidateNames(candidates)
	for _, n := range names {
		if n == "thing.gen.py" || n == "g.py" || n == "also.gen.py" {
			t.Errorf("gitignored file %s should not be a candidate", n)
		}
	}
	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	if !found["app.py"] || !found["kept.py"] {
		t.Errorf("non-ignored files missing from %v", names)
	}
}

func TestPlanDeterministicOrder(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"b.py":     "x\n",
		"a.py":     "x\n",
		"sub/c.py": "x\n",
	})

	helper := NewFileHelper()
	first, err := helper.Plan(root, domain.AnalyzeRequest{})
	testutil.AssertNoError(t, err)
	second, err := helper.Plan(root, domain.AnalyzeRequest{})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, len(first), len(second))
	for i := range first {
		testutil.AssertEqual(t, first[i].Path, second[i].Path)
	}
}

func TestPlanRejectsNonDirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file.py")
	if err := os.WriteFile(file, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	helper := NewFileHelper()
	_, err := helper.Plan(file, domain.AnalyzeRequest{})
	testutil.AssertError(t, err)

	_, err = helper.Plan(filepath.Join(root, "missing"), domain.AnalyzeRequest{})
	testutil.AssertError(t, err)
}
