package resolver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/testpick/testpick/pkg/config"
)

// Globber expands prefix paths into candidate test files beneath them
type Globber struct {
	cfg     *config.Config
	workDir string
}

// NewGlobber creates a globber rooted at the given working directory
func NewGlobber(cfg *config.Config, workDir string) *Globber {
	return &Globber{
		cfg:     cfg,
		workDir: filepath.Clean(workDir),
	}
}

// Expand enumerates filesystem entries whose name begins with the prefix and
// entries nested arbitrarily deep under it, keeps those matching a configured
// test-file suffix, and returns them relative to the working directory.
// Results carry no ordering guarantee; an empty result is not an error.
func (g *Globber) Expand(prefix string) ([]string, error) {
	abs := prefix
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(g.workDir, prefix)
	}
	abs = filepath.ToSlash(abs)

	// A "test" prefix matches both test/**/* and sibling stems like test_helper.rb
	patterns := []string{abs + "*", abs + "/**/*"}

	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("globbing %q: %w", pattern, err)
		}
		for _, match := range matches {
			if !g.cfg.MatchesSuffix(match) {
				continue
			}
			files = append(files, g.relative(match))
		}
	}

	return files, nil
}

// relative strips the working-directory prefix so results are relative paths
func (g *Globber) relative(path string) string {
	path = filepath.ToSlash(path)
	root := filepath.ToSlash(g.workDir)
	if trimmed := strings.TrimPrefix(path, root+"/"); trimmed != path {
		return trimmed
	}
	return path
}
