package resolver

import (
	"sort"

	"github.com/testpick/testpick/internal/debug"
	"github.com/testpick/testpick/pkg/config"
)

// ChangeDetector reports version-control changed/added paths scoped to the
// given input paths. Implementations degrade to an empty list on failure.
type ChangeDetector interface {
	Changed(ref string, paths []string) []string
}

// Resolver produces the final, deduplicated, sorted set of test files for a
// list of raw path arguments
type Resolver struct {
	cfg     *config.Config
	globber *Globber
}

// New creates a resolver rooted at the given working directory
func New(cfg *config.Config, workDir string) *Resolver {
	return &Resolver{
		cfg:     cfg,
		globber: NewGlobber(cfg, workDir),
	}
}

// Resolve classifies each input path, passes single tests through verbatim,
// expands prefixes via globbing, and returns the union sorted and free of
// duplicates. An empty input list resolves the configured test directory.
func (r *Resolver) Resolve(paths []string) []string {
	paths = r.defaultPaths(paths)

	set := make(map[string]struct{})
	for _, raw := range paths {
		spec := Classify(raw, r.cfg)
		switch spec.Kind {
		case KindSingleTest:
			set[spec.Raw] = struct{}{}
		case KindPrefix:
			files, err := r.globber.Expand(spec.File)
			if err != nil {
				// Discovery failures degrade to "nothing found"
				debug.LogError(err, "expanding prefix "+spec.File)
				continue
			}
			for _, f := range files {
				set[f] = struct{}{}
			}
		}
	}

	resolved := sortedKeys(set)
	debug.LogFileList("Resolved tests", resolved)
	return resolved
}

// ResolveChanged restricts resolution to version-control changed/added files.
// The detector query is scoped to the input paths; its output is filtered by
// test suffix only. Git reports files, never directories, so no prefix
// expansion is applied to the reported paths.
func (r *Resolver) ResolveChanged(det ChangeDetector, ref string, paths []string) []string {
	paths = r.defaultPaths(paths)

	scope := make([]string, len(paths))
	for i, raw := range paths {
		scope[i] = Classify(raw, r.cfg).File
	}

	set := make(map[string]struct{})
	for _, path := range det.Changed(ref, scope) {
		if r.cfg.MatchesSuffix(path) {
			set[path] = struct{}{}
		}
	}

	resolved := sortedKeys(set)
	debug.LogFileList("Changed tests", resolved)
	return resolved
}

// defaultPaths substitutes the configured test directory for an empty input list
func (r *Resolver) defaultPaths(paths []string) []string {
	if len(paths) == 0 {
		return []string{r.cfg.TestDir}
	}
	return paths
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
