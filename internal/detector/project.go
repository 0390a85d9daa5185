// Package detector provides project type detection functionality for testpick
package detector

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/testpick/testpick/internal/debug"
)

// ProjectType represents a detected project type with confidence score
type ProjectType struct {
	Name       string   // Project type name (e.g., "ruby", "go")
	Confidence float64  // Confidence score between 0 and 1
	Markers    []string // Files that identified this type
}

// ProjectDetector handles project type detection
type ProjectDetector struct {
	// markerFiles maps project types to their characteristic files
	markerFiles map[string][]markerFile
}

// markerFile represents a file marker with its weight
type markerFile struct {
	name   string
	weight float64
}

// New creates a new ProjectDetector with default marker configurations
func New() *ProjectDetector {
	return &ProjectDetector{
		markerFiles: map[string][]markerFile{
			"ruby": {
				{name: "Gemfile", weight: 1.0},
				{name: "Gemfile.lock", weight: 0.7},
				{name: "Rakefile", weight: 0.8},
				{name: ".ruby-version", weight: 0.4},
				{name: "config.ru", weight: 0.5},
				{name: "test", weight: 0.3},
				{name: "spec", weight: 0.3},
			},
			"go": {
				{name: "go.mod", weight: 1.0},
				{name: "go.sum", weight: 0.7},
				{name: "main.go", weight: 0.4},
				{name: "go.work", weight: 0.8},
			},
			"python": {
				{name: "pyproject.toml", weight: 1.0},
				{name: "setup.py", weight: 0.8},
				{name: "requirements.txt", weight: 0.6},
				{name: "tox.ini", weight: 0.5},
				{name: "tests", weight: 0.3},
			},
			"nodejs": {
				{name: "package.json", weight: 1.0},
				{name: "package-lock.json", weight: 0.5},
				{name: "yarn.lock", weight: 0.5},
				{name: "tsconfig.json", weight: 0.4},
			},
		},
	}
}

// Detect examines a directory and returns detected project types sorted by
// confidence, highest first. Types with no markers present are omitted.
func (d *ProjectDetector) Detect(dir string) ([]ProjectType, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}

	var detected []ProjectType
	for name, markers := range d.markerFiles {
		var found []string
		var score, total float64

		for _, marker := range markers {
			total += marker.weight
			if _, err := os.Stat(filepath.Join(dir, marker.name)); err == nil {
				found = append(found, marker.name)
				score += marker.weight
			}
		}

		if len(found) == 0 {
			continue
		}

		sort.Strings(found)
		detected = append(detected, ProjectType{
			Name:       name,
			Confidence: score / total,
			Markers:    found,
		})
	}

	sort.Slice(detected, func(i, j int) bool {
		if detected[i].Confidence != detected[j].Confidence {
			return detected[i].Confidence > detected[j].Confidence
		}
		return detected[i].Name < detected[j].Name
	})

	for _, p := range detected {
		debug.Log("Detected %s (confidence %.2f, markers %v)", p.Name, p.Confidence, p.Markers)
	}

	return detected, nil
}
