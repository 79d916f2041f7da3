package main

import (
	"fmt"
	"path/filepath"

	"github.com/desertwitch/golnk/internal/filesystem"
	"github.com/desertwitch/golnk/internal/validation"
)

type targetProvider interface {
	IsDir(path string) (bool, error)
	Resolve(path string) string
}

// linkJob is one invocation of the linking engine.
type linkJob struct {
	source string
	dest   string
}

// planJobs turns the positional targets into linking jobs:
//
//   - with a target directory, every target is linked into it
//   - a single target is linked into the working directory
//   - SRC DST links SRC to DST, or into DST if it is an existing directory
//   - with three or more, the last target is the directory to link into
func planJobs(fsHandler targetProvider, targets []string, targetDir string) ([]linkJob, error) {
	if targetDir != "" {
		if len(targets) == 0 {
			return nil, ErrNoTargets
		}

		return intoDirectory(fsHandler, targets, targetDir)
	}

	switch len(targets) {
	case 0:
		return nil, ErrNoTargets

	case 1:
		return []linkJob{{source: targets[0], dest: "."}}, nil

	case 2: //nolint:mnd
		source, dest := targets[0], targets[1]

		isDir, err := fsHandler.IsDir(fsHandler.Resolve(dest))
		if err != nil {
			return nil, fmt.Errorf("(plan) %w", err)
		}

		if isDir && !filesystem.HasWildcard(source) {
			dest = filepath.Join(dest, filepath.Base(source))
		}

		return []linkJob{{source: source, dest: dest}}, nil

	default:
		return intoDirectory(fsHandler, targets[:len(targets)-1], targets[len(targets)-1])
	}
}

func intoDirectory(fsHandler targetProvider, sources []string, dir string) ([]linkJob, error) {
	if err := validation.ValidateTargetDirectory(fsHandler, dir); err != nil {
		return nil, fmt.Errorf("(plan) %w", err)
	}

	jobs := make([]linkJob, 0, len(sources))
	for _, source := range sources {
		jobs = append(jobs, linkJob{source: source, dest: dir})
	}

	return jobs, nil
}
