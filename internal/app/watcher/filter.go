package watcher

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// skippedDirs are never descended into regardless of ignore patterns
var skippedDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	"vendor":       {},
	".idea":        {},
	".vscode":      {},
}

// Filter decides which paths under the watched root produce statuses
type Filter struct {
	include []glob.Glob
	ignore  []glob.Glob
}

// NewFilter compiles include and ignore globs; a leading **/ also matches at the root
func NewFilter(include, ignore []string) (*Filter, error) {
	inc, err := compile(include)
	if err != nil {
		return nil, err
	}

	ign, err := compile(ignore)
	if err != nil {
		return nil, err
	}

	return &Filter{include: inc, ignore: ign}, nil
}

func compile(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, p := range patterns {
		variants := []string{p}
		if rest, ok := strings.CutPrefix(p, "**/"); ok {
			variants = append(variants, rest)
		}

		for _, v := range variants {
			g, err := glob.Compile(v, '/')
			if err != nil {
				return nil, err
			}

			globs = append(globs, g)
		}
	}

	return globs, nil
}

// Allows reports whether a root-relative file path is included and not ignored
func (f *Filter) Allows(rel string) bool {
	rel = normalize(rel)

	if matchAny(f.ignore, rel) {
		return false
	}

	return matchAny(f.include, rel)
}

// SkipDir reports whether a root-relative directory should not be watched
func (f *Filter) SkipDir(rel string) bool {
	if _, ok := skippedDirs[filepath.Base(rel)]; ok {
		return true
	}

	rel = normalize(rel)
	if rel == "" || rel == "." {
		return false
	}

	// A directory is skipped when any file inside it would be ignored
	return matchAny(f.ignore, rel+"/_probe")
}

func matchAny(globs []glob.Glob, path string) bool {
	for _, g := range globs {
		if g.Match(path) {
			return true
		}
	}

	return false
}

func normalize(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "./")
}
