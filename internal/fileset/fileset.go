// Package fileset expands command-line file arguments, including ** globs,
// into a list of diagram files.
package fileset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNoMatch is returned when a glob pattern matches no files.
var ErrNoMatch = errors.New("no files match")

// Expand resolves each argument to files. Plain paths must exist and may
// not be directories. Patterns may use *, ?, [...], {a,b} and **. The result
// keeps argument order, sorts the matches of each pattern and drops
// duplicates.
func Expand(args []string) ([]string, error) {
	var (
		out  []string
		seen = make(map[string]struct{})
	)
	add := func(p string) {
		key := filepath.Clean(p)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}

	for _, arg := range args {
		if !IsPattern(arg) {
			info, err := os.Stat(arg)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", arg, err)
			}
			if info.IsDir() {
				return nil, fmt.Errorf("%s: is a directory", arg)
			}
			add(arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%s: %w", arg, ErrNoMatch)
		}
		slices.Sort(matches)
		for _, m := range matches {
			add(m)
		}
	}

	return out, nil
}

// IsPattern reports whether arg contains glob metacharacters.
func IsPattern(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}
