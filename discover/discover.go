// Package discover finds the Java source files that make up a diagram.
package discover

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	log "github.com/sirupsen/logrus"

	"github.com/NickyBoy89/javauml/parsing"
)

const sourceExtension = ".java"

// Options controls which files are discovered
type Options struct {
	// Descend into subdirectories of the root
	Recursive bool
	// Gitignore-style patterns, relative to the root, for paths to leave out
	Exclude []string
}

// Files lists the Java source files under root in lexical order. When
// recursive, the contents of each subdirectory appear where the subdirectory
// would have been
func Files(root string, opts Options) ([]string, error) {
	var excluded *ignore.GitIgnore
	if len(opts.Exclude) > 0 {
		excluded = ignore.CompileIgnoreLines(opts.Exclude...)
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &parsing.SourceAccessError{Path: path, Err: err}
		}

		if path == root {
			if !d.IsDir() {
				return &parsing.SourceAccessError{Path: path, Err: errors.New("not a directory")}
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if !opts.Recursive || excluded != nil && (excluded.MatchesPath(rel) || excluded.MatchesPath(rel+"/")) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !IsSourceFile(d.Name()) {
			return nil
		}
		if excluded != nil && excluded.MatchesPath(rel) {
			log.WithField("path", path).Debug("Excluded source file")
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"root":  root,
		"files": len(files),
	}).Debug("Discovered source files")

	return files, nil
}

// IsSourceFile reports whether a file name looks like Java source. The
// extension is matched without regard to case, and a name made only of the
// extension does not count
func IsSourceFile(name string) bool {
	return len(name) > len(sourceExtension) && strings.EqualFold(name[len(name)-len(sourceExtension):], sourceExtension)
}
