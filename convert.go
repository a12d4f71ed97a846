package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/NickyBoy89/javauml/discover"
	"github.com/NickyBoy89/javauml/parsing"
	"github.com/NickyBoy89/javauml/symbol"
	"github.com/NickyBoy89/javauml/uml"
)

// convert runs the whole pipeline, and only writes the output once every file
// has been parsed
func convert(ctx context.Context, files []string, s settings, stdout io.Writer) error {
	if len(files) == 0 {
		found, err := discover.Files(s.directory, discover.Options{Recursive: s.recursive, Exclude: s.exclude})
		if err != nil {
			return fmt.Errorf("discovering files: %w", err)
		}
		if len(found) == 0 {
			log.WithField("directory", s.directory).Warn("No Java source files found")
		}
		files = found
	}

	decls, err := parseFiles(ctx, files, s.jobs, s.parse)
	if err != nil {
		return err
	}

	doc := uml.Build(decls, s.diagram)
	return writeDocument(doc, s.output, stdout)
}

// parseFiles parses every file, keeping the declarations in the same order as
// the files. When any file fails, the error of the earliest one is returned
func parseFiles(ctx context.Context, files []string, jobs int, opts parsing.Options) ([]*symbol.TypeDeclaration, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]*symbol.TypeDeclaration, len(files))
	errs := make([]error, len(files))

	// Every file is parsed even after a failure, so that the earliest error is
	// known regardless of the order that the files finish in
	var g errgroup.Group
	g.SetLimit(jobs)
	for ind, path := range files {
		ind, path := ind, path
		g.Go(func() error {
			// Tree-sitter parsers can not be shared between goroutines
			parser := parsing.NewParser(opts)
			defer parser.Close()

			decl, err := parser.ParseFile(ctx, path)
			if err != nil {
				errs[ind] = err
				return err
			}
			if decl == nil {
				log.WithField("path", path).Warn("Skipping file without a type declaration")
			}
			results[ind] = decl
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, fileErr := range errs {
			if fileErr != nil {
				return nil, fileErr
			}
		}
		return nil, err
	}

	decls := make([]*symbol.TypeDeclaration, 0, len(results))
	for _, decl := range results {
		if decl != nil {
			decls = append(decls, decl)
		}
	}

	log.WithField("files", len(files)).Debug("Parsed source files")
	return decls, nil
}

func writeDocument(doc *uml.Document, output string, stdout io.Writer) error {
	if output == "-" {
		_, err := doc.WriteTo(stdout)
		return err
	}

	outputFile, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	if _, err := doc.WriteTo(outputFile); err != nil {
		outputFile.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := outputFile.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	log.WithFields(log.Fields{
		"path":    output,
		"classes": len(doc.Classes),
	}).Info("Wrote diagram")
	return nil
}
