package parsing

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/NickyBoy89/javauml/nodeutil"
	"github.com/NickyBoy89/javauml/symbol"
)

// Parser turns Java source files into declarations. A parser is not safe for
// concurrent use, so every goroutine needs its own
type Parser struct {
	parser *sitter.Parser
	opts   Options
}

// NewParser creates a parser for Java source code
func NewParser(opts Options) *Parser {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	return &Parser{parser: parser, opts: opts}
}

// Close releases the underlying tree-sitter parser
func (p *Parser) Close() {
	p.parser.Close()
}

// SourceFile is a single source file that has been read from disk
type SourceFile struct {
	Path   string
	Source []byte
}

func (file SourceFile) String() string {
	return fmt.Sprintf("SourceFile { Path: %s, Size: %d }", file.Path, len(file.Source))
}

// ReadSourceFile loads the contents of a file
func ReadSourceFile(path string) (SourceFile, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return SourceFile{}, &SourceAccessError{Path: path, Err: err}
	}
	return SourceFile{Path: path, Source: source}, nil
}

// ParseFile reads and parses a single file. A file that does not declare any
// type returns a nil declaration without an error
func (p *Parser) ParseFile(ctx context.Context, path string) (*symbol.TypeDeclaration, error) {
	file, err := ReadSourceFile(path)
	if err != nil {
		return nil, err
	}
	return p.ParseSource(ctx, file.Path, file.Source)
}

// ParseSource parses the given source, using path only to identify the file
func (p *Parser) ParseSource(ctx context.Context, path string, source []byte) (*symbol.TypeDeclaration, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if bad := nodeutil.FirstError(root); bad != nil {
		pos := bad.StartPoint()
		return nil, &ParseError{
			Path:   path,
			Line:   int(pos.Row) + 1,
			Column: int(pos.Column) + 1,
			Near:   nearText(bad, source),
		}
	}

	return ExtractDeclaration(root, source, path, p.opts)
}

const maxNearLength = 32

func nearText(node *sitter.Node, source []byte) string {
	return truncate(nodeutil.Content(node, source), maxNearLength)
}

// truncate shortens text to at most limit characters, without splitting any of
// them
func truncate(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit]) + "..."
}
