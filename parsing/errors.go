package parsing

import "fmt"

// ParseError is returned when a source file is not valid Java
type ParseError struct {
	Path string
	// The position of the first syntax error, starting at one
	Line, Column int
	// The source text around the error
	Near string
}

func (e *ParseError) Error() string {
	if e.Near != "" {
		return fmt.Sprintf("%s:%d:%d: syntax error near %q", e.Path, e.Line, e.Column, e.Near)
	}
	return fmt.Sprintf("%s:%d:%d: syntax error", e.Path, e.Line, e.Column)
}

// SourceAccessError is returned when a file or directory could not be read
type SourceAccessError struct {
	Path string
	Err  error
}

func (e *SourceAccessError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *SourceAccessError) Unwrap() error {
	return e.Err
}
