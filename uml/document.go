package uml

import (
	"fmt"
	"io"
	"strings"

	"github.com/NickyBoy89/javauml/symbol"
)

const (
	startMarker = "@startuml"
	styleLine   = "skinparam classAttributeIconSize 0"
	endMarker   = "@enduml"
)

// Document is a whole diagram, with one block for every class in the order
// that the classes were given
type Document struct {
	Classes []ClassBlock
}

// Build creates the diagram for a set of declarations. Relations are only
// drawn between the declarations that are part of the set
func Build(decls []*symbol.TypeDeclaration, opts Options) *Document {
	scope := symbol.NewScope(decls)

	doc := &Document{Classes: make([]ClassBlock, 0, len(decls))}
	for _, decl := range decls {
		block := BuildClass(decl, opts)
		if opts.Relations {
			block.Edges = Relations(decl, scope, opts)
		}
		doc.Classes = append(doc.Classes, block)
	}
	return doc
}

func (d *Document) String() string {
	var total strings.Builder
	total.WriteString(startMarker + "\n")
	total.WriteString(styleLine + "\n")

	for _, class := range d.Classes {
		fmt.Fprintf(&total, "class %s {\n", class.Name)
		for _, member := range class.Members {
			total.WriteString("\t" + member.Line() + "\n")
		}
		total.WriteString("}\n")
		for _, edge := range class.Edges {
			total.WriteString(edge.String() + "\n")
		}
	}

	total.WriteString(endMarker + "\n")
	return total.String()
}

// WriteTo writes out the whole document in a single write
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}
