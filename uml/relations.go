package uml

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/NickyBoy89/javauml/symbol"
)

// EdgeKind is the kind of relation that an edge represents
type EdgeKind int

const (
	// Association is a field that refers to another class
	Association EdgeKind = iota
	// Generalization is a class or interface that another one extends
	Generalization
	// Realization is an interface that a class implements, only used when it
	// is asked for
	Realization
)

// Arrow returns the PlantUML notation for the edge kind
func (k EdgeKind) Arrow() string {
	switch k {
	case Generalization:
		return "--|>"
	case Realization:
		return "..|>"
	}
	return "-->"
}

// Edge is a directed relation between two classes of a diagram
type Edge struct {
	From string
	To   string
	Kind EdgeKind
}

func (e Edge) String() string {
	return e.From + " " + e.Kind.Arrow() + " " + e.To
}

// Relations finds the edges that start at decl and point to another class in
// the scope. Fields come first, then supertypes, both in the order they were
// declared. Names that are not in the scope do not produce an edge. Every
// supertype is a generalization, unless realizations are turned on in opts
func Relations(decl *symbol.TypeDeclaration, scope *symbol.Scope, opts Options) []Edge {
	qualified := opts.FullyQualifiedNames
	from := decl.DisplayName(qualified)

	var edges []Edge
	add := func(name symbol.TypeName, kind EdgeKind) {
		target := scope.Find(name, qualified)
		if target == nil || target == decl {
			return
		}
		edge := Edge{From: from, To: target.DisplayName(qualified), Kind: kind}
		if edge.To == edge.From || slices.Contains(edges, edge) {
			return
		}
		edges = append(edges, edge)
	}

	for _, field := range decl.Fields {
		for _, ref := range field.Type.Refs {
			add(ref, Association)
		}
	}

	for _, super := range decl.Supertypes {
		name, ok := supertypeName(super.Type)
		if !ok {
			continue
		}
		if super.Kind == symbol.Implements && opts.Realization {
			add(name, Realization)
		} else {
			add(name, Generalization)
		}
	}

	return edges
}

// supertypeName picks out the type being extended from the names referenced
// in a supertype, leaving out any of its type arguments
func supertypeName(t symbol.TypeRef) (symbol.TypeName, bool) {
	base := t.Text
	if ind := strings.IndexByte(base, '<'); ind >= 0 {
		base = base[:ind]
	}
	base = strings.TrimSpace(base[strings.LastIndexByte(base, '.')+1:])

	for _, ref := range t.Refs {
		if ref.Simple == base {
			return ref, true
		}
	}
	return symbol.TypeName{}, false
}
