package astutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/NickyBoy89/javauml/keywords"
	"github.com/NickyBoy89/javauml/nodeutil"
	"github.com/NickyBoy89/javauml/symbol"
)

// Resolver turns simple type names into fully qualified ones, using only what
// a single source file tells us about its names
type Resolver struct {
	Package string
	// Single-type imports, from the imported simple name to its full name
	Imports map[string]string
	// Types declared in the file itself, including nested ones
	Declared map[string]string

	typeParameters map[string]struct{}
}

// WithTypeParameters returns a resolver where the given names refer to type
// parameters, and are never qualified
func (r *Resolver) WithTypeParameters(names ...string) *Resolver {
	if len(names) == 0 {
		return r
	}
	scoped := *r
	scoped.typeParameters = make(map[string]struct{}, len(r.typeParameters)+len(names))
	for name := range r.typeParameters {
		scoped.typeParameters[name] = struct{}{}
	}
	for _, name := range names {
		scoped.typeParameters[name] = struct{}{}
	}
	return &scoped
}

// IsTypeParameter reports whether the name refers to a type parameter in scope
func (r *Resolver) IsTypeParameter(name string) bool {
	if r == nil {
		return false
	}
	_, in := r.typeParameters[name]
	return in
}

// Resolve returns the fully qualified form of a simple type name. Names that
// cannot be resolved are assumed to live in the file's own package, since that
// is where Java looks for them before any on-demand imports
func (r *Resolver) Resolve(name string) string {
	if r == nil || r.IsTypeParameter(name) || keywords.IsPrimitive(name) {
		return name
	}
	if qualified, in := r.Declared[name]; in {
		return qualified
	}
	if qualified, in := r.Imports[name]; in {
		return qualified
	}
	if keywords.IsJavaLang(name) {
		return "java.lang." + name
	}
	if r.Package != "" {
		return r.Package + "." + name
	}
	return name
}

// ParseType converts a tree-sitter type node into a type reference
func ParseType(node *sitter.Node, source []byte, resolver *Resolver) symbol.TypeRef {
	if node == nil {
		return symbol.TypeRef{}
	}
	p := &typeParser{source: source, resolver: resolver}
	p.walk(node)
	return symbol.TypeRef{
		Text:      nodeutil.Content(node, source),
		Qualified: nodeutil.CollapseWhitespace(p.rewrite(node)),
		Refs:      p.refs,
	}
}

// TypeParameterNames returns the names declared by a `type_parameters` node
func TypeParameterNames(node *sitter.Node, source []byte) []string {
	if node == nil {
		return nil
	}
	var names []string
	for _, param := range nodeutil.Children(node) {
		if param.Type() != "type_parameter" {
			continue
		}
		if name := nodeutil.FirstChildOfType(param, "type_identifier", "identifier"); name != nil {
			names = append(names, name.Content(source))
		}
	}
	return names
}

type replacement struct {
	start, end uint32
	text       string
}

type typeParser struct {
	source       []byte
	resolver     *Resolver
	replacements []replacement
	refs         []symbol.TypeName
}

func (p *typeParser) walk(node *sitter.Node) {
	switch node.Type() {
	case "type_identifier":
		name := node.Content(p.source)
		if p.resolver.IsTypeParameter(name) {
			return
		}
		qualified := p.resolver.Resolve(name)
		p.replace(node, qualified)
		p.refs = append(p.refs, symbol.TypeName{Simple: name, Qualified: qualified})
	case "scoped_type_identifier":
		// Only the leftmost part of a scoped name gets resolved, everything after
		// it is either a nested type or already part of a package name
		children := nodeutil.Children(node)
		last := children[len(children)-1]
		p.walkScope(children[0])
		p.refs = append(p.refs, symbol.TypeName{
			Simple:    last.Content(p.source),
			Qualified: p.qualifiedName(node),
		})
	case "marker_annotation", "annotation":
		// Annotations on a type are kept as they are
	default:
		for _, child := range nodeutil.Children(node) {
			p.walk(child)
		}
	}
}

// walkScope handles the prefix of a scoped type, which does not count as a
// reference of its own
func (p *typeParser) walkScope(node *sitter.Node) {
	switch node.Type() {
	case "type_identifier":
		name := node.Content(p.source)
		if !isPackageSegment(name) {
			p.replace(node, p.resolver.Resolve(name))
		}
	case "scoped_type_identifier":
		p.walkScope(node.NamedChild(0))
	case "generic_type":
		p.walkScope(node.NamedChild(0))
		for _, child := range nodeutil.Children(node)[1:] {
			p.walk(child)
		}
	}
}

func (p *typeParser) qualifiedName(node *sitter.Node) string {
	switch node.Type() {
	case "type_identifier":
		name := node.Content(p.source)
		if isPackageSegment(name) {
			return name
		}
		return p.resolver.Resolve(name)
	case "scoped_type_identifier":
		children := nodeutil.Children(node)
		return p.qualifiedName(children[0]) + "." + children[len(children)-1].Content(p.source)
	case "generic_type":
		return p.qualifiedName(node.NamedChild(0))
	}
	return node.Content(p.source)
}

func (p *typeParser) replace(node *sitter.Node, text string) {
	p.replacements = append(p.replacements, replacement{
		start: node.StartByte(),
		end:   node.EndByte(),
		text:  text,
	})
}

// rewrite returns the text of the node with all replacements applied. The
// replacements are in source order, since the tree is walked in order
func (p *typeParser) rewrite(node *sitter.Node) string {
	var b strings.Builder
	pos := node.StartByte()
	for _, r := range p.replacements {
		b.Write(p.source[pos:r.start])
		b.WriteString(r.text)
		pos = r.end
	}
	b.Write(p.source[pos:node.EndByte()])
	return b.String()
}

// Package names are lowercase by convention, while type names are not
func isPackageSegment(name string) bool {
	first, _ := utf8.DecodeRuneInString(name)
	return unicode.IsLower(first)
}
