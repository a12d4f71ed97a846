package parsing

import (
	log "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/NickyBoy89/javauml/astutil"
	"github.com/NickyBoy89/javauml/keywords"
	"github.com/NickyBoy89/javauml/nodeutil"
	"github.com/NickyBoy89/javauml/symbol"
)

var declarationKinds = map[string]symbol.Kind{
	"class_declaration":           symbol.KindClass,
	"interface_declaration":       symbol.KindInterface,
	"enum_declaration":            symbol.KindEnum,
	"record_declaration":          symbol.KindRecord,
	"annotation_type_declaration": symbol.KindAnnotation,
}

func isTypeDeclaration(node *sitter.Node) bool {
	_, ok := declarationKinds[node.Type()]
	return ok
}

// Options changes which members are extracted from a file
type Options struct {
	// DirectMembersOnly limits the members to the ones declared directly in the
	// first type, instead of every member declared anywhere in the file
	DirectMembersOnly bool
}

// ExtractDeclaration generates the declaration for the first type declared in
// a file. Files that only contain a package or a module, such as
// `package-info.java`, do not have one and return nil
func ExtractDeclaration(root *sitter.Node, source []byte, path string, opts Options) (*symbol.TypeDeclaration, error) {
	if err := nodeutil.ExpectType(root, "program"); err != nil {
		return nil, &ParseError{Path: path, Line: 1, Column: 1, Near: err.Error()}
	}

	resolver, typeNode := ExtractImports(root, source)
	if typeNode == nil {
		return nil, nil
	}

	name := typeNode.ChildByFieldName("name").Content(source)
	qualifiedName := qualify(resolver.Package, name)
	declareTypes(resolver.Declared, typeNode, source, qualifiedName)

	decl := &symbol.TypeDeclaration{
		Name:          name,
		QualifiedName: qualifiedName,
		Package:       resolver.Package,
		Kind:          declarationKinds[typeNode.Type()],
		Path:          path,
	}
	decl.Supertypes = parseSupertypes(typeNode, source, resolver.WithTypeParameters(typeParameters(typeNode, source)...))

	collector := &memberCollector{decl: decl, source: source, nested: !opts.DirectMembersOnly}
	collector.collectType(typeNode, resolver)

	if collector.nested {
		// The other top-level types of the file are listed under the first one
		for _, child := range nodeutil.Children(root) {
			if !isTypeDeclaration(child) || child.StartByte() == typeNode.StartByte() {
				continue
			}
			other := child.ChildByFieldName("name").Content(source)
			declareTypes(resolver.Declared, child, source, qualify(resolver.Package, other))
			collector.collectType(child, resolver)
		}
	}

	log.WithFields(log.Fields{
		"path":         path,
		"class":        decl.QualifiedName,
		"fields":       len(decl.Fields),
		"constructors": len(decl.Constructors),
		"methods":      len(decl.Methods),
	}).Debug("Extracted declaration")

	return decl, nil
}

func typeParameters(node *sitter.Node, source []byte) []string {
	return astutil.TypeParameterNames(nodeutil.FirstChildOfType(node, "type_parameters"), source)
}

// parseSupertypes reads the `extends` and `implements` clauses of a type
func parseSupertypes(node *sitter.Node, source []byte, resolver *astutil.Resolver) []symbol.Supertype {
	var supertypes []symbol.Supertype
	for _, child := range nodeutil.Children(node) {
		kind := symbol.Extends
		switch child.Type() {
		case "superclass", "extends_interfaces":
		case "super_interfaces":
			kind = symbol.Implements
		default:
			continue
		}
		for _, typ := range typeList(child) {
			supertypes = append(supertypes, symbol.Supertype{Type: astutil.ParseType(typ, source, resolver), Kind: kind})
		}
	}
	return supertypes
}

// memberCollector adds the members of a type to a declaration. Unless only
// direct members are wanted, the members of nested, local, and anonymous
// classes are added too, in the order that they appear in the source
type memberCollector struct {
	decl   *symbol.TypeDeclaration
	source []byte
	nested bool
}

// collectType adds the record components and the body members of a type
// declaration
func (c *memberCollector) collectType(node *sitter.Node, resolver *astutil.Resolver) {
	resolver = resolver.WithTypeParameters(typeParameters(node, c.source)...)
	kind := declarationKinds[node.Type()]

	var components []symbol.Parameter
	if params := nodeutil.FirstChildOfType(node, "formal_parameters"); params != nil {
		// The components of a record are stored as private fields
		components = parseParameters(params, c.source, resolver)
		for _, component := range components {
			c.decl.Fields = append(c.decl.Fields, symbol.FieldDecl{
				Modifiers: symbol.Modifiers(symbol.Private),
				Type:      component.Type,
				Variables: []symbol.Variable{{Name: component.Name}},
			})
		}
	}

	if body := node.ChildByFieldName("body"); body != nil {
		name := node.ChildByFieldName("name").Content(c.source)
		c.collectBody(body, kind, name, components, resolver)
	}
}

func (c *memberCollector) collectBody(body *sitter.Node, kind symbol.Kind, name string, components []symbol.Parameter, resolver *astutil.Resolver) {
	source := c.source
	for _, member := range bodyMembers(body) {
		switch member.Type() {
		case "field_declaration", "constant_declaration":
			field := parseField(member, source, resolver)
			field.Modifiers = implicitModifiers(kind, member.Type(), field.Modifiers)
			c.decl.Fields = append(c.decl.Fields, field)
		case "method_declaration", "annotation_type_element_declaration":
			method := parseMethod(member, source, resolver)
			method.Modifiers = implicitModifiers(kind, member.Type(), method.Modifiers)
			c.decl.Methods = append(c.decl.Methods, method)
		case "constructor_declaration", "compact_constructor_declaration":
			constructor := symbol.ConstructorDecl{
				Modifiers: implicitModifiers(kind, member.Type(), parseModifiers(member)),
				Name:      name,
			}
			if member.Type() == "compact_constructor_declaration" {
				constructor.Parameters = components
			} else {
				constructorResolver := resolver.WithTypeParameters(astutil.TypeParameterNames(member.ChildByFieldName("type_parameters"), source)...)
				constructor.Parameters = parseParameters(member.ChildByFieldName("parameters"), source, constructorResolver)
			}
			c.decl.Constructors = append(c.decl.Constructors, constructor)
		default:
			if c.nested && isTypeDeclaration(member) {
				c.collectType(member, resolver)
				continue
			}
		}
		if c.nested {
			c.collectLocal(member, resolver)
		}
	}
}

// collectLocal looks for the classes that are declared inside a member, such
// as in a method body or a field initializer
func (c *memberCollector) collectLocal(node *sitter.Node, resolver *astutil.Resolver) {
	for _, child := range nodeutil.Children(node) {
		switch {
		case isTypeDeclaration(child):
			c.collectType(child, resolver)
		case child.Type() == "class_body":
			// Anonymous classes and enum constants with a body can not declare
			// constructors, so they do not need a name
			c.collectBody(child, symbol.KindClass, "", nil, resolver)
		default:
			c.collectLocal(child, resolver)
		}
	}
}

// bodyMembers returns the declarations inside the body of a type. The members
// of an enum come after its constants, in their own node
func bodyMembers(body *sitter.Node) []*sitter.Node {
	var members []*sitter.Node
	for _, child := range nodeutil.Children(body) {
		if child.Type() == "enum_body_declarations" {
			members = append(members, nodeutil.Children(child)...)
			continue
		}
		members = append(members, child)
	}
	return members
}

// typeList returns the types listed in an `extends` or `implements` clause
func typeList(clause *sitter.Node) []*sitter.Node {
	if list := nodeutil.FirstChildOfType(clause, "type_list"); list != nil {
		return nodeutil.Children(list)
	}
	var types []*sitter.Node
	for _, child := range nodeutil.Children(clause) {
		if child.Type() != "marker_annotation" && child.Type() != "annotation" {
			types = append(types, child)
		}
	}
	return types
}

func parseModifiers(node *sitter.Node) symbol.ModifierSet {
	var set symbol.ModifierSet
	mods := nodeutil.FirstChildOfType(node, "modifiers")
	if mods == nil {
		return set
	}
	for _, modifier := range nodeutil.UnnamedChildren(mods) {
		if mod, ok := keywords.ModifierFor(modifier.Type()); ok {
			set = set.With(mod)
		}
	}
	return set
}

// implicitModifiers applies the modifiers that Java gives to members that do
// not declare them
func implicitModifiers(kind symbol.Kind, memberType string, set symbol.ModifierSet) symbol.ModifierSet {
	hasVisibility := set.Visibility() != symbol.PackagePrivate
	switch kind {
	case symbol.KindInterface, symbol.KindAnnotation:
		switch memberType {
		case "field_declaration", "constant_declaration":
			return set.WithVisibility(symbol.Public).With(symbol.Static)
		case "method_declaration", "annotation_type_element_declaration":
			if !hasVisibility {
				return set.WithVisibility(symbol.Public)
			}
		}
	case symbol.KindEnum:
		if memberType == "constructor_declaration" && !hasVisibility {
			return set.WithVisibility(symbol.Private)
		}
	}
	return set
}

func parseField(node *sitter.Node, source []byte, resolver *astutil.Resolver) symbol.FieldDecl {
	field := symbol.FieldDecl{
		Modifiers: parseModifiers(node),
		Type:      astutil.ParseType(node.ChildByFieldName("type"), source, resolver),
	}
	for _, declarator := range nodeutil.Children(node) {
		if declarator.Type() != "variable_declarator" {
			continue
		}
		variable := symbol.Variable{Name: declarator.ChildByFieldName("name").Content(source)}
		if dims := nodeutil.FirstChildOfType(declarator, "dimensions"); dims != nil {
			variable.Dimensions = nodeutil.Content(dims, source)
		}
		field.Variables = append(field.Variables, variable)
	}
	return field
}

func parseMethod(node *sitter.Node, source []byte, resolver *astutil.Resolver) symbol.MethodDecl {
	resolver = resolver.WithTypeParameters(astutil.TypeParameterNames(node.ChildByFieldName("type_parameters"), source)...)

	return symbol.MethodDecl{
		Modifiers:  parseModifiers(node),
		Name:       node.ChildByFieldName("name").Content(source),
		Parameters: parseParameters(node.ChildByFieldName("parameters"), source, resolver),
		ReturnType: astutil.ParseType(node.ChildByFieldName("type"), source, resolver),
	}
}

func parseParameters(node *sitter.Node, source []byte, resolver *astutil.Resolver) []symbol.Parameter {
	if node == nil {
		return nil
	}

	var params []symbol.Parameter
	for _, parameter := range nodeutil.Children(node) {
		switch parameter.Type() {
		case "formal_parameter":
			param := symbol.Parameter{
				Name: parameter.ChildByFieldName("name").Content(source),
				Type: astutil.ParseType(parameter.ChildByFieldName("type"), source, resolver),
			}
			if dims := parameter.ChildByFieldName("dimensions"); dims != nil {
				param.Type = withDimensions(param.Type, nodeutil.Content(dims, source))
			}
			params = append(params, param)
		case "spread_parameter":
			// A spread parameter does not label its type, so it is the first child
			// that is not a modifier or the name
			var typeNode, nameNode *sitter.Node
			for _, child := range nodeutil.Children(parameter) {
				switch child.Type() {
				case "modifiers", "marker_annotation", "annotation":
				case "variable_declarator":
					nameNode = child.ChildByFieldName("name")
				case "identifier":
					nameNode = child
				default:
					if typeNode == nil {
						typeNode = child
					}
				}
			}
			if typeNode == nil || nameNode == nil {
				continue
			}
			params = append(params, symbol.Parameter{
				Name:    nameNode.Content(source),
				Type:    astutil.ParseType(typeNode, source, resolver),
				Varargs: true,
			})
		}
	}
	return params
}

func withDimensions(typ symbol.TypeRef, dims string) symbol.TypeRef {
	typ.Text += dims
	typ.Qualified += dims
	return typ
}
