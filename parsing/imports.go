package parsing

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/NickyBoy89/javauml/astutil"
	"github.com/NickyBoy89/javauml/nodeutil"
)

// ExtractImports reads the package and the imports at the top of a file, and
// returns a resolver for the names used in it, as well as the node for the
// first type declared in the file
func ExtractImports(root *sitter.Node, source []byte) (*astutil.Resolver, *sitter.Node) {
	resolver := &astutil.Resolver{
		Imports:  make(map[string]string),
		Declared: make(map[string]string),
	}

	var typeNode *sitter.Node
	for _, child := range nodeutil.Children(root) {
		switch child.Type() {
		case "package_declaration":
			if name := nodeutil.FirstChildOfType(child, "scoped_identifier", "identifier"); name != nil {
				resolver.Package = name.Content(source)
			}
		case "import_declaration":
			addImport(resolver, child, source)
		default:
			if typeNode == nil && isTypeDeclaration(child) {
				typeNode = child
			}
		}
	}

	return resolver, typeNode
}

// addImport records a single-type import. Static imports bring in members
// instead of types, and on-demand imports do not name their types, so both
// are skipped
func addImport(resolver *astutil.Resolver, node *sitter.Node, source []byte) {
	for _, child := range nodeutil.UnnamedChildren(node) {
		if child.Type() == "static" || child.Type() == "asterisk" {
			return
		}
	}
	name := nodeutil.FirstChildOfType(node, "scoped_identifier", "identifier")
	if name == nil {
		return
	}
	full := name.Content(source)
	simple := full[strings.LastIndex(full, ".")+1:]
	resolver.Imports[simple] = full
}

// declareTypes adds a type declaration, and every type nested in it, to the
// types that are declared in the file
func declareTypes(declared map[string]string, node *sitter.Node, source []byte, qualifiedName string) {
	name := node.ChildByFieldName("name").Content(source)
	if _, in := declared[name]; !in {
		declared[name] = qualifiedName
	}
	body := node.ChildByFieldName("body")
	if body == nil {
		return
	}
	for _, member := range bodyMembers(body) {
		if isTypeDeclaration(member) {
			nested := member.ChildByFieldName("name").Content(source)
			declareTypes(declared, member, source, qualifiedName+"."+nested)
		}
	}
}

func qualify(pack, name string) string {
	if pack == "" {
		return name
	}
	return pack + "." + name
}
