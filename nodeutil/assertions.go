package nodeutil

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// ExpectType returns an error if the node is not of the expected type
func ExpectType(node *sitter.Node, expectedType string) error {
	if node == nil {
		return fmt.Errorf("expected node of type %s, got nothing", expectedType)
	}
	if node.Type() != expectedType {
		return fmt.Errorf("type of node differs from expected: %s, got: %s", expectedType, node.Type())
	}
	return nil
}

// FirstError searches the tree depth-first for the first node that tree-sitter
// could not parse, or that it had to insert to recover from an error
func FirstError(node *sitter.Node) *sitter.Node {
	if node == nil || !node.HasError() && !node.IsMissing() {
		return nil
	}
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := FirstError(node.Child(i)); found != nil {
			return found
		}
	}
	// The error is on this node itself
	return node
}
