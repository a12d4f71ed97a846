// Package uml builds PlantUML class diagrams out of parsed declarations
package uml

import (
	"strings"

	"github.com/NickyBoy89/javauml/symbol"
)

// Formatter renders members as single-line signatures
type Formatter struct {
	// Render every type with its fully qualified name
	Qualified bool
}

// Type returns the text of a type in the formatter's naming mode
func (f Formatter) Type(t symbol.TypeRef) string {
	if f.Qualified && t.Qualified != "" {
		return t.Qualified
	}
	return t.Text
}

// Field returns one `name : type` line for every variable of the field
func (f Formatter) Field(field symbol.FieldDecl) []string {
	lines := make([]string, len(field.Variables))
	for ind, variable := range field.Variables {
		lines[ind] = variable.Name + " : " + f.Type(field.Type) + variable.Dimensions
	}
	return lines
}

// Method formats a method as `name(params) : returnType`
func (f Formatter) Method(method symbol.MethodDecl) string {
	returnType := f.Type(method.ReturnType)
	if returnType == "" {
		returnType = "void"
	}
	return method.Name + "(" + f.parameters(method.Parameters) + ") : " + returnType
}

// Constructor formats a constructor as `ClassName(params)`
func (f Formatter) Constructor(constructor symbol.ConstructorDecl) string {
	return constructor.Name + "(" + f.parameters(constructor.Parameters) + ")"
}

func (f Formatter) parameters(params []symbol.Parameter) string {
	var b strings.Builder
	for ind, param := range params {
		if ind > 0 {
			b.WriteString(", ")
		}
		b.WriteString(param.Name)
		b.WriteString(" : ")
		b.WriteString(f.Type(param.Type))
		if param.Varargs {
			b.WriteString("...")
		}
	}
	return b.String()
}
