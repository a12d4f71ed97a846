package symbol

import "fmt"

// TypeName is a named type referenced from a type expression
type TypeName struct {
	// The name as it appears in the source, without any qualifier
	Simple string
	// The fully resolved name of the type
	Qualified string
}

// TypeRef represents a type as it was written in the source
type TypeRef struct {
	// The source text of the type, with runs of whitespace collapsed
	Text string
	// The same text, but with every named type replaced by its resolved name
	Qualified string
	// Every named type that appears in the type, in source order
	Refs []TypeName
}

// SimpleType creates a type that does not need any resolution, such as a
// primitive or `void`
func SimpleType(text string) TypeRef {
	return TypeRef{Text: text, Qualified: text}
}

func (t TypeRef) String() string {
	return t.Text
}

// Variable is one of the names declared by a single field declaration
type Variable struct {
	Name string
	// Any array dimensions written after the variable's name, such as `int x[]`
	Dimensions string
}

// FieldDecl is a single field declaration, that may declare several variables
// that share the same type
type FieldDecl struct {
	Modifiers ModifierSet
	Type      TypeRef
	Variables []Variable
}

// Parameter is a single formal parameter of a method or constructor
type Parameter struct {
	Name    string
	Type    TypeRef
	Varargs bool
}

// MethodDecl is a method declared in a class
type MethodDecl struct {
	Modifiers  ModifierSet
	Name       string
	Parameters []Parameter
	ReturnType TypeRef
}

// ConstructorDecl is a constructor declared in a class. The name is always the
// name of the class it was declared in
type ConstructorDecl struct {
	Modifiers  ModifierSet
	Name       string
	Parameters []Parameter
}

// Mods returns the modifiers of the field
func (f FieldDecl) Mods() ModifierSet { return f.Modifiers }

// Mods returns the modifiers of the method
func (m MethodDecl) Mods() ModifierSet { return m.Modifiers }

// Mods returns the modifiers of the constructor
func (c ConstructorDecl) Mods() ModifierSet { return c.Modifiers }

func (f FieldDecl) String() string {
	names := make([]string, len(f.Variables))
	for ind, v := range f.Variables {
		names[ind] = v.Name + v.Dimensions
	}
	return fmt.Sprintf("Field: %v %s %v", f.Modifiers, f.Type, names)
}

func (m MethodDecl) String() string {
	return fmt.Sprintf("Method: %v %s %s (%d parameters)", m.Modifiers, m.ReturnType, m.Name, len(m.Parameters))
}

func (c ConstructorDecl) String() string {
	return fmt.Sprintf("Constructor: %v %s (%d parameters)", c.Modifiers, c.Name, len(c.Parameters))
}

// NamedType creates a type that refers to a single named type, which resolves
// to the given qualified name
func NamedType(simple, qualified string) TypeRef {
	return TypeRef{
		Text:      simple,
		Qualified: qualified,
		Refs:      []TypeName{{Simple: simple, Qualified: qualified}},
	}
}
