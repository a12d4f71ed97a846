package symbol

// Kind is the kind of type that a source file declares
type Kind string

const (
	KindClass      Kind = "class"
	KindInterface  Kind = "interface"
	KindEnum       Kind = "enum"
	KindRecord     Kind = "record"
	KindAnnotation Kind = "annotation"
)

// SupertypeKind is how a type declares one of its supertypes
type SupertypeKind int

const (
	// Extends is a supertype listed in an `extends` clause
	Extends SupertypeKind = iota
	// Implements is a supertype listed in an `implements` clause
	Implements
)

// Supertype is a single entry of a declaration's `extends` or `implements` list
type Supertype struct {
	Type TypeRef
	Kind SupertypeKind
}

// TypeDeclaration represents a single declared type, and the members that are
// directly declared in it. Each processed source file produces one declaration
type TypeDeclaration struct {
	// The simple name of the type
	Name string
	// The name of the type prefixed with its package, if there is one
	QualifiedName string
	Package       string
	Kind          Kind
	// The file that the declaration was parsed from
	Path string

	Fields       []FieldDecl
	Constructors []ConstructorDecl
	Methods      []MethodDecl
	Supertypes   []Supertype
}

// FindField searches through the declaration's fields
func (td *TypeDeclaration) FindField() Finder[FieldDecl] {
	return Finder[FieldDecl](td.Fields)
}

// FindConstructor searches through the declaration's constructors
func (td *TypeDeclaration) FindConstructor() Finder[ConstructorDecl] {
	return Finder[ConstructorDecl](td.Constructors)
}

// FindMethod searches through the declaration's methods
func (td *TypeDeclaration) FindMethod() Finder[MethodDecl] {
	return Finder[MethodDecl](td.Methods)
}

// DisplayName returns the name the type is shown with
func (td *TypeDeclaration) DisplayName(qualified bool) string {
	if qualified && td.QualifiedName != "" {
		return td.QualifiedName
	}
	return td.Name
}
