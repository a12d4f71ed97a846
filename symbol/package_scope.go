package symbol

// Scope is every declaration that takes part in a single run, which is the set
// of classes that relations are allowed to point at
type Scope struct {
	declarations []*TypeDeclaration
	bySimple     map[string]*TypeDeclaration
	byQualified  map[string]*TypeDeclaration
}

// NewScope indexes the given declarations. If two declarations share a name,
// the first one wins
func NewScope(declarations []*TypeDeclaration) *Scope {
	scope := &Scope{
		declarations: declarations,
		bySimple:     make(map[string]*TypeDeclaration, len(declarations)),
		byQualified:  make(map[string]*TypeDeclaration, len(declarations)),
	}
	for _, decl := range declarations {
		if _, in := scope.bySimple[decl.Name]; !in {
			scope.bySimple[decl.Name] = decl
		}
		if _, in := scope.byQualified[decl.DisplayName(true)]; !in {
			scope.byQualified[decl.DisplayName(true)] = decl
		}
	}
	return scope
}

// Declarations returns the declarations in the order they were added
func (s *Scope) Declarations() []*TypeDeclaration {
	return s.declarations
}

// FindClass looks up a declaration by its simple name, and returns nil if it
// is not part of the scope
func (s *Scope) FindClass(name string) *TypeDeclaration {
	return s.bySimple[name]
}

// FindQualifiedClass looks up a declaration by its fully qualified name
func (s *Scope) FindQualifiedClass(name string) *TypeDeclaration {
	return s.byQualified[name]
}

// Find looks up a referenced type name, using either its simple or its
// qualified form
func (s *Scope) Find(name TypeName, qualified bool) *TypeDeclaration {
	if qualified {
		return s.FindQualifiedClass(name.Qualified)
	}
	return s.FindClass(name.Simple)
}
