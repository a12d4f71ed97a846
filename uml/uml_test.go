package uml

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NickyBoy89/javauml/symbol"
)

func param(name, typ string) symbol.Parameter {
	return symbol.Parameter{Name: name, Type: symbol.SimpleType(typ)}
}

func field(mods symbol.ModifierSet, typ symbol.TypeRef, names ...string) symbol.FieldDecl {
	f := symbol.FieldDecl{Modifiers: mods, Type: typ}
	for _, name := range names {
		f.Variables = append(f.Variables, symbol.Variable{Name: name})
	}
	return f
}

func method(mods symbol.ModifierSet, name, returnType string, params ...symbol.Parameter) symbol.MethodDecl {
	return symbol.MethodDecl{Modifiers: mods, Name: name, ReturnType: symbol.SimpleType(returnType), Parameters: params}
}

// everyBucket declares one field and method for every combination of
// visibility and static, and one constructor for every visibility
func everyBucket() *symbol.TypeDeclaration {
	decl := &symbol.TypeDeclaration{Name: "Mixed", QualifiedName: "com.example.Mixed"}
	for _, vis := range []symbol.Modifier{symbol.Public, symbol.Protected, symbol.PackagePrivate, symbol.Private} {
		for _, static := range []bool{false, true} {
			mods := symbol.Modifiers()
			if vis != symbol.PackagePrivate {
				mods = mods.With(vis)
			}
			suffix := vis.String()
			if static {
				mods = mods.With(symbol.Static)
				suffix += "Static"
			}
			decl.Fields = append(decl.Fields, field(mods, symbol.SimpleType("int"), "f_"+suffix))
			decl.Methods = append(decl.Methods, method(mods, "m_"+suffix, "void"))
		}
		mods := symbol.Modifiers()
		if vis != symbol.PackagePrivate {
			mods = mods.With(vis)
		}
		decl.Constructors = append(decl.Constructors, symbol.ConstructorDecl{Modifiers: mods, Name: "Mixed", Parameters: []symbol.Parameter{param("v", vis.String())}})
	}
	return decl
}

func lines(block ClassBlock) []string {
	var result []string
	for _, member := range block.Members {
		result = append(result, member.Line())
	}
	return result
}

func TestFormatMethod(t *testing.T) {
	f := Formatter{}
	m := method(symbol.Modifiers(symbol.Public), "name", "bool", param("a", "int"), param("b", "string"))
	assert.Equal(t, "name(a : int, b : string) : bool", f.Method(m))
	assert.Equal(t, "run() : void", f.Method(method(0, "run", "void")))
}

func TestFormatConstructor(t *testing.T) {
	f := Formatter{}
	assert.Equal(t, "Foo()", f.Constructor(symbol.ConstructorDecl{Name: "Foo"}))
	assert.Equal(t, "Foo(x : int)", f.Constructor(symbol.ConstructorDecl{Name: "Foo", Parameters: []symbol.Parameter{param("x", "int")}}))
}

func TestFormatVarargsAndDimensions(t *testing.T) {
	f := Formatter{}
	m := method(0, "sum", "int", symbol.Parameter{Name: "values", Type: symbol.SimpleType("int"), Varargs: true})
	assert.Equal(t, "sum(values : int...) : int", f.Method(m))

	fd := symbol.FieldDecl{Type: symbol.SimpleType("int"), Variables: []symbol.Variable{{Name: "x", Dimensions: "[]"}, {Name: "y"}}}
	assert.Equal(t, []string{"x : int[]", "y : int"}, f.Field(fd))
}

func TestFormatQualified(t *testing.T) {
	typ := symbol.TypeRef{Text: "List<Item>", Qualified: "java.util.List<com.example.Item>"}
	fd := symbol.FieldDecl{Type: typ, Variables: []symbol.Variable{{Name: "items"}}}

	assert.Equal(t, []string{"items : List<Item>"}, Formatter{}.Field(fd))
	assert.Equal(t, []string{"items : java.util.List<com.example.Item>"}, Formatter{Qualified: true}.Field(fd))
}

func TestMultipleVariables(t *testing.T) {
	decl := &symbol.TypeDeclaration{
		Name:   "Point",
		Fields: []symbol.FieldDecl{field(symbol.Modifiers(symbol.Private), symbol.SimpleType("int"), "x", "y")},
	}

	block := BuildClass(decl, Options{})
	require.Len(t, block.Members, 2)
	for _, member := range block.Members {
		assert.Equal(t, Bucket{Kind: FieldMember, Visibility: symbol.Private}, member.Bucket)
	}
	assert.Equal(t, []string{"-x : int", "-y : int"}, lines(block))
}

func TestBucketOrder(t *testing.T) {
	block := BuildClass(everyBucket(), Options{})

	assert.Equal(t, []string{
		"-f_private : int",
		"#f_protected : int",
		"+f_public : int",
		"-{static} f_privateStatic : int",
		"#{static} f_protectedStatic : int",
		"+{static} f_publicStatic : int",
		"-Mixed(v : private)",
		"#Mixed(v : protected)",
		"+Mixed(v : public)",
		"-m_private() : void",
		"#m_protected() : void",
		"+m_public() : void",
		"-{static} m_privateStatic() : void",
		"#{static} m_protectedStatic() : void",
		"+{static} m_publicStatic() : void",
	}, lines(block))
}

func TestBucketsPartitionMembers(t *testing.T) {
	decl := everyBucket()

	// Without package-private buckets, every other member shows up exactly once
	block := BuildClass(decl, Options{})
	seen := make(map[string]int)
	for _, member := range block.Members {
		seen[member.Text]++
	}
	for text, count := range seen {
		assert.Equal(t, 1, count, text)
	}
	assert.Len(t, block.Members, 15)
	assert.NotContains(t, seen, "f_package-private : int")

	block = BuildClass(decl, Options{PackagePrivate: true})
	assert.Len(t, block.Members, 20)
	assert.Contains(t, lines(block), "~f_package-private : int")
	assert.Contains(t, lines(block), "~{static} m_package-privateStatic() : void")
	assert.Contains(t, lines(block), "~Mixed(v : package-private)")
}

func TestPlan(t *testing.T) {
	assert.Len(t, Plan(Options{}), 15)
	assert.Len(t, Plan(Options{PackagePrivate: true}), 20)

	plan := Plan(Options{OmitConstructors: true, OmitMethods: true, OmitStaticMethods: true})
	assert.Len(t, plan, 6)
	for _, bucket := range plan {
		assert.Equal(t, FieldMember, bucket.Kind)
	}
}

func TestOmitOptions(t *testing.T) {
	decl := everyBucket()
	full := lines(BuildClass(decl, Options{}))

	noConstructors := BuildClass(decl, Options{OmitConstructors: true})
	for _, member := range noConstructors.Members {
		assert.NotEqual(t, ConstructorMember, member.Bucket.Kind)
	}
	var withoutConstructors []string
	for _, line := range full {
		if line[1:6] != "Mixed" {
			withoutConstructors = append(withoutConstructors, line)
		}
	}
	assert.Equal(t, withoutConstructors, lines(noConstructors))

	noMethods := BuildClass(decl, Options{OmitMethods: true})
	for _, member := range noMethods.Members {
		if member.Bucket.Kind == MethodMember {
			assert.True(t, member.Bucket.Static)
		}
	}

	noStatic := BuildClass(decl, Options{OmitStaticMethods: true})
	for _, member := range noStatic.Members {
		if member.Bucket.Kind == MethodMember {
			assert.False(t, member.Bucket.Static)
		}
	}
	assert.Len(t, noStatic.Members, 12)
}

func TestRelations(t *testing.T) {
	a := &symbol.TypeDeclaration{
		Name: "A",
		Fields: []symbol.FieldDecl{
			field(symbol.Modifiers(symbol.Private), symbol.NamedType("B", "B"), "first"),
			field(symbol.Modifiers(symbol.Private), symbol.NamedType("B", "B"), "second"),
			field(symbol.Modifiers(symbol.Private), symbol.NamedType("Missing", "Missing"), "unknown"),
			field(symbol.Modifiers(symbol.Private), symbol.NamedType("A", "A"), "self"),
		},
	}
	b := &symbol.TypeDeclaration{Name: "B"}
	scope := symbol.NewScope([]*symbol.TypeDeclaration{a, b})

	edges := Relations(a, scope, Options{})
	assert.Equal(t, []Edge{{From: "A", To: "B", Kind: Association}}, edges)
	assert.Equal(t, "A --> B", edges[0].String())

	// Running again does not add to the result
	assert.Equal(t, edges, Relations(a, scope, Options{}))
	assert.Empty(t, Relations(b, scope, Options{}))
}

func TestRelationsSupertypes(t *testing.T) {
	shape := &symbol.TypeDeclaration{Name: "Shape", QualifiedName: "geo.Shape", Kind: symbol.KindInterface}
	base := &symbol.TypeDeclaration{Name: "Base", QualifiedName: "geo.Base"}
	circle := &symbol.TypeDeclaration{
		Name:          "Circle",
		QualifiedName: "geo.Circle",
		Supertypes: []symbol.Supertype{
			{Type: symbol.NamedType("Base", "geo.Base"), Kind: symbol.Extends},
			{
				Type: symbol.TypeRef{
					Text:      "Comparable<Shape>",
					Qualified: "java.lang.Comparable<geo.Shape>",
					Refs:      []symbol.TypeName{{Simple: "Comparable", Qualified: "java.lang.Comparable"}, {Simple: "Shape", Qualified: "geo.Shape"}},
				},
				Kind: symbol.Implements,
			},
			{Type: symbol.NamedType("Shape", "geo.Shape"), Kind: symbol.Implements},
		},
	}
	scope := symbol.NewScope([]*symbol.TypeDeclaration{shape, base, circle})

	// Implemented interfaces are generalizations too, unless realizations are
	// asked for
	assert.Equal(t, []string{"Circle --|> Base", "Circle --|> Shape"}, edgeStrings(Relations(circle, scope, Options{})))
	assert.Equal(t, []string{"geo.Circle --|> geo.Base", "geo.Circle --|> geo.Shape"}, edgeStrings(Relations(circle, scope, Options{FullyQualifiedNames: true})))

	assert.Equal(t, []string{"Circle --|> Base", "Circle ..|> Shape"}, edgeStrings(Relations(circle, scope, Options{Realization: true})))
	assert.Equal(t, []string{"geo.Circle --|> geo.Base", "geo.Circle ..|> geo.Shape"}, edgeStrings(Relations(circle, scope, Options{FullyQualifiedNames: true, Realization: true})))
}

func edgeStrings(edges []Edge) []string {
	var result []string
	for _, edge := range edges {
		result = append(result, edge.String())
	}
	return result
}

func animalAndDog() []*symbol.TypeDeclaration {
	animal := &symbol.TypeDeclaration{
		Name:   "Animal",
		Fields: []symbol.FieldDecl{field(symbol.Modifiers(symbol.Private), symbol.NamedType("String", "java.lang.String"), "name")},
		Constructors: []symbol.ConstructorDecl{{
			Modifiers:  symbol.Modifiers(symbol.Public),
			Name:       "Animal",
			Parameters: []symbol.Parameter{{Name: "name", Type: symbol.NamedType("String", "java.lang.String")}},
		}},
		Methods: []symbol.MethodDecl{method(symbol.Modifiers(symbol.Public), "speak", "void")},
	}
	dog := &symbol.TypeDeclaration{
		Name:       "Dog",
		Supertypes: []symbol.Supertype{{Type: symbol.NamedType("Animal", "Animal"), Kind: symbol.Extends}},
	}
	return []*symbol.TypeDeclaration{animal, dog}
}

func TestDocument(t *testing.T) {
	doc := Build(animalAndDog(), Options{Relations: true})

	expected := "@startuml\n" +
		"skinparam classAttributeIconSize 0\n" +
		"class Animal {\n" +
		"\t-name : String\n" +
		"\t+Animal(name : String)\n" +
		"\t+speak() : void\n" +
		"}\n" +
		"class Dog {\n" +
		"}\n" +
		"Dog --|> Animal\n" +
		"@enduml\n"
	assert.Equal(t, expected, doc.String())
}

func TestDocumentWithoutRelations(t *testing.T) {
	doc := Build(animalAndDog(), Options{})
	assert.NotContains(t, doc.String(), "--|>")
}

func TestDocumentIdempotent(t *testing.T) {
	opts := Options{Relations: true, FullyQualifiedNames: true}

	var first, second bytes.Buffer
	_, err := Build(animalAndDog(), opts).WriteTo(&first)
	require.NoError(t, err)
	_, err = Build(animalAndDog(), opts).WriteTo(&second)
	require.NoError(t, err)

	assert.Equal(t, first.Bytes(), second.Bytes())
	assert.Contains(t, first.String(), "\t-name : java.lang.String\n")
}
