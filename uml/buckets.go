package uml

import (
	"github.com/NickyBoy89/javauml/symbol"
)

// Options controls what ends up in a diagram
type Options struct {
	OmitConstructors bool
	// Leave out methods that are not static
	OmitMethods bool
	// Leave out static methods
	OmitStaticMethods   bool
	FullyQualifiedNames bool
	// List package-private members in their own buckets, which are left out
	// otherwise
	PackagePrivate bool
	// Add edges between the classes of the diagram
	Relations bool
	// Draw implemented interfaces as realizations rather than generalizations
	Realization bool
}

// MemberKind is the kind of member that a bucket holds
type MemberKind int

const (
	FieldMember MemberKind = iota
	ConstructorMember
	MethodMember
)

func (k MemberKind) String() string {
	switch k {
	case FieldMember:
		return "field"
	case ConstructorMember:
		return "constructor"
	case MethodMember:
		return "method"
	}
	return "unknown"
}

// Bucket is a group of members in a class block that share the same kind,
// visibility, and static-ness
type Bucket struct {
	Kind       MemberKind
	Visibility symbol.Modifier
	Static     bool
}

// Required returns the modifiers that a member must have to be in the bucket
func (b Bucket) Required() symbol.ModifierSet {
	if b.Static {
		return symbol.Modifiers(b.Visibility, symbol.Static)
	}
	return symbol.Modifiers(b.Visibility)
}

// Forbidden returns the modifiers that keep a member out of the bucket.
// Constructors can never be static, so they do not rule it out
func (b Bucket) Forbidden() symbol.ModifierSet {
	if b.Static || b.Kind == ConstructorMember {
		return 0
	}
	return symbol.Modifiers(symbol.Static)
}

// Prefix returns the glyphs that every line in the bucket starts with
func (b Bucket) Prefix() string {
	glyph := visibilityGlyphs[b.Visibility]
	if b.Static {
		return glyph + "{static} "
	}
	return glyph
}

var visibilityGlyphs = map[symbol.Modifier]string{
	symbol.Private:        "-",
	symbol.PackagePrivate: "~",
	symbol.Protected:      "#",
	symbol.Public:         "+",
}

// Plan returns the buckets of a class block, in the order that they are
// written out
func Plan(opts Options) []Bucket {
	visibilities := []symbol.Modifier{symbol.Private, symbol.Protected, symbol.Public}
	if opts.PackagePrivate {
		visibilities = []symbol.Modifier{symbol.Private, symbol.PackagePrivate, symbol.Protected, symbol.Public}
	}

	var buckets []Bucket
	group := func(kind MemberKind, static bool) {
		for _, vis := range visibilities {
			buckets = append(buckets, Bucket{Kind: kind, Visibility: vis, Static: static})
		}
	}

	group(FieldMember, false)
	group(FieldMember, true)
	if !opts.OmitConstructors {
		group(ConstructorMember, false)
	}
	if !opts.OmitMethods {
		group(MethodMember, false)
	}
	if !opts.OmitStaticMethods {
		group(MethodMember, true)
	}
	return buckets
}

// RenderedMember is a single formatted line of a class block
type RenderedMember struct {
	Bucket Bucket
	Text   string
}

// Line returns the member as it is written in the diagram
func (m RenderedMember) Line() string {
	return m.Bucket.Prefix() + m.Text
}

// ClassBlock is everything that is written out for a single class
type ClassBlock struct {
	Name    string
	Members []RenderedMember
	Edges   []Edge
}

// BuildClass filters and formats the members of a declaration into their
// buckets. Within a bucket, members keep the order they were declared in
func BuildClass(decl *symbol.TypeDeclaration, opts Options) ClassBlock {
	format := Formatter{Qualified: opts.FullyQualifiedNames}
	block := ClassBlock{Name: decl.DisplayName(opts.FullyQualifiedNames)}

	for _, bucket := range Plan(opts) {
		required, forbidden := bucket.Required(), bucket.Forbidden()

		var lines []string
		switch bucket.Kind {
		case FieldMember:
			for _, field := range decl.FindField().ByModifiers(required, forbidden) {
				lines = append(lines, format.Field(field)...)
			}
		case ConstructorMember:
			for _, constructor := range decl.FindConstructor().ByModifiers(required, forbidden) {
				lines = append(lines, format.Constructor(constructor))
			}
		case MethodMember:
			for _, method := range decl.FindMethod().ByModifiers(required, forbidden) {
				lines = append(lines, format.Method(method))
			}
		}

		for _, line := range lines {
			block.Members = append(block.Members, RenderedMember{Bucket: bucket, Text: line})
		}
	}

	return block
}
