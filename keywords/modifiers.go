package keywords

import (
	"golang.org/x/exp/slices"

	"github.com/NickyBoy89/javauml/symbol"
)

// The keywords that Java accepts as modifiers of a declaration
var (
	AccessModifiers    = []string{"private", "protected", "public"}
	NonAccessModifiers = []string{"final", "static", "abstract", "transient", "synchronized", "volatile", "default", "native", "strictfp", "sealed", "non-sealed"}
)

var (
	PrimitiveTypes = []string{"byte", "short", "int", "long", "float", "double", "boolean", "char", "void"}
)

// Types in `java.lang` are visible in every file without an import
var JavaLangTypes = []string{
	"AutoCloseable", "Boolean", "Byte", "CharSequence", "Character", "Class",
	"ClassLoader", "Cloneable", "Comparable", "Deprecated", "Double", "Enum",
	"Error", "Exception", "Float", "FunctionalInterface", "IllegalArgumentException",
	"IllegalStateException", "IndexOutOfBoundsException", "Integer", "Iterable",
	"Long", "Math", "NullPointerException", "Number", "Object", "Override",
	"Process", "Record", "Runnable", "RuntimeException", "SafeVarargs", "Short",
	"String", "StringBuffer", "StringBuilder", "SuppressWarnings", "System",
	"Thread", "ThreadLocal", "Throwable", "UnsupportedOperationException", "Void",
}

var modifierFlags = map[string]symbol.Modifier{
	"public":    symbol.Public,
	"protected": symbol.Protected,
	"private":   symbol.Private,
	"static":    symbol.Static,
}

// IsModifier reports whether the keyword is one of Java's modifiers
func IsModifier(keyword string) bool {
	return slices.Contains(AccessModifiers, keyword) || slices.Contains(NonAccessModifiers, keyword)
}

// IsPrimitive reports whether the name is one of Java's primitive types
func IsPrimitive(name string) bool {
	return slices.Contains(PrimitiveTypes, name)
}

// IsJavaLang reports whether the name is implicitly imported from `java.lang`
func IsJavaLang(name string) bool {
	return slices.Contains(JavaLangTypes, name)
}

// ModifierFor converts a modifier keyword into the diagram modifier it stands
// for. Keywords that do not affect a diagram, such as `final`, report false
func ModifierFor(keyword string) (symbol.Modifier, bool) {
	if !IsModifier(keyword) {
		return 0, false
	}
	mod, ok := modifierFlags[keyword]
	return mod, ok
}

