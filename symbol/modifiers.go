package symbol

import "strings"

// Modifier is a single flag out of the modifiers that affect how a member is
// bucketed in a diagram. Visibility and static are independent of each other
type Modifier uint8

const (
	Public Modifier = 1 << iota
	Protected
	PackagePrivate
	Private
	Static
)

// ModifierSet is an unordered set of modifiers
type ModifierSet uint8

// Modifiers builds a set out of the given modifiers
func Modifiers(mods ...Modifier) ModifierSet {
	var set ModifierSet
	for _, mod := range mods {
		set |= ModifierSet(mod)
	}
	return set
}

const visibilityMask = ModifierSet(Public | Protected | PackagePrivate | Private)

// Has reports whether the set contains the modifier
func (s ModifierSet) Has(mod Modifier) bool {
	return s&ModifierSet(mod) != 0
}

// With returns a copy of the set with the given modifiers added
func (s ModifierSet) With(mods ...Modifier) ModifierSet {
	return s | Modifiers(mods...)
}

// Visibility returns the single visibility modifier in the set. A set without
// any access modifier is package-private, which is how Java treats a member
// that is declared without one
func (s ModifierSet) Visibility() Modifier {
	switch {
	case s.Has(Public):
		return Public
	case s.Has(Protected):
		return Protected
	case s.Has(Private):
		return Private
	}
	return PackagePrivate
}

// WithVisibility replaces the visibility of the set
func (s ModifierSet) WithVisibility(vis Modifier) ModifierSet {
	return s&^visibilityMask | ModifierSet(vis)
}

func (m Modifier) String() string {
	switch m {
	case Public:
		return "public"
	case Protected:
		return "protected"
	case PackagePrivate:
		return "package-private"
	case Private:
		return "private"
	case Static:
		return "static"
	}
	return "unknown"
}

func (s ModifierSet) String() string {
	var names []string
	for _, mod := range []Modifier{Public, Protected, PackagePrivate, Private, Static} {
		if s.Has(mod) {
			names = append(names, mod.String())
		}
	}
	return "{" + strings.Join(names, " ") + "}"
}

// Matches reports whether present contains every modifier in required, and
// none of the modifiers in forbidden
func Matches(present, required, forbidden ModifierSet) bool {
	return present&required == required && present&forbidden == 0
}
