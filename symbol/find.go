package symbol

// Member is any declaration that carries a set of modifiers
type Member interface {
	Mods() ModifierSet
}

// Finder searches through a list of members for the ones that match a certain
// criteria. Results always keep the order of declaration
type Finder[M Member] []M

// By returns every member that the criteria accepts
func (f Finder[M]) By(criteria func(m M) bool) []M {
	var results []M
	for _, member := range f {
		if criteria(member) {
			results = append(results, member)
		}
	}
	return results
}

// ByModifiers returns every member whose modifiers contain all of required,
// and none of forbidden. Members without an access modifier are treated as
// having PackagePrivate
func (f Finder[M]) ByModifiers(required, forbidden ModifierSet) []M {
	return f.By(func(m M) bool {
		present := m.Mods()
		return Matches(present.WithVisibility(present.Visibility()), required, forbidden)
	})
}
