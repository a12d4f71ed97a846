package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NickyBoy89/javauml/symbol"
)

func TestModifierFor(t *testing.T) {
	tests := []struct {
		keyword  string
		expected symbol.Modifier
		ok       bool
	}{
		{"public", symbol.Public, true},
		{"protected", symbol.Protected, true},
		{"private", symbol.Private, true},
		{"static", symbol.Static, true},
		{"final", 0, false},
		{"non-sealed", 0, false},
		{"class", 0, false},
		{"@", 0, false},
	}

	for _, test := range tests {
		t.Run(test.keyword, func(t *testing.T) {
			mod, ok := ModifierFor(test.keyword)
			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.expected, mod)
		})
	}
}

func TestEveryAccessModifierHasAFlag(t *testing.T) {
	for _, keyword := range AccessModifiers {
		_, ok := ModifierFor(keyword)
		assert.True(t, ok, keyword)
	}
	assert.True(t, IsModifier("synchronized"))
	assert.False(t, IsModifier("void"))
}

func TestTypeNames(t *testing.T) {
	assert.True(t, IsPrimitive("int"))
	assert.True(t, IsPrimitive("void"))
	assert.False(t, IsPrimitive("Integer"))
	assert.True(t, IsJavaLang("Integer"))
	assert.False(t, IsJavaLang("List"))
}
