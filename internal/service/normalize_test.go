package service

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIngredient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Cherry Tomatoes", "cherry_tomatoes"},
		{"  garlic ", "garlic"},
		{"CHICKEN BREAST", "chicken_breast"},
		{"red  chilli", "red__chilli"},
		{"Jalapeño", "jalapeño"},
		{"Jalapen\u0303o", "jalape\u00f1o"},
		{"", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizeIngredient(tc.in), "input %q", tc.in)
	}
}

func TestParseIngredients(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"only separators", " , ,\t,", nil},
		{"single", "Egg", []string{"egg"}},
		{"keeps order and duplicates", "garlic, Chicken Breast,garlic", []string{"garlic", "chicken_breast", "garlic"}},
		{"drops blanks", "a, ,b,,  C D ", []string{"a", "b", "c_d"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ParseIngredients(tc.in))
		})
	}
}

func TestNormalizedInputReachesTomatoEntry(t *testing.T) {
	t.Parallel()

	term := NormalizeIngredient("Cherry Tomatoes")
	assert.Equal(t, "cherry_tomatoes", term)
	assert.True(t, slices.Contains(DefaultSynonyms().Expand("tomato"), term))
}

func TestUniqueTerms(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"egg", "tomato"}, uniqueTerms([]string{"egg", "tomato", "egg"}))
	assert.Empty(t, uniqueTerms(nil))
}
