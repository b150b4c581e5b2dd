package clients

import (
	"fmt"
	"strconv"
	"strings"
)

// maxIngredientSlots is the number of strIngredientN/strMeasureN pairs in a
// full recipe record.
const maxIngredientSlots = 20

// Meal is one raw recipe object from the API. Summary endpoints populate only
// idMeal, strMeal and strMealThumb; lookup.php fills the rest.
type Meal map[string]any

// IngredientLine is one ingredient with its measure from a full recipe.
type IngredientLine struct {
	Name    string `json:"name"`
	Measure string `json:"measure,omitempty"`
}

// Field returns the value under key as a trimmed string. Missing and null
// values are "". Names are trimmed too, so display and sorting use the
// trimmed form.
func (m Meal) Field(key string) string {
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func (m Meal) ID() string { return m.Field("idMeal") }
func (m Meal) Name() string { return m.Field("strMeal") }
func (m Meal) Thumb() string { return m.Field("strMealThumb") }
func (m Meal) Category() string { return m.Field("strCategory") }
func (m Meal) Area() string { return m.Field("strArea") }
func (m Meal) Instructions() string { return m.Field("strInstructions") }
func (m Meal) YouTube() string { return m.Field("strYoutube") }
func (m Meal) Source() string { return m.Field("strSource") }

// Tags splits the comma-separated strTags field.
func (m Meal) Tags() []string {
	var tags []string
	for _, tag := range strings.Split(m.Field("strTags"), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Ingredients collects the non-empty ingredient slots in order.
func (m Meal) Ingredients() []IngredientLine {
	var lines []IngredientLine
	for i := 1; i <= maxIngredientSlots; i++ {
		name := m.Field(fmt.Sprintf("strIngredient%d", i))
		if name == "" {
			continue
		}
		lines = append(lines, IngredientLine{
			Name:    name,
			Measure: m.Field(fmt.Sprintf("strMeasure%d", i)),
		})
	}
	return lines
}
