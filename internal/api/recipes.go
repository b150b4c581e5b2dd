package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mwhite7112/woodpantry-recipefinder/internal/service"
)

const maxRandomRecipes = 24

// --- GET /api/recipes?ingredients= ---

func handleSearchJSON(recipes *service.RecipeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("ingredients")
		if strings.TrimSpace(query) == "" {
			jsonError(w, "ingredients is required", http.StatusBadRequest)
			return
		}
		jsonOK(w, map[string]any{
			"ingredients": service.ParseIngredients(query),
			"recipes":     recipes.SearchRecipes(r.Context(), query),
		})
	}
}

// --- GET /api/recipes/random?n= ---

func handleRandomJSON(recipes *service.RecipeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := service.DefaultRandomCount
		if raw := r.URL.Query().Get("n"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > maxRandomRecipes {
				jsonError(w, "n must be between 1 and "+strconv.Itoa(maxRandomRecipes), http.StatusBadRequest)
				return
			}
			n = parsed
		}
		jsonOK(w, map[string]any{"recipes": recipes.RandomRecipes(r.Context(), n)})
	}
}

// --- GET /api/recipes/:id ---

func handleRecipeJSON(recipes *service.RecipeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meal, ok := recipes.RecipeByID(r.Context(), chi.URLParam(r, "id"))
		if !ok {
			jsonError(w, "recipe not found", http.StatusNotFound)
			return
		}
		jsonOK(w, map[string]any{
			"recipe":      meal,
			"ingredients": meal.Ingredients(),
		})
	}
}
