package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mwhite7112/woodpantry-recipefinder/internal/service"
)

// NewRouter wires all routes.
func NewRouter(recipes *service.RecipeService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(instrument)

	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/", handleHome(recipes))
	r.Post("/", handleSearch(recipes))
	r.Get("/hot-meals", handleDiscover(recipes, "Hot meals"))
	r.Get("/inspire-me", handleDiscover(recipes, "Inspire me"))
	r.Get("/ideas", handleIdeas(recipes))
	r.Get("/recipe/{id}", handleRecipe(recipes))

	r.Route("/api/recipes", func(r chi.Router) {
		r.Get("/", handleSearchJSON(recipes))
		r.Get("/random", handleRandomJSON(recipes))
		r.Get("/{id}", handleRecipeJSON(recipes))
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

// --- GET / ---

func handleHome(recipes *service.RecipeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, "index.html", indexPage{
			Title:         "Search",
			RandomRecipes: recipes.RandomRecipes(r.Context(), service.DefaultRandomCount),
		})
	}
}

// --- POST / ---

func handleSearch(recipes *service.RecipeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form body", http.StatusBadRequest)
			return
		}
		query := r.PostFormValue("ingredients")
		results := recipes.SearchRecipes(r.Context(), query)

		render(w, r, "index.html", indexPage{
			Title:     "Search",
			Query:     query,
			Recipes:   results,
			NoResults: len(results) == 0,
		})
	}
}

// --- GET /hot-meals, /inspire-me ---

func handleDiscover(recipes *service.RecipeService, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, "index.html", indexPage{
			Title:         title,
			RandomRecipes: recipes.RandomRecipes(r.Context(), service.DefaultRandomCount),
		})
	}
}

// --- GET /ideas ---

func handleIdeas(recipes *service.RecipeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pair, results := recipes.Ideas(r.Context())
		if len(results) == 0 {
			http.Redirect(w, r, "/hot-meals", http.StatusSeeOther)
			return
		}
		render(w, r, "index.html", indexPage{
			Title:   "Ideas",
			Query:   pair,
			Idea:    pair,
			Recipes: results,
		})
	}
}

// --- GET /recipe/:id ---

func handleRecipe(recipes *service.RecipeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meal, ok := recipes.RecipeByID(r.Context(), chi.URLParam(r, "id"))
		if !ok {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		render(w, r, "recipe.html", recipePage{Title: meal.Name(), Meal: meal})
	}
}

// --- helpers ---

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}
